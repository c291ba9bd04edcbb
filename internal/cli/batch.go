package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/batch"
	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// BatchFlags holds flags specific to the batch command.
type BatchFlags struct {
	// Workers overrides batch.workers when positive.
	Workers int
	// Timeout overrides batch.timeout when positive.
	Timeout time.Duration
	// AssumeZone overrides parse.assume_zone when set.
	AssumeZone string
}

// batchResponse is the JSON shape of the batch command.
type batchResponse struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

// AddBatchCommand adds the batch command to root.
func AddBatchCommand(root *cobra.Command, env *commandEnv) {
	root.AddCommand(newBatchCmd(env, &BatchFlags{}))
}

func newBatchCmd(env *commandEnv, flags *BatchFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml|->",
		Short: "Evaluate many operations from a YAML file",
		Long: `Evaluate the jobs listed in a YAML file concurrently and print one
result per job, in file order. A failing job does not stop the others.

File format:
  jobs:
    - name: launch
      op: rfc2822
      args: ["Tue, 26 Jan 2016 13:48:02 GMT"]
    - op: span
      args: ["2016-01-26T00:00:00Z", "2016-01-27T02:00:00Z"]

Operations: rfc2822, iso8601, leap, span, angle. Use "-" to read stdin.

Examples:
  timekit batch jobs.yaml
  timekit batch jobs.yaml --workers 8 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, env, flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.Workers, "workers", 0,
		fmt.Sprintf("jobs evaluated concurrently (1-%d); overrides batch.workers", constants.MaxBatchWorkers))
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "bound for the whole run; overrides batch.timeout")
	addAssumeZoneFlag(cmd, &flags.AssumeZone)

	return cmd
}

func runBatch(cmd *cobra.Command, env *commandEnv, flags *BatchFlags, path string) error {
	w := cmd.OutOrStdout()
	logger := GetLogger()

	if flags.Workers < 0 || flags.Workers > constants.MaxBatchWorkers {
		return env.handleCommandError(w, errors.Wrapf(errors.ErrInvalidArgument,
			"--workers %d must be between 1 and %d", flags.Workers, constants.MaxBatchWorkers))
	}

	resolver, err := env.resolver(flags.AssumeZone)
	if err != nil {
		return env.handleCommandError(w, err)
	}

	jobs, err := batch.LoadFile(path)
	if err != nil {
		return env.handleCommandError(w, err)
	}

	cfg := env.effectiveConfig()
	workers := cfg.Batch.Workers
	if flags.Workers > 0 {
		workers = flags.Workers
	}
	timeout := cfg.Batch.Timeout
	if flags.Timeout > 0 {
		timeout = flags.Timeout
	}

	logger.Debug().Str("file", path).Int("jobs", len(jobs)).Msg("batch file loaded")

	results, runErr := batch.NewEvaluator(resolver, workers, timeout).Run(cmd.Context(), jobs)
	summary := batch.Summarize(results)

	if env.isJSON() {
		if err := env.output(w).JSON(batchResponse{Results: results, Summary: summary}); err != nil {
			return err
		}
	} else {
		printBatchText(w, env, results, summary)
	}

	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		err := errors.Wrapf(errors.ErrBatchJobsFailed, "%d of %d", summary.Failed, summary.Total)
		if env.isJSON() {
			return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, err)
		}
		return err
	}
	return nil
}

func printBatchText(w io.Writer, env *commandEnv, results []batch.Result, summary batch.Summary) {
	out := env.output(w)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		detail := r.Value
		if !r.Success {
			status = "failed"
			detail = r.Error
		}
		rows = append(rows, []string{r.Name, r.Op, status, detail})
	}
	out.Table([]string{"NAME", "OP", "STATUS", "RESULT"}, rows)

	msg := fmt.Sprintf("%d of %d jobs succeeded", summary.Succeeded, summary.Total)
	if summary.Failed == 0 {
		out.Success(msg)
		return
	}
	out.Warning(msg)
}

package cli

import (
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/operation"
	"github.com/mrz1836/timekit/internal/tui"
)

// field is one labeled line of text output.
type field struct {
	label string
	value string
}

// addAssumeZoneFlag registers --assume-zone on cmd.
func addAssumeZoneFlag(cmd *cobra.Command, zone *string) {
	cmd.Flags().StringVar(zone, "assume-zone", "", "zone for ISO 8601 values without an offset (utc|local); overrides parse.assume_zone")
}

// runOperation evaluates op and prints the outcome. JSON output is the
// Outcome itself; quiet text output is the bare value; otherwise fields
// renders the labeled lines.
func runOperation(cmd *cobra.Command, env *commandEnv, zone, op string, args []string, fields func(*operation.Outcome) []field) error {
	w := cmd.OutOrStdout()

	resolver, err := env.resolver(zone)
	if err != nil {
		return env.handleCommandError(w, err)
	}

	outcome, err := resolver.Evaluate(cmd.Context(), op, args)
	if err != nil {
		return env.handleCommandError(w, err)
	}

	logger := zerolog.Ctx(cmd.Context())
	logger.Debug().Str("op", op).Str("value", outcome.Value).Msg("operation complete")

	return printOutcome(w, env, outcome, fields)
}

func printOutcome(w io.Writer, env *commandEnv, outcome *operation.Outcome, fields func(*operation.Outcome) []field) error {
	out := env.output(w)
	if env.isJSON() {
		return out.JSON(outcome)
	}
	if env.flags.Quiet {
		out.Info(outcome.Value)
		return nil
	}
	for _, f := range fields(outcome) {
		out.Field(f.label, f.value)
	}
	return nil
}

// instantFields renders an instant as UTC, Unix milliseconds and its
// distance from now.
func instantFields(env *commandEnv, t time.Time) []field {
	return []field{
		{"UTC", t.UTC().Format(time.RFC3339Nano)},
		{"Unix ms", strconv.FormatInt(t.UnixMilli(), 10)},
		{"Relative", tui.RelativeTimeWith(t, env.clock)},
	}
}

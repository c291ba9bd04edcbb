package batch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/ctxutil"
	"github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/internal/operation"
)

// Result is the outcome of one job.
type Result struct {
	Name    string `json:"name"`
	Op      string `json:"op"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// Evaluator runs jobs on a bounded worker pool.
type Evaluator struct {
	resolver *operation.Resolver
	workers  int
	timeout  time.Duration
}

// NewEvaluator creates an Evaluator. workers below 1 means
// constants.DefaultBatchWorkers; a timeout of zero means no bound.
func NewEvaluator(resolver *operation.Resolver, workers int, timeout time.Duration) *Evaluator {
	if resolver == nil {
		resolver = operation.NewResolver()
	}
	if workers < 1 {
		workers = constants.DefaultBatchWorkers
	}
	return &Evaluator{
		resolver: resolver,
		workers:  workers,
		timeout:  timeout,
	}
}

// Run evaluates jobs concurrently and returns one Result per job, in input
// order. A failing job is recorded in its Result and does not stop the
// others. When ctx is canceled or the timeout expires, jobs that have not
// started are recorded as failed and the context error is returned alongside
// the results.
func (e *Evaluator) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	log := zerolog.Ctx(ctx)
	startTime := time.Now()

	runCtx, cancel := ctxutil.WithOptionalTimeout(ctx, e.timeout)
	defer cancel()

	log.Info().
		Int("jobs", len(jobs)).
		Int("workers", e.workers).
		Dur("timeout", e.timeout).
		Msg("starting batch")

	results := make([]Result, len(jobs))
	var skipped atomic.Int32

	// Goroutines always return nil so one failure never cancels its siblings.
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctxutil.Canceled(runCtx); err != nil {
				skipped.Add(1)
				results[i] = failed(job, err)
				return nil
			}
			results[i] = e.evaluate(runCtx, job)
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(results)
	log.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int32("skipped", skipped.Load()).
		Dur("duration", time.Since(startTime)).
		Msg("batch finished")

	if skipped.Load() > 0 {
		return results, errors.Wrapf(runCtx.Err(), "batch interrupted with %d jobs not started", skipped.Load())
	}
	return results, nil
}

func (e *Evaluator) evaluate(ctx context.Context, job Job) Result {
	out, err := e.resolver.Evaluate(ctx, job.Op, job.Args)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("job", job.Name).Msg("job failed")
		return failed(job, err)
	}
	return Result{
		Name:    job.Name,
		Op:      job.Op,
		Value:   out.Value,
		Success: true,
	}
}

func failed(job Job, err error) Result {
	return Result{
		Name:  job.Name,
		Op:    job.Op,
		Error: err.Error(),
	}
}

// Summary counts job outcomes.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Summarize counts successes and failures in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

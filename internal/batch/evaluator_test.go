package batch_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/timekit/internal/batch"
	"github.com/mrz1836/timekit/internal/clock"
	"github.com/mrz1836/timekit/internal/operation"
	"github.com/mrz1836/timekit/internal/testutil"
)

func fixedResolver() *operation.Resolver {
	r := operation.NewResolver()
	r.Clock = clock.Fixed{At: time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return r
}

func TestEvaluator_Run(t *testing.T) {
	t.Parallel()

	jobs := []batch.Job{
		{Name: "a", Op: "rfc2822", Args: []string{testutil.SampleRFC2822}},
		{Name: "b", Op: "rfc2822", Args: []string{"garbage"}},
		{Name: "c", Op: "span", Args: []string{"2016-01-26T00:00:00Z", "2016-01-27T02:00:00Z"}},
		{Name: "d", Op: "weekday"},
		{Name: "e", Op: "leap"},
		{Name: "f", Op: "angle", Args: []string{"03:00"}},
	}

	results, err := batch.NewEvaluator(fixedResolver(), 3, time.Minute).Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, r := range results {
		assert.Equal(t, jobs[i].Name, r.Name, "results keep input order")
		assert.Equal(t, jobs[i].Op, r.Op)
	}

	assert.Equal(t, batch.Result{Name: "a", Op: "rfc2822", Value: "1453816082000", Success: true}, results[0])
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "unparseable date")
	assert.Equal(t, "26:00:00.000", results[2].Value)
	assert.False(t, results[3].Success)
	assert.Contains(t, results[3].Error, "unknown operation")
	assert.Equal(t, "false", results[4].Value)
	assert.True(t, results[5].Success)

	assert.Equal(t, batch.Summary{Total: 6, Succeeded: 4, Failed: 2}, batch.Summarize(results))
}

func TestEvaluator_ManyJobsSingleWorker(t *testing.T) {
	t.Parallel()

	jobs := make([]batch.Job, 200)
	for i := range jobs {
		jobs[i] = batch.Job{Name: fmt.Sprintf("y%d", i), Op: "leap", Args: []string{fmt.Sprint(1900 + i)}}
	}

	results, err := batch.NewEvaluator(fixedResolver(), 1, 0).Run(context.Background(), jobs)
	require.NoError(t, err)
	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, fmt.Sprint((1900+i)%4 == 0 && (1900+i) != 1900), r.Value, r.Name)
	}
}

func TestEvaluator_CanceledContextSkipsJobs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []batch.Job{
		{Name: "a", Op: "leap", Args: []string{"2000"}},
		{Name: "b", Op: "leap", Args: []string{"2001"}},
	}

	results, err := batch.NewEvaluator(fixedResolver(), 2, time.Minute).Run(ctx, jobs)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Contains(t, r.Error, "context canceled")
	}
	assert.Equal(t, batch.Summary{Total: 2, Failed: 2}, batch.Summarize(results))
}

func TestNewEvaluator_Defaults(t *testing.T) {
	t.Parallel()

	results, err := batch.NewEvaluator(nil, 0, 0).Run(context.Background(), []batch.Job{
		{Name: "a", Op: "leap", Args: []string{"2024"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "true", results[0].Value)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, batch.Summary{}, batch.Summarize(nil))
}

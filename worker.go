package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent search request.
type Job struct {
	Name  string
	Grid  Grid
	Start Point
	Goal  Point
}

// JobResult pairs a job with its outcome. Err carries ErrNoPath or
// ErrInvalidInput; it never aborts the batch.
type JobResult struct {
	Name   string
	Result Result
	Err    error
}

// SolveAll runs the jobs on a pool of WithWorkers goroutines. Every job
// searches its own grid copy, so jobs may share an input grid. Results are
// returned in job order. If ctx is cancelled, jobs not yet started are
// skipped and ctx.Err() is returned with the partial results.
func SolveAll(ctx context.Context, jobs []Job, options ...Option) ([]JobResult, error) {
	searchOptions := applyOptions(options)
	results := make([]JobResult, len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, job := range jobs {
		i, job := i, job
		results[i].Name = job.Name
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := Search(job.Grid, job.Start, job.Goal, options...)
			results[i].Result = result
			results[i].Err = err
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

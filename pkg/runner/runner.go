package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/prose/internal/logging"
)

// Runner processes Markdown files concurrently.
type Runner struct {
	opts Options
}

func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

type job struct {
	index int
	path  string
}

// Run discovers files and processes them on a pool of Options.Jobs
// workers. Outcomes keep discovery order. On cancellation the files
// finished so far are returned with the context error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	files, err := Discover(ctx, r.opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	workers := r.opts.Jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, len(files)))

	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for j := range jobs {
				// Each index is written by exactly one worker.
				outcomes[j.index] = ProcessFile(ctx, j.path, r.opts)
				done[j.index] = true
			}
		})
	}

feed:
	for i, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, path: path}:
		}
	}
	close(jobs)
	wg.Wait()

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldJobs, workers,
		logging.FieldFilesRendered, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldDuration, time.Since(start),
	)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

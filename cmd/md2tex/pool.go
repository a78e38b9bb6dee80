package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// resolvePoolSize turns the --workers flag into a concrete pool size.
// Zero means one worker per CPU; manuscripts are independent, so builds are
// embarrassingly parallel.
func resolvePoolSize(workers int) int {
	if workers == 0 {
		return runtime.NumCPU()
	}
	return workers
}

// validateWorkers rejects negative worker counts.
func validateWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return nil
}

// buildResult holds the outcome of one manuscript build.
type buildResult struct {
	dir string
	err error
}

// runBatch builds every manuscript directory, at most size at a time, and
// returns the first error while letting every build finish.
func runBatch(ctx context.Context, dirs []string, size int, flags *buildFlags, env *Environment) error {
	sem := make(chan struct{}, size)
	results := make(chan buildResult, len(dirs))

	var wg sync.WaitGroup
	for _, dir := range dirs {
		wg.Add(1)
		go func(dir string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- buildResult{dir: dir, err: buildManuscript(ctx, dir, flags, env)}
		}(dir)
	}
	wg.Wait()
	close(results)

	var firstErr error
	for r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", r.dir, r.err)
		}
	}
	return firstErr
}

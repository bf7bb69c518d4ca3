// Package filter applies a per-path predicate to a list of candidates in
// parallel while keeping the input order.
//
// # Concurrency Model
//
//  1. FEEDER (main goroutine)
//     - Sends candidate indexes into jobCh, stops early on cancellation
//
//  2. WORKER GOROUTINES (fixed pool)
//     - N workers consume indexes and record keep[i]
//     - Each worker writes only its own slots, so keep needs no lock
//
//  3. COLLECTOR (main goroutine, after workerWg.Wait)
//     - Walks keep in index order and appends surviving items
//
// The first predicate error cancels the remaining work and is returned.
package filter

import (
	"context"
	"fmt"
	"sync"

	"github.com/ivoronin/filequery/internal/progress"
)

// Predicate decides whether a candidate survives. It must be safe for
// concurrent use.
type Predicate func(path string) (bool, error)

// Filter runs a Predicate over candidates.
//
// A Filter holds configuration only and can be reused across calls.
type Filter struct {
	name         string // Stage name shown in progress output
	workers      int    // Max concurrent predicate calls
	showProgress bool
}

// New creates a Filter. workers < 1 is treated as 1.
func New(name string, workers int, showProgress bool) *Filter {
	if workers < 1 {
		workers = 1
	}
	return &Filter{name: name, workers: workers, showProgress: showProgress}
}

// Run returns the items for which pred is true, in input order.
func (f *Filter) Run(ctx context.Context, items []string, pred Predicate) ([]string, error) {
	if len(items) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []string{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stage := progress.NewStage(f.name, len(items), f.showProgress)

	keep := make([]bool, len(items))
	jobCh := make(chan int, f.workers)

	var (
		firstErr error
		errOnce  sync.Once
		workerWg sync.WaitGroup
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	workers := min(f.workers, len(items))
	for range workers {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for i := range jobCh {
				if ctx.Err() != nil {
					continue // drain
				}
				ok, err := pred(items[i])
				if err != nil {
					fail(fmt.Errorf("%s: %w", items[i], err))
					continue
				}
				keep[i] = ok
				stage.Record(ok)
			}
		}()
	}

feed:
	for i := range items {
		select {
		case jobCh <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobCh)
	workerWg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage.Finish()

	result := make([]string, 0, stage.Kept())
	for i, item := range items {
		if keep[i] {
			result = append(result, item)
		}
	}
	return result, nil
}

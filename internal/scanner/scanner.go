// Package scanner provides a Globber that walks directory trees in parallel.
//
// # Architecture Overview
//
// The pattern is split into a literal base directory and a glob remainder.
// The base is walked with a concurrent fan-out/fan-in design and every
// entry is matched against the full pattern. Results are sorted by path,
// so output is deterministic regardless of goroutine scheduling.
//
// # Concurrency Model
//
//  1. WALKER GOROUTINES (fan-out)
//     - One goroutine spawned per directory discovered
//     - Concurrency limited by semaphore (walkerSem)
//     - Each walker: acquires semaphore → lists directory → releases semaphore → spawns child walkers
//
//  2. COLLECTOR GOROUTINE (fan-in)
//     - Single goroutine that drains resultCh into a slice
//     - Runs until resultCh is closed
//
//  3. MAIN GOROUTINE (orchestrator)
//     - Spawns the root walker
//     - Waits for all walkers (walkerWg.Wait)
//     - Closes resultCh to signal collector
//     - Waits for collector (collectorWg.Wait)
//
// # Synchronization Primitives
//
//	┌─────────────────┬────────────────────────────────────────────────┐
//	│ Primitive       │ Purpose                                        │
//	├─────────────────┼────────────────────────────────────────────────┤
//	│ walkerSem       │ Limits concurrent directory reads (backpressure)│
//	│ walkerWg        │ Tracks active walker goroutines                │
//	│ collectorWg     │ Signals collector goroutine completion         │
//	│ resultCh        │ Buffered channel for matched paths (fan-in)    │
//	│ errOnce         │ Records the first directory read failure       │
//	└─────────────────┴────────────────────────────────────────────────┘
//
// # Depth Limit
//
// Patterns without "**" can only match a fixed number of path segments
// below the base, so walkers stop descending at that depth.
package scanner

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ivoronin/filequery/internal/types"
)

const unlimited = -1

// Scanner is a Globber backed by a parallel directory walk.
// It holds configuration only; each Glob call has its own runtime state.
type Scanner struct {
	workers int // Max concurrent directory reads
}

// New creates a Scanner. workers < 1 is treated as 1.
func New(workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{workers: workers}
}

// walk is the runtime state of a single Glob call.
type walk struct {
	ctx       context.Context
	pattern   string
	maxDepth  int
	walkerWg  sync.WaitGroup
	walkerSem types.Semaphore
	resultCh  chan string

	errOnce sync.Once
	err     error
	cancel  context.CancelFunc
}

// Glob implements globber.Globber. Matches include directories.
// Symlinked directories are matched but not descended into.
//
// Coordination sequence:
//  1. Start collector goroutine (drains resultCh → results slice)
//  2. Spawn walker for the base directory (fan-out begins)
//  3. Wait for all walkers to complete (walkerWg.Wait)
//  4. Close resultCh to signal collector to finish
//  5. Wait for collector to drain remaining items (collectorWg.Wait)
//  6. Sort and return results, or the first read error
func (s *Scanner) Glob(ctx context.Context, pattern string) ([]string, error) {
	pattern = filepath.ToSlash(filepath.Clean(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	base, rest := doublestar.SplitPattern(pattern)
	if rest == "" {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &walk{
		ctx:       ctx,
		pattern:   pattern,
		maxDepth:  depthLimit(rest),
		walkerSem: types.NewSemaphore(s.workers),
		resultCh:  make(chan string, 1000), // Buffer smooths producer/consumer rates
		cancel:    cancel,
	}

	var results []string
	collectorWg := sync.WaitGroup{}
	collectorWg.Add(1)
	go func() {
		for r := range w.resultCh {
			results = append(results, r)
		}
		collectorWg.Done()
	}()

	w.walkDirectory(base, 1)

	w.walkerWg.Wait()  // All walkers done
	close(w.resultCh)  // Signal collector: no more items coming
	collectorWg.Wait() // Collector drained channel

	if w.err != nil {
		return nil, w.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.Sort(results)
	return results, nil
}

// depthLimit returns how many segments below the base rest can match.
func depthLimit(rest string) int {
	if strings.Contains(rest, "**") {
		return unlimited
	}
	return strings.Count(rest, "/") + 1
}

// walkDirectory spawns a goroutine to list dir and recursively spawn children.
// depth is the segment depth of dir's entries relative to the base.
func (w *walk) walkDirectory(dir string, depth int) {
	w.walkerWg.Add(1) // Increment BEFORE spawn to prevent race with Wait()
	go func() {
		defer w.walkerWg.Done()

		if err := w.walkerSem.AcquireContext(w.ctx); err != nil {
			return
		}
		entries, err := listDirectory(dir)
		w.walkerSem.Release()
		if err != nil {
			w.fail(err)
			return
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if matched, _ := doublestar.Match(w.pattern, filepath.ToSlash(full)); matched {
				select {
				case w.resultCh <- full:
				case <-w.ctx.Done():
					return
				}
			}
			if entry.IsDir() && (w.maxDepth == unlimited || depth < w.maxDepth) {
				w.walkDirectory(full, depth+1)
			}
		}
	}()
}

// fail records the first error and stops the remaining walkers.
func (w *walk) fail(err error) {
	w.errOnce.Do(func() {
		w.err = err
		w.cancel()
	})
}

// listDirectory reads a directory in batches of 1000 entries.
func listDirectory(dirPath string) ([]os.DirEntry, error) {
	dir, err := os.Open(dirPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dir.Close() }()

	const batchSize = 1000
	var all []os.DirEntry
	for {
		entries, err := dir.ReadDir(batchSize)
		all = append(all, entries...)
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return all, err
		}
	}
}

package safemd

import (
	"context"
	"runtime"
	"sync"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps automatically sized batches.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the caller's own goroutines.
	cpuDivisor = 2
)

// BatchResult is the outcome of rendering one input of a batch.
type BatchResult struct {
	Index    int
	Fragment SanitizedFragment
	Err      error
}

// RenderBatch renders texts with at most workers goroutines and returns
// one result per input, in input order. Inputs not started before ctx is
// done carry ctx.Err().
func (r *Renderer) RenderBatch(ctx context.Context, texts []string, workers int) []BatchResult {
	results := make([]BatchResult, len(texts))
	if len(texts) == 0 {
		return results
	}
	workers = min(ResolveWorkers(workers), len(texts))

	jobs := make(chan int, len(texts))
	for i := range texts {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frag, err := r.Render(ctx, texts[i])
				results[i] = BatchResult{Index: i, Fragment: frag, Err: err}
			}
		}()
	}
	wg.Wait()
	return results
}

// ResolveWorkers determines the number of rendering goroutines.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

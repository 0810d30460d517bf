// Package concurrent provides the bounded fan-out primitive used when a
// single assistant turn requests several tool invocations.
package concurrent

import (
	"context"
	"sync"
)

// DefaultWorkers bounds parallel execution when the caller does not.
const DefaultWorkers = 10

// Map runs fn over every item on at most maxWorkers goroutines and returns
// the results index-aligned with items. Completion order is unspecified;
// the index alignment is what lets callers re-associate results with their
// originating item. fn receives ctx and is responsible for honoring it;
// Map itself never drops an item, so every input produces an output even
// after cancellation.
func Map[T, R any](ctx context.Context, items []T, fn func(context.Context, T) R, maxWorkers int) []R {
	if len(items) == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers
	}

	results := make([]R, len(items))
	sem := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(idx int, val T) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = fn(ctx, val)
		}(i, item)
	}
	wg.Wait()

	return results
}

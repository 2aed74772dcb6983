// Package fanout runs a function over a slice with a bounded number of
// goroutines and returns the results in input order.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one input item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most workers goroutines. Items not yet
// started when ctx is done are not passed to fn; their Result carries
// ctx.Err(). A workers value below 1 is treated as 1.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = max(1, min(workers, len(items)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}

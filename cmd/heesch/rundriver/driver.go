// Package rundriver fans a batch of tile records out across a bounded
// worker pool, one independent solver invocation per record, and
// gathers the results back in their original order.
package rundriver

import (
	"context"
	"runtime"
	"sync"

	"github.com/heeschnum/heesch/tilerecord"
)

// ProcessFunc runs the corona search for one record. It owns whatever
// solver state it needs for that single record; ProcessFunc is called
// concurrently from multiple goroutines, each on disjoint records, so
// it must not share mutable state across calls.
type ProcessFunc func(ctx context.Context, rec *tilerecord.Record) (*tilerecord.Record, error)

// Run fans recs out across GOMAXPROCS worker goroutines and returns
// their results restored to recs' original order. The pool is sized
// to runtime.GOMAXPROCS(0), capped at len(recs); each worker pulls
// indices from a shared jobs channel rather than a fixed static split,
// so one shape's slow corona search does not stall workers that have
// already drained their share.
//
// The first error any call to process returns cancels the remaining
// fan-out: in-flight workers finish their current record and stop, and
// Run returns that error with a nil result slice.
func Run(ctx context.Context, recs []*tilerecord.Record, process ProcessFunc) ([]*tilerecord.Record, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(recs) {
		workers = len(recs)
	}

	results := make([]*tilerecord.Record, len(recs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			if runCtx.Err() != nil {
				continue
			}
			out, err := process(runCtx, recs[i])
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				continue
			}
			results[i] = out
		}
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}

	for i := range recs {
		select {
		case jobs <- i:
		case <-runCtx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

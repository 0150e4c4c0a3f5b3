// SPDX-License-Identifier: MIT
// Package: parallel
//
// rows.go — chunked fan-out of row computations with ordered reassembly.
//
// Algorithm:
//  1. Split [0,n) into ceil(n/chunk) contiguous chunks.
//  2. A producer pushes chunk bounds into a channel of capacity = workers.
//  3. Each of the workers pulls chunks and fills out[lo:hi] directly.
//  4. errgroup cancels the context on the first failure; the producer and
//     the remaining workers stop at the next chunk boundary.
//
// Complexity: O(n) scheduling overhead plus the cost of fn.

package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type chunk struct{ lo, hi int }

// Rows evaluates fn for every row in [0,n) on a fixed worker pool and returns
// the results indexed by row. On any failure it returns ErrWorkerFailed
// wrapping the first error and a nil slice.
func Rows[T any](ctx context.Context, n int, fn func(row int) (T, error), opts ...Option) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Rows: n=%d: %w", n, ErrBadRowCount)
	}
	if fn == nil {
		return nil, fmt.Errorf("Rows: %w", ErrNilRowFunc)
	}
	o := DefaultOptions().Apply(opts...)
	if o.Progress != nil {
		o.Progress.start(n)
	}
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}

	workers := o.Workers
	if chunks := (n + o.ChunkSize - 1) / o.ChunkSize; workers > chunks {
		workers = chunks
	}
	b := newBar(o.Bar, n)
	defer b.finish()

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan chunk, workers)

	g.Go(func() error {
		defer close(queue)
		for lo := 0; lo < n; lo += o.ChunkSize {
			hi := min(lo+o.ChunkSize, n)
			select {
			case queue <- chunk{lo: lo, hi: hi}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for c := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				for row := c.lo; row < c.hi; row++ {
					v, err := fn(row)
					if err != nil {
						return fmt.Errorf("row %d: %w", row, err)
					}
					out[row] = v
				}
				if o.Progress != nil {
					o.Progress.add(c.hi - c.lo)
				}
				b.add(c.hi - c.lo)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkerFailed, err)
	}

	return out, nil
}

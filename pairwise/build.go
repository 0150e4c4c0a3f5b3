// SPDX-License-Identifier: MIT
// Package: pairwise
//
// build.go — metric-driven construction of sequence distance matrices.

package pairwise

import (
	"context"
	"fmt"

	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/parallel"
	"github.com/katalvlaran/irneighbors/sparse"
)

// MaxCutoff is the largest accepted cutoff: distances stay within 8 bits.
const MaxCutoff = 255

// cell is one accepted pair of a row: column and offset value.
type cell struct {
	col int
	val uint16
}

// ValidateCutoff checks cutoff bounds and the identity constraint for m.
func ValidateCutoff(m metric.Metric, cutoff int) error {
	if m == nil {
		return ErrNilMetric
	}
	if cutoff < 0 || cutoff > MaxCutoff {
		return fmt.Errorf("cutoff %d not in [0,%d]: %w", cutoff, MaxCutoff, ErrCutoffRange)
	}
	if metric.IsDiagonalOnly(m) && cutoff != 0 {
		return fmt.Errorf("cutoff %d: %w", cutoff, ErrIdentityCutoff)
	}
	return nil
}

// Build computes the upper-triangular offset distance matrix of pool under m.
// opts are forwarded to parallel.Rows (workers, chunk size, progress).
//
// Errors:
//   - ErrCutoffRange, ErrIdentityCutoff, ErrNilMetric before any work;
//   - parallel.ErrWorkerFailed wrapping a metric error (e.g.
//     metric.ErrNegativeDistance).
func Build(ctx context.Context, pool []string, m metric.Metric, cutoff int, opts ...parallel.Option) (*sparse.Matrix[uint16], error) {
	if err := ValidateCutoff(m, cutoff); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	n := len(pool)
	if metric.IsDiagonalOnly(m) {
		if p := parallel.DefaultOptions().Apply(opts...).Progress; p != nil {
			p.Complete(n)
		}
		return sparse.Identity[uint16](n)
	}

	score, err := m.Bind(pool)
	if err != nil {
		return nil, fmt.Errorf("Build: bind %s: %w", m.Name(), err)
	}

	rows, err := parallel.Rows(ctx, n, func(i int) ([]cell, error) {
		var out []cell
		for j := i; j < n; j++ {
			d, ok, err := score(i, j, cutoff)
			if err != nil {
				return nil, err
			}
			if !ok || d > cutoff {
				continue
			}
			if d < 0 {
				return nil, fmt.Errorf("(%d,%d) distance %d: %w", i, j, d, metric.ErrNegativeDistance)
			}
			out = append(out, cell{col: j, val: uint16(d + 1)})
		}
		return out, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %s: %w", m.Name(), err)
	}

	b, err := sparse.NewBuilder[uint16](n, n)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	b.Grow(total)
	for i, r := range rows {
		for _, c := range r {
			if err := b.Add(i, c.col, c.val); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	return b.Build()
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// accumulate.go — keyed get-or-insert reductions over coordinates.

package sparse

import "sort"

// MinAccumulator keeps the minimum value offered per coordinate.
// It is the explicit get-or-insert structure behind min-reduce aggregation.
// Not safe for concurrent use.
type MinAccumulator[V Value] struct {
	rows, cols int
	cells      map[pairKey]V
}

// NewMinAccumulator returns an empty accumulator for a rows×cols matrix.
// Returns ErrBadShape for negative dimensions.
func NewMinAccumulator[V Value](rows, cols int) (*MinAccumulator[V], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewMinAccumulator", ErrBadShape)
	}

	return &MinAccumulator[V]{rows: rows, cols: cols, cells: make(map[pairKey]V)}, nil
}

// Offer records v at (row, col), keeping the smaller of v and any prior value.
// Zero values are ignored: they mean "absent" and can never win a minimum.
func (a *MinAccumulator[V]) Offer(row, col int, v V) error {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return sparseErrorf("Offer", ErrOutOfRange)
	}
	if v == 0 {
		return nil
	}
	k := pairKey{u: row, v: col}
	if cur, ok := a.cells[k]; !ok || v < cur {
		a.cells[k] = v
	}

	return nil
}

// Len returns the number of distinct coordinates seen so far.
func (a *MinAccumulator[V]) Len() int { return len(a.cells) }

// Build emits the accumulated minima as a canonical Matrix.
// Complexity: O(k log k) for k coordinates.
func (a *MinAccumulator[V]) Build() (*Matrix[V], error) {
	keys := make([]pairKey, 0, len(a.cells))
	for k := range a.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}
		return keys[i].v < keys[j].v
	})

	b, err := NewBuilder[V](a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	b.Grow(len(keys))
	for _, k := range keys {
		if err = b.Add(k.u, k.v, a.cells[k]); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// builder.go — append-only COO staging area that freezes into a CSR Matrix.
//
// Contract:
//   - Add validates bounds and rejects zero values immediately.
//   - Build sorts (only when needed), rejects duplicate coordinates and emits
//     the canonical CSR layout.
//   - A Builder may be reused after Build; it keeps its staged entries.

package sparse

import (
	"fmt"
	"sort"
)

// Builder collects entries for a rows×cols matrix.
type Builder[V Value] struct {
	rows, cols int
	entries    []Entry[V]
	sorted     bool // staged entries are already in canonical order
}

// NewBuilder returns an empty Builder for a rows×cols matrix.
// Zero-sized dimensions are allowed (an empty pool yields a 0×0 matrix).
// Returns ErrBadShape for negative dimensions.
// Complexity: O(1).
func NewBuilder[V Value](rows, cols int) (*Builder[V], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewBuilder", ErrBadShape)
	}

	return &Builder[V]{rows: rows, cols: cols, sorted: true}, nil
}

// Grow reserves capacity for n more entries.
func (b *Builder[V]) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(b.entries)-len(b.entries) < n {
		next := make([]Entry[V], len(b.entries), len(b.entries)+n)
		copy(next, b.entries)
		b.entries = next
	}
}

// Add stages value v at (row, col).
// Returns ErrOutOfRange for invalid indices and ErrExplicitZero for v == 0.
// Complexity: O(1) amortized.
func (b *Builder[V]) Add(row, col int, v V) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("Add(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if v == 0 {
		return fmt.Errorf("Add(%d,%d): %w", row, col, ErrExplicitZero)
	}
	e := Entry[V]{Row: row, Col: col, Value: v}
	// track whether appends keep canonical order so Build can skip the sort
	if b.sorted && len(b.entries) > 0 && !less(b.entries[len(b.entries)-1], e) {
		b.sorted = false
	}
	b.entries = append(b.entries, e)

	return nil
}

// AddEntries stages every entry of es, stopping at the first invalid one.
func (b *Builder[V]) AddEntries(es []Entry[V]) error {
	b.Grow(len(es))
	for _, e := range es {
		if err := b.Add(e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of staged entries.
func (b *Builder[V]) Len() int { return len(b.entries) }

// Build freezes the staged entries into a CSR Matrix.
// Returns ErrDuplicateEntry if two entries share a coordinate.
// Complexity: O(nnz) if entries arrived in order, otherwise O(nnz log nnz).
func (b *Builder[V]) Build() (*Matrix[V], error) {
	if !b.sorted {
		sort.SliceStable(b.entries, func(i, j int) bool { return less(b.entries[i], b.entries[j]) })
		b.sorted = true
	}

	m := &Matrix[V]{
		rows:    b.rows,
		cols:    b.cols,
		indptr:  make([]int, b.rows+1),
		indices: make([]int, len(b.entries)),
		data:    make([]V, len(b.entries)),
	}
	for k, e := range b.entries {
		if k > 0 && b.entries[k-1].Row == e.Row && b.entries[k-1].Col == e.Col {
			return nil, fmt.Errorf("Build(%d,%d): %w", e.Row, e.Col, ErrDuplicateEntry)
		}
		m.indptr[e.Row+1]++
		m.indices[k] = e.Col
		m.data[k] = e.Value
	}
	// prefix sums turn per-row counts into row offsets
	for i := 0; i < b.rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	return m, nil
}

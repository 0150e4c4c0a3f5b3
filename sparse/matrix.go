// SPDX-License-Identifier: MIT
// Package: sparse
//
// matrix.go — the immutable CSR Matrix and its read-only queries.
//
// Determinism:
//   - Entries() and Each() enumerate in canonical order (row asc, col asc).
//
// Concurrency:
//   - A built Matrix is never mutated; concurrent readers need no locking.

package sparse

import (
	"fmt"
	"sort"
)

// Matrix is an immutable rows×cols CSR matrix with no stored zeros.
type Matrix[V Value] struct {
	rows, cols int
	indptr     []int // len rows+1; row i occupies [indptr[i], indptr[i+1])
	indices    []int // column of each stored value
	data       []V   // stored values, all non-zero
}

// Empty returns a rows×cols matrix without entries.
// Returns ErrBadShape for negative dimensions.
func Empty[V Value](rows, cols int) (*Matrix[V], error) {
	b, err := NewBuilder[V](rows, cols)
	if err != nil {
		return nil, err
	}

	return b.Build()
}

// Identity returns the n×n matrix with value 1 on the diagonal.
// Under the offset encoding this is "every item at distance 0 from itself".
func Identity[V Value](n int) (*Matrix[V], error) {
	if n < 0 {
		return nil, sparseErrorf("Identity", ErrBadShape)
	}
	m := &Matrix[V]{
		rows:    n,
		cols:    n,
		indptr:  make([]int, n+1),
		indices: make([]int, n),
		data:    make([]V, n),
	}
	for i := 0; i < n; i++ {
		m.indptr[i+1] = i + 1
		m.indices[i] = i
		m.data[i] = 1
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[V]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[V]) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *Matrix[V]) NNZ() int { return len(m.data) }

// At returns the stored value at (i, j) and whether it is present.
// Absent coordinates return (0, false, nil).
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(log d), d = entries in row i.
func (m *Matrix[V]) At(i, j int) (V, bool, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, false, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], j)
	if k < hi && m.indices[k] == j {
		return m.data[k], true, nil
	}

	return 0, false, nil
}

// Row returns copies of the column indices and values stored in row i.
// Returns ErrOutOfRange for an invalid row.
func (m *Matrix[V]) Row(i int) ([]int, []V, error) {
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	cols := make([]int, hi-lo)
	vals := make([]V, hi-lo)
	copy(cols, m.indices[lo:hi])
	copy(vals, m.data[lo:hi])

	return cols, vals, nil
}

// Each calls fn for every stored entry in canonical order.
// Complexity: O(rows + nnz).
func (m *Matrix[V]) Each(fn func(row, col int, v V)) {
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.indices[k], m.data[k])
		}
	}
}

// Entries returns all stored entries in canonical order.
func (m *Matrix[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(m.data))
	m.Each(func(row, col int, v V) {
		out = append(out, Entry[V]{Row: row, Col: col, Value: v})
	})

	return out
}

// Values returns a copy of the stored values in canonical order.
func (m *Matrix[V]) Values() []V {
	out := make([]V, len(m.data))
	copy(out, m.data)

	return out
}

// Transpose returns mᵀ. Complexity: O(rows + cols + nnz).
func (m *Matrix[V]) Transpose() *Matrix[V] {
	t := &Matrix[V]{
		rows:    m.cols,
		cols:    m.rows,
		indptr:  make([]int, m.cols+1),
		indices: make([]int, len(m.data)),
		data:    make([]V, len(m.data)),
	}
	for _, c := range m.indices {
		t.indptr[c+1]++
	}
	for c := 0; c < m.cols; c++ {
		t.indptr[c+1] += t.indptr[c]
	}
	next := make([]int, m.cols)
	copy(next, t.indptr[:m.cols])
	// walking source rows in order keeps each transposed row column-sorted
	m.Each(func(row, col int, v V) {
		k := next[col]
		t.indices[k] = row
		t.data[k] = v
		next[col]++
	})

	return t
}

// String renders the shape and entry count, e.g. "5x5 (7 stored)".
func (m *Matrix[V]) String() string {
	return fmt.Sprintf("%dx%d (%d stored)", m.rows, m.cols, len(m.data))
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// ops.go — value transformations and comparisons that produce new matrices.

package sparse

// Map applies fn to every stored entry and returns a matrix of the results.
// Results equal to zero are dropped, so the output never stores zeros and its
// structure is a subset of m's.
// Complexity: O(rows + nnz).
func Map[V, W Value](m *Matrix[V], fn func(row, col int, v V) W) *Matrix[W] {
	out := &Matrix[W]{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  make([]int, m.rows+1),
		indices: make([]int, 0, len(m.data)),
		data:    make([]W, 0, len(m.data)),
	}
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			w := fn(i, m.indices[k], m.data[k])
			if w == 0 {
				continue
			}
			out.indices = append(out.indices, m.indices[k])
			out.data = append(out.data, w)
		}
		out.indptr[i+1] = len(out.data)
	}

	return out
}

// Convert changes the value type of m without changing any value.
func Convert[V, W Value](m *Matrix[V]) *Matrix[W] {
	return Map(m, func(_, _ int, v V) W { return W(v) })
}

// Equal reports whether a and b have the same shape, structure and values.
// Canonical ordering makes this a flat slice comparison.
func Equal[V Value](a, b *Matrix[V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.indptr {
		if a.indptr[i] != b.indptr[i] {
			return false
		}
	}
	for k := range a.data {
		if a.indices[k] != b.indices[k] || a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// dense.go — export to gonum dense matrices for downstream linear algebra
// (spectral layouts, eigen-based embeddings).

package sparse

import "gonum.org/v1/gonum/mat"

// ToDense expands m into a gonum *mat.Dense; absent entries become 0.
// gonum cannot represent empty shapes, so a 0-row or 0-column matrix yields
// ErrBadShape.
// Complexity: O(rows*cols) memory; intended for small matrices.
func ToDense[V Value](m *Matrix[V]) (*mat.Dense, error) {
	if m == nil {
		return nil, sparseErrorf("ToDense", ErrNilMatrix)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf("ToDense", ErrBadShape)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.Each(func(row, col int, v V) {
		d.Set(row, col, float64(v))
	})

	return d, nil
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// validators.go — canonical structural checks.
//
// Each validator returns a wrapped sentinel so call sites can branch with
// errors.Is; all of them are read-only and allocate nothing beyond the
// transpose used by ValidateSymmetric.

package sparse

import "fmt"

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare[V Value](m *Matrix[V]) error {
	if m == nil {
		return sparseErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}

// ValidateUpperTriangular ensures every stored entry satisfies row <= col.
// Complexity: O(rows + nnz).
func ValidateUpperTriangular[V Value](m *Matrix[V]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.rows; i++ {
		lo, hi := m.indptr[i], m.indptr[i+1]
		// columns are sorted, so the first one decides the row
		if lo < hi && m.indices[lo] < i {
			return fmt.Errorf("ValidateUpperTriangular: (%d,%d): %w", i, m.indices[lo], ErrLowerTriangle)
		}
	}

	return nil
}

// ValidateSymmetric ensures m equals its transpose.
// Complexity: O(rows + nnz) time, O(nnz) extra space.
func ValidateSymmetric[V Value](m *Matrix[V]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !Equal(m, m.Transpose()) {
		return sparseErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	return nil
}

// ValidateMaxValue ensures no stored value exceeds limit.
func ValidateMaxValue[V Value](m *Matrix[V], limit V) error {
	if m == nil {
		return sparseErrorf("ValidateMaxValue", ErrNilMatrix)
	}
	for k, v := range m.data {
		if v > limit {
			return fmt.Errorf("ValidateMaxValue: entry %d holds %v > %v: %w", k, v, limit, ErrValueRange)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: sparse
//
// errors.go — sentinel errors for the sparse package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context with sparseErrorf(method, err) so the sentinel
//     survives wrapping.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension,
	// or when an export requires a non-empty shape.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrExplicitZero is returned when a zero value is offered for storage.
	// Zero is reserved for "absent" and is never materialized.
	ErrExplicitZero = errors.New("sparse: explicit zero value")

	// ErrDuplicateEntry indicates two values were supplied for one coordinate.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrAsymmetry signals that (i,j) and (j,i) disagree in a matrix expected
	// to be symmetric.
	ErrAsymmetry = errors.New("sparse: matrix is not symmetric")

	// ErrLowerTriangle signals an entry below the diagonal in a matrix
	// expected to be upper triangular.
	ErrLowerTriangle = errors.New("sparse: entry below diagonal")

	// ErrValueRange signals a stored value above the allowed maximum.
	ErrValueRange = errors.New("sparse: value out of range")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf tags err with the method name: "<method>: <err>".
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

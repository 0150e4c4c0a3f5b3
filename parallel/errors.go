// SPDX-License-Identifier: MIT
// Package: parallel
//
// errors.go — sentinel errors for the row scheduler.

package parallel

import "errors"

var (
	// ErrWorkerFailed wraps the first error returned by a row function.
	ErrWorkerFailed = errors.New("parallel: worker failed")

	// ErrBadRowCount indicates a negative number of rows.
	ErrBadRowCount = errors.New("parallel: row count must be non-negative")

	// ErrNilRowFunc indicates a nil row function.
	ErrNilRowFunc = errors.New("parallel: nil row function")
)

// SPDX-License-Identifier: MIT
// Package: metric
//
// errors.go — sentinel errors for distance metrics.

package metric

import "errors"

var (
	// ErrUnknownMetric is returned by Parse for an unrecognized metric name.
	ErrUnknownMetric = errors.New("metric: unknown metric")

	// ErrNegativeDistance signals an alignment score above both self scores.
	// It indicates an inconsistent substitution matrix for the inputs.
	ErrNegativeDistance = errors.New("metric: negative alignment distance")

	// ErrBadMatrix indicates a malformed substitution matrix.
	ErrBadMatrix = errors.New("metric: invalid substitution matrix")

	// ErrBadPenalty indicates a negative gap penalty.
	ErrBadPenalty = errors.New("metric: gap penalties must be non-negative")

	// ErrIndexOutOfRange indicates a Scorer call with a pool index outside the bound pool.
	ErrIndexOutOfRange = errors.New("metric: pool index out of range")
)

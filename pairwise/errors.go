// SPDX-License-Identifier: MIT
// Package: pairwise
//
// errors.go — configuration errors raised before any pairwise work.

package pairwise

import "errors"

var (
	// ErrCutoffRange indicates a cutoff outside [0, MaxCutoff].
	ErrCutoffRange = errors.New("pairwise: cutoff out of range")

	// ErrIdentityCutoff indicates a non-zero cutoff with the identity metric.
	ErrIdentityCutoff = errors.New("pairwise: identity metric requires cutoff 0")

	// ErrNilMetric indicates a nil metric.
	ErrNilMetric = errors.New("pairwise: nil metric")
)

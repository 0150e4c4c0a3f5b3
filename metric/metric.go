// SPDX-License-Identifier: MIT
// Package: metric
//
// metric.go — the Metric contract and name-based construction.

package metric

import (
	"fmt"
	"strings"
)

// Metric names accepted by Parse.
const (
	NameIdentity     = "identity"
	NameLevenshtein  = "levenshtein"
	NameEditDistance = "edit-distance" // alias of NameLevenshtein
	NameAlignment    = "alignment"
)

// Scorer reports the distance between pool entries i and j.
// ok is false when the distance exceeds cutoff; dist is then unspecified.
// A Scorer must be symmetric in i and j and safe for concurrent use.
type Scorer func(i, j, cutoff int) (dist int, ok bool, err error)

// Metric binds a distance function to a unique-sequence pool.
type Metric interface {
	// Name identifies the metric in stored parameters and logs.
	Name() string
	// Bind precomputes pool-wide state once and returns the pair scorer.
	// The pool must not be modified while the Scorer is in use.
	Bind(pool []string) (Scorer, error)
}

// DiagonalOnly is implemented by metrics whose result is exactly the
// identity relation, letting callers skip pairwise dispatch entirely.
type DiagonalOnly interface {
	DiagonalOnly() bool
}

// IsDiagonalOnly reports whether m declares the identity relation as its result.
func IsDiagonalOnly(m Metric) bool {
	d, ok := m.(DiagonalOnly)
	return ok && d.DiagonalOnly()
}

// Parse returns the metric registered under name (case-insensitive).
// Options configure Alignment and are ignored by the other metrics.
// Returns ErrUnknownMetric for any other name.
func Parse(name string, opts ...Option) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameIdentity:
		return Identity{}, nil
	case NameLevenshtein, NameEditDistance:
		return Levenshtein{}, nil
	case NameAlignment:
		return NewAlignment(opts...)
	default:
		return nil, fmt.Errorf("Parse: %q: %w", name, ErrUnknownMetric)
	}
}

// checkIndex validates that i and j address the bound pool.
func checkIndex(i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("(%d,%d) with pool of %d: %w", i, j, n, ErrIndexOutOfRange)
	}
	return nil
}

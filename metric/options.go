// SPDX-License-Identifier: MIT
// Package: metric
//
// options.go — functional options for the Alignment metric.

package metric

// Default alignment parameters.
const (
	DefaultGapOpen   = 11
	DefaultGapExtend = 1
)

// Option configures an Alignment.
type Option func(*Alignment)

// WithSubstitutionMatrix sets the residue scoring table (default BLOSUM62).
// A nil matrix keeps the current one.
func WithSubstitutionMatrix(sm *SubstitutionMatrix) Option {
	return func(a *Alignment) {
		if sm != nil {
			a.Matrix = sm
		}
	}
}

// WithGapOpen sets the cost of the first residue of a gap.
func WithGapOpen(p int) Option {
	return func(a *Alignment) { a.GapOpen = p }
}

// WithGapExtend sets the cost of each further residue of a gap.
func WithGapExtend(p int) Option {
	return func(a *Alignment) { a.GapExtend = p }
}

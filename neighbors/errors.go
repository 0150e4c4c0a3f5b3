// SPDX-License-Identifier: MIT
// Package: neighbors
//
// errors.go — configuration and lifecycle errors.

package neighbors

import "errors"

var (
	// ErrInvalidConfig wraps every configuration error raised by Validate.
	ErrInvalidConfig = errors.New("neighbors: invalid configuration")

	// ErrUnknownArms indicates a receptor_arms value other than VJ, VDJ, all or any.
	ErrUnknownArms = errors.New("neighbors: unknown receptor_arms")

	// ErrUnknownDualChain indicates a dual_chain value other than primary_only, any or all.
	ErrUnknownDualChain = errors.New("neighbors: unknown dual_chain")

	// ErrUnknownSequence indicates a sequence value other than aa or nt.
	ErrUnknownSequence = errors.New("neighbors: unknown sequence type")

	// ErrAlignmentNucleotide indicates the alignment metric with nucleotide input.
	ErrAlignmentNucleotide = errors.New("neighbors: alignment metric requires amino-acid sequences")

	// ErrBadParallelism indicates a negative worker count or chunk size.
	ErrBadParallelism = errors.New("neighbors: workers and chunk_size must be non-negative")

	// ErrNotComputed is returned by accessors before Compute succeeded.
	ErrNotComputed = errors.New("neighbors: distances not computed")

	// ErrNilTable indicates a nil table.
	ErrNilTable = errors.New("neighbors: nil table")

	// ErrResultNotFound is returned by a Store for an unknown key.
	ErrResultNotFound = errors.New("neighbors: result not found")
)

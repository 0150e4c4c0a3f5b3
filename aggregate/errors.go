// SPDX-License-Identifier: MIT
// Package: aggregate
//
// errors.go — sentinel errors for entity-space aggregation.

package aggregate

import "errors"

var (
	// ErrInconsistentCombination signals a chain-combination shape that the
	// dual-chain "all" policy cannot reduce, such as three of four chain
	// pairings within the cutoff.
	ErrInconsistentCombination = errors.New("aggregate: inconsistent chain combination")

	// ErrUnknownDualPolicy indicates an unrecognized dual-chain policy.
	ErrUnknownDualPolicy = errors.New("aggregate: unknown dual-chain policy")

	// ErrUnknownArmPolicy indicates an unrecognized arm policy.
	ErrUnknownArmPolicy = errors.New("aggregate: unknown arm policy")

	// ErrEntityCount indicates an arm index built for a different entity count.
	ErrEntityCount = errors.New("aggregate: entity count mismatch")

	// ErrDistShape indicates a distance matrix that does not match its pool.
	ErrDistShape = errors.New("aggregate: distance matrix shape mismatch")

	// ErrChainCount indicates more than two chain slots in an arm.
	ErrChainCount = errors.New("aggregate: at most two chain slots per arm")
)

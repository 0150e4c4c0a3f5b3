// SPDX-License-Identifier: MIT
// Package: seqindex
//
// errors.go — sentinel errors for index construction.

package seqindex

import "errors"

var (
	// ErrColumnLength indicates a slot column whose length differs from the entity count.
	ErrColumnLength = errors.New("seqindex: column length mismatch")

	// ErrNoChains indicates an empty chain list.
	ErrNoChains = errors.New("seqindex: no chain slots")

	// ErrUnknownChain indicates a lookup of a chain slot the index was not built for.
	ErrUnknownChain = errors.New("seqindex: unknown chain slot")

	// ErrUnknownSequenceType indicates a sequence type other than aa or nt.
	ErrUnknownSequenceType = errors.New("seqindex: unknown sequence type")
)

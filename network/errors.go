// SPDX-License-Identifier: MIT
// Package: network
//
// errors.go — sentinel errors for entity graphs.

package network

import "errors"

var (
	// ErrShapeMismatch indicates an entity count that differs from the matrix shape.
	ErrShapeMismatch = errors.New("network: entity count does not match matrix shape")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("network: vertex ID is empty")

	// ErrDuplicateID indicates an entity ID that appears more than once.
	ErrDuplicateID = errors.New("network: duplicate entity ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrLengthMismatch indicates label slices of different lengths.
	ErrLengthMismatch = errors.New("network: label length mismatch")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("network: graph is nil")
)

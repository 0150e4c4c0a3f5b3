// SPDX-License-Identifier: MIT
// Package: network
//
// build.go — graphs from entity matrices.

package network

import (
	"fmt"

	"github.com/katalvlaran/irneighbors/sparse"
)

// FromMatrices builds the entity graph of dist. ids[i] names entity i. When
// conn is non-nil, edge weights are connectivities and its shape must match
// as well; otherwise every edge weighs 1.
// Returns ErrShapeMismatch before building anything if the shapes disagree.
func FromMatrices(ids []string, dist *sparse.Matrix[uint16], conn *sparse.Matrix[float64]) (*Graph, error) {
	if dist == nil {
		return nil, fmt.Errorf("FromMatrices: %w", sparse.ErrNilMatrix)
	}
	if dist.Rows() != len(ids) || dist.Cols() != len(ids) {
		return nil, fmt.Errorf("FromMatrices: %d entities, distance matrix %s: %w", len(ids), dist, ErrShapeMismatch)
	}
	if conn != nil && (conn.Rows() != len(ids) || conn.Cols() != len(ids)) {
		return nil, fmt.Errorf("FromMatrices: %d entities, connectivity matrix %s: %w", len(ids), conn, ErrShapeMismatch)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("FromMatrices: %w", ErrEmptyVertexID)
		}
		if seen[id] {
			return nil, fmt.Errorf("FromMatrices: %q: %w", id, ErrDuplicateID)
		}
		seen[id] = true
	}

	g := NewGraph()
	// vertices first, in entity order
	for i := range ids {
		cols, _, err := dist.Row(i)
		if err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			_ = g.AddVertex(ids[i])
		}
	}
	var err error
	dist.Each(func(row, col int, _ uint16) {
		if err != nil || row >= col {
			return
		}
		w := 1.0
		if conn != nil {
			v, ok, e := conn.At(row, col)
			if e != nil {
				err = e
				return
			}
			if !ok {
				return
			}
			w = v
		}
		err = g.AddEdge(ids[row], ids[col], w)
	})
	if err != nil {
		return nil, fmt.Errorf("FromMatrices: %w", err)
	}

	return g, nil
}

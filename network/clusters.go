// SPDX-License-Identifier: MIT
// Package: network
//
// clusters.go — clonotype cluster labels and size filtering.

package network

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/irneighbors/sparse"
)

// Assignment is the cluster membership of every entity.
type Assignment struct {
	// Labels[i] is the cluster of entity i, "" when the entity has no
	// stored entry and so belongs to no cluster.
	Labels []string
	// Sizes[i] is the number of entities sharing Labels[i]; 0 without a label.
	Sizes []int
}

// NumClusters returns the number of distinct non-empty labels.
func (a Assignment) NumClusters() int {
	seen := make(map[string]struct{})
	for _, l := range a.Labels {
		if l != "" {
			seen[l] = struct{}{}
		}
	}
	return len(seen)
}

// Clusters labels each entity with its connected component in the graph of
// dist. Labels are "0", "1", ... numbered by the lowest entity index in the
// component.
func Clusters(ctx context.Context, ids []string, dist *sparse.Matrix[uint16]) (Assignment, error) {
	g, err := FromMatrices(ids, dist, nil)
	if err != nil {
		return Assignment{}, err
	}
	return Assign(ctx, g, ids)
}

// Assign labels each entity of ids with its connected component in g.
// Entities that are not vertices of g get no label. Labels are numbered in
// g's vertex order, which FromMatrices and InducedSubgraph keep in entity
// order.
func Assign(ctx context.Context, g *Graph, ids []string) (Assignment, error) {
	comps, err := Components(ctx, g)
	if err != nil {
		return Assignment{}, err
	}

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	a := Assignment{Labels: make([]string, len(ids)), Sizes: make([]int, len(ids))}
	for c, comp := range comps {
		label := strconv.Itoa(c)
		for _, id := range comp {
			i, ok := pos[id]
			if !ok {
				return Assignment{}, fmt.Errorf("Assign %q: %w", id, ErrVertexNotFound)
			}
			a.Labels[i] = label
			a.Sizes[i] = len(comp)
		}
	}
	return a, nil
}

// MinSize returns the subgraph of g induced by components of at least k
// vertices. k ≤ 1 returns a copy of g.
func MinSize(ctx context.Context, g *Graph, k int) (*Graph, error) {
	comps, err := Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("MinSize: %w", err)
	}
	var keep []string
	for _, comp := range comps {
		if len(comp) >= k {
			keep = append(keep, comp...)
		}
	}
	return g.InducedSubgraph(keep), nil
}

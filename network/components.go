// SPDX-License-Identifier: MIT
// Package: network
//
// components.go — connected components by breadth-first search.
//
// Algorithm:
//  1. Visit vertices in Graph order; each unvisited vertex seeds a new
//     component.
//  2. Expand the seed with a FIFO queue over NeighborIDs, marking vertices
//     when enqueued so each is processed once.
//
// Complexity: O(V + E·log d). Memory: O(V).

package network

import (
	"context"
	"fmt"
)

// walker holds BFS state shared across seeds.
type walker struct {
	graph   *Graph
	ctx     context.Context
	queue   []string
	visited map[string]bool
}

// Components returns the connected components of g. Components are ordered
// by their first vertex in Graph order and list members in visit order.
// Cancelling ctx aborts between vertices and returns ctx.Err().
func Components(ctx context.Context, g *Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &walker{
		graph:   g,
		ctx:     ctx,
		visited: make(map[string]bool, g.VertexCount()),
	}
	var out [][]string
	for _, seed := range g.Vertices() {
		if w.visited[seed] {
			continue
		}
		comp, err := w.expand(seed)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}
	return out, nil
}

// expand runs one BFS from seed and returns the vertices it reached.
func (w *walker) expand(seed string) ([]string, error) {
	w.queue = append(w.queue[:0], seed)
	w.visited[seed] = true
	var comp []string
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		u := w.queue[0]
		w.queue = w.queue[1:]
		comp = append(comp, u)
		nbrs, err := w.graph.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("Components: %w", err)
		}
		for _, v := range nbrs {
			if !w.visited[v] {
				w.visited[v] = true
				w.queue = append(w.queue, v)
			}
		}
	}
	return comp, nil
}

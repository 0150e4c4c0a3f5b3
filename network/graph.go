// SPDX-License-Identifier: MIT
// Package: network
//
// graph.go — the undirected, weighted entity Graph.
//
// Concurrency:
//   - mu guards vertices, order and adjacency; readers take RLock.
//
// Determinism:
//   - Vertices() follows insertion order; NeighborIDs() follows the
//     insertion order of the neighbors.

package network

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is an undirected weighted graph over entity IDs without loops or
// parallel edges.
type Graph struct {
	mu       sync.RWMutex
	order    []string                      // vertex IDs in insertion order
	position map[string]int                // vertex ID → index in order
	adj      map[string]map[string]float64 // adj[u][v] = weight, mirrored
	edges    int
}

// NewGraph creates an empty Graph. Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		position: make(map[string]int),
		adj:      make(map[string]map[string]float64),
	}
}

// AddVertex inserts id if absent. Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.position[id]; ok {
		return
	}
	g.position[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]float64)
}

// AddEdge connects u and v with weight w, adding missing vertices.
// A self-loop only ensures the vertex exists. A repeated edge keeps the
// larger weight. Complexity: O(1).
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if u == v {
		return nil
	}
	old, ok := g.adj[u][v]
	if !ok {
		g.edges++
	} else if old >= w {
		return nil
	}
	g.adj[u][v] = w
	g.adj[v][u] = w
	return nil
}

// HasVertex reports whether id exists. Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.position[id]
	return ok
}

// HasEdge reports whether u and v are adjacent. Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]
	return ok
}

// Weight returns the weight of edge u–v.
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]
	return w, ok
}

// Vertices returns all vertex IDs in insertion order. Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.order...)
}

// NeighborIDs returns the neighbors of id in insertion order.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs %q: %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return g.position[out[i]] < g.position[out[j]] })
	return out, nil
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// InducedSubgraph returns the subgraph over the listed vertices, keeping
// the receiver's vertex order. Unknown IDs are ignored. Complexity: O(V+E).
func (g *Graph) InducedSubgraph(ids []string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	sub := NewGraph()
	for _, u := range g.order {
		if keep[u] {
			sub.addVertexLocked(u)
		}
	}
	for _, u := range sub.order {
		for v, w := range g.adj[u] {
			if keep[v] && g.position[u] < g.position[v] {
				sub.adj[u][v] = w
				sub.adj[v][u] = w
				sub.edges++
			}
		}
	}
	return sub
}

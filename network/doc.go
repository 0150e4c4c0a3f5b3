// Package network builds the undirected entity graph implied by a distance
// or connectivity matrix and derives clonotype clusters from it.
//
// The Graph G = (V,E):
//
//   - V: every entity with at least one stored matrix entry (its diagonal
//     counts), identified by its entity ID.
//   - E: one undirected edge per off-diagonal stored pair i < j, weighted by
//     connectivity (or 1 when no connectivity matrix is given).
//   - Vertices() and NeighborIDs() enumerate in entity order, so all derived
//     results are deterministic.
//   - A single sync.RWMutex guards vertices and adjacency.
//
// Derived results:
//
//	Components(ctx, g)        // BFS, ordered by lowest entity index
//	Clusters(ctx, ids, dist)  // per-entity labels and cluster sizes
//	Assign(ctx, g, ids)       // the same labels over an existing graph
//	MinSize(ctx, g, k)        // induced subgraph of components with ≥ k vertices
//	Convergence(coarse, fine) // coarse clusters holding > 1 fine cluster
//
// Errors:
//
//	ErrShapeMismatch  – entity count differs from the matrix shape
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrDuplicateID    – an entity ID appears twice
//	ErrVertexNotFound – missing vertex
//	ErrLengthMismatch – label slices of different lengths
package network

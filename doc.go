// Package irneighbors computes sparse neighbor graphs between immune cells
// from the CDR3 sequences of their receptor chains.
//
// 🚀 What is irneighbors?
//
//	A concurrent library and CLI that brings together:
//		• Metrics: identity, bounded Levenshtein, BLOSUM62 Gotoh alignment
//		• Sparse CSR matrices with offset-by-one encoding (0 = absent)
//		• A chunked worker pool with progress reporting
//		• Policy-driven lifting of sequence distances to cell distances
//		• Connectivities, clonotype clusters and convergence
//
// ✨ Pipeline
//
//	cell table ─▶ seqindex ─▶ pairwise (per arm) ─▶ aggregate ─▶ neighbors.Result
//	                                                               │
//	                                                        network.Clusters
//
// Under the hood, everything is organized under these subpackages:
//
//	sparse/    — immutable CSR matrices, builders, validators, gonum export
//	metric/    — Metric interface, identity, Levenshtein, alignment, BLOSUM62
//	parallel/  — row scheduler over errgroup with pb progress bars
//	pairwise/  — cutoff-bounded upper-triangular sequence distances
//	table/     — entity tables and TSV input
//	seqindex/  — unique-sequence pools per receptor arm and chain
//	aggregate/ — receptor_arms and dual_chain reductions
//	neighbors/ — configuration, orchestration, connectivities, result store
//	network/   — entity graphs, components, clusters, convergence
//	cmd/irneighbors — the command-line front end
//
// Quick example:
//
//	cfg := neighbors.DefaultConfig()
//	res, err := neighbors.Run(ctx, frame, cfg, neighbors.NewMemoryStore())
//
//	go install github.com/katalvlaran/irneighbors/cmd/irneighbors@latest
package irneighbors

// Package neighbors computes the entity×entity CDR3 distance and
// connectivity matrices from a data table and a declarative Config.
//
// Pipeline:
//
//	table.Table ──seqindex.Build──▶ per-arm pools
//	            ──pairwise.Build──▶ per-arm sequence matrices (parallel rows)
//	            ──aggregate──────▶ entity distance matrix (offset-encoded)
//	            ──Connectivities─▶ weights in (0, 1]
//
// Configuration errors (ErrInvalidConfig) are raised by New before any
// pairwise work. Compute runs once; Distances and Connectivities return the
// cached artifacts. Run wraps the whole flow and can write the result into a
// Store under Config.Key together with the parameters and a run ID.
//
// Usage:
//
//	cfg := neighbors.DefaultConfig()
//	cfg.Metric, cfg.Cutoff = "levenshtein", 1
//	res, err := neighbors.Run(ctx, frame, cfg, store, neighbors.WithLogger(log))
package neighbors

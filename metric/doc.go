// Package metric defines the pluggable sequence distance metrics used to
// build pairwise CDR3 distance matrices.
//
// A Metric is bound once to a unique-sequence pool. Binding performs any
// pool-wide precomputation (self-alignment scores for Alignment) and returns
// a Scorer: a pure function of two pool indices and a cutoff that is safe to
// call from many goroutines at once.
//
// Metrics:
//   - Identity    — distance 0 for equal sequences, everything else beyond
//     any cutoff. Only the diagonal is ever reported.
//   - Levenshtein — byte-level edit distance with cutoff-bounded early exit.
//   - Alignment   — global affine-gap alignment scored with a substitution
//     matrix (BLOSUM62 by default); distance = min(S(i,i), S(j,j)) − S(i,j).
//
// Usage:
//
//	m, err := metric.Parse("alignment", metric.WithGapOpen(11))
//	score, err := m.Bind(pool)
//	d, ok, err := score(i, j, cutoff)
//
// Complexity:
//   - Levenshtein: O(|a|·|b|) time, O(|b|) memory.
//   - Alignment:   O(|a|·|b|) time, O(|b|) memory; Bind adds O(Σ|s|²).
package metric

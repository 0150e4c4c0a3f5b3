// Package pairwise builds the sparse, offset-encoded, upper-triangular
// distance matrix of a unique-sequence pool under a metric and a cutoff.
//
// Encoding: a stored value v means distance v−1. Pairs beyond the cutoff are
// absent; zero is never stored. The result is n×n with row ≤ col and every
// value in [1, cutoff+1].
//
// The builder validates its arguments before doing any work, binds the metric
// once (self-alignment scores and similar pool-wide state), then dispatches
// one closure per row (row i against i..n−1) through parallel.Rows and
// concatenates the rows in order.
package pairwise

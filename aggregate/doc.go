// Package aggregate turns per-arm sequence×sequence distance matrices into
// one entity×entity distance matrix.
//
// Each stored sequence pair (row ≤ col, offset value v) of an arm reaches
// every entity pair (x, y) where x carries the row sequence in chain slot c1
// and y carries the column sequence in slot c2. The mirrored pair (y, x) is
// recorded under the swapped combination (c2, c1) unless row == col.
//
// Strategies:
//   - MinReduce keeps the smallest value per entity pair over all arms and
//     chain combinations.
//   - Reduce first reduces chain combinations within an arm (DualPolicy),
//     then reduces arms (ArmPolicy). Combined values above cutoff+1 are
//     dropped.
//
// The result is square, symmetric, offset-encoded and never stores zero.
package aggregate

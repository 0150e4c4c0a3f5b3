// Package sparse provides immutable compressed-row (CSR) matrices with an
// offset-encoded value convention used throughout irneighbors.
//
// What & Why:
//
//	Distance matrices between tens of thousands of sequences are mostly empty:
//	only pairs within the cutoff are kept. The package stores such matrices in
//	CSR form where the implicit zero means "no edge / beyond cutoff" and every
//	stored value is strictly non-zero.
//
// Offset encoding:
//
//	value = distance + 1
//	0 → absent (never stored), 1 → distance 0, 2 → distance 1, ...
//
// Invariants enforced by construction:
//   - Builder.Add rejects explicit zeros (ErrExplicitZero) and duplicate
//     coordinates (ErrDuplicateEntry, reported by Build).
//   - Entries are kept in canonical order: row ascending, column ascending.
//   - Matrices are read-only once built; all transformations return new values.
//
// Complexity:
//
//	Build     O(nnz log nnz) when input is unsorted, O(nnz) when already ordered.
//	At        O(log d) where d is the number of stored entries in the row.
//	Each/Map  O(rows + nnz).
//
// See example_test.go for a walkthrough.
package sparse

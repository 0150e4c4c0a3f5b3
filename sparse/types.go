// SPDX-License-Identifier: MIT

// Package sparse: value constraint and coordinate types.
package sparse

// Value is the set of element types a sparse matrix may hold.
// Distances use unsigned integers (offset-encoded); connectivities use float64.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~int | ~float64
}

// Entry is one stored coordinate/value triple.
type Entry[V Value] struct {
	Row   int
	Col   int
	Value V
}

// pairKey is an ordered (row, col) pair, compact and hash-friendly.
type pairKey struct {
	u int // row index
	v int // column index
}

// less reports canonical order: row ascending, then column ascending.
func less[V Value](a, b Entry[V]) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

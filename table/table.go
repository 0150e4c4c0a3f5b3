// SPDX-License-Identifier: MIT
// Package: table
//
// table.go — the Table contract, missing-value sentinels and the Frame type.

package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrColumnNotFound indicates a lookup of an absent column.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrColumnLength indicates a column whose length differs from the entity count.
	ErrColumnLength = errors.New("table: column length mismatch")

	// ErrDuplicateColumn indicates a second column with an existing name.
	ErrDuplicateColumn = errors.New("table: duplicate column")

	// ErrMalformed indicates unreadable tabular input.
	ErrMalformed = errors.New("table: malformed input")
)

// Table gives column access to per-entity values.
type Table interface {
	// NumEntities returns the number of rows (entities).
	NumEntities() int
	// IDs returns the entity identifiers in row order.
	IDs() []string
	// Column returns the values of the named column in row order.
	Column(name string) ([]string, error)
}

// missing lists the lower-cased spellings treated as "no value".
var missing = map[string]struct{}{"": {}, "nan": {}, "none": {}, "na": {}}

// IsMissing reports whether s is a missing-value sentinel
// ("", "nan", "none", "na"; case-insensitive, surrounding space ignored).
func IsMissing(s string) bool {
	_, ok := missing[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Frame is an in-memory Table. Not safe for concurrent mutation.
type Frame struct {
	ids     []string
	columns map[string][]string
}

// NewFrame returns a Frame over the given entity IDs with no columns.
func NewFrame(ids []string) *Frame {
	return &Frame{ids: append([]string(nil), ids...), columns: make(map[string][]string)}
}

// AddColumn attaches values under name. The slice is copied.
// Returns ErrColumnLength or ErrDuplicateColumn.
func (f *Frame) AddColumn(name string, values []string) error {
	if len(values) != len(f.ids) {
		return fmt.Errorf("AddColumn %q: %d values for %d entities: %w", name, len(values), len(f.ids), ErrColumnLength)
	}
	if _, ok := f.columns[name]; ok {
		return fmt.Errorf("AddColumn %q: %w", name, ErrDuplicateColumn)
	}
	f.columns[name] = append([]string(nil), values...)
	return nil
}

// NumEntities returns the number of entities.
func (f *Frame) NumEntities() int { return len(f.ids) }

// IDs returns a copy of the entity identifiers.
func (f *Frame) IDs() []string { return append([]string(nil), f.ids...) }

// Column returns the named column. The returned slice must not be modified.
func (f *Frame) Column(name string) ([]string, error) {
	v, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("Column %q: %w", name, ErrColumnNotFound)
	}
	return v, nil
}

// ColumnNames returns the column names in sorted order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, 0, len(f.columns))
	for n := range f.columns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

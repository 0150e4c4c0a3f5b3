// Package table is the entity data-table boundary: per-entity string columns
// keyed by name, plus the entity identifiers.
//
// Frame is the in-memory implementation; ReadTSV loads one from a
// tab-separated file whose first column holds entity IDs.
package table

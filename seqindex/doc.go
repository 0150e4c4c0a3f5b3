// Package seqindex maps unique CDR3 sequences to the entities that carry
// them, per receptor arm and chain slot.
//
// For one arm the pool is the sorted, deduplicated union of every
// non-missing sequence in every considered chain slot. For each slot the
// index stores, per pool entry, the ascending list of entity indices holding
// that sequence in that slot, and per entity the pool index it holds (or -1).
//
// Construction is linear in entities plus unique sequences: one reverse
// lookup map, one scan per slot, one inversion pass.
package seqindex

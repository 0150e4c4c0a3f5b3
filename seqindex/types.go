// SPDX-License-Identifier: MIT
// Package: seqindex
//
// types.go — arms, chain slots, sequence types and column naming.

package seqindex

import (
	"fmt"
	"strings"
)

// Receptor arms.
const (
	ArmVJ  = "VJ"
	ArmVDJ = "VDJ"
)

// Chain slots: the primary and secondary chain of an arm.
const (
	ChainPrimary   = 1
	ChainSecondary = 2
)

// SequenceType selects the amino-acid or nucleotide CDR3 column.
type SequenceType string

const (
	AminoAcid  SequenceType = "aa"
	Nucleotide SequenceType = "nt"
)

// ParseSequenceType accepts "aa" or "nt" (case-insensitive).
func ParseSequenceType(s string) (SequenceType, error) {
	switch SequenceType(strings.ToLower(strings.TrimSpace(s))) {
	case AminoAcid:
		return AminoAcid, nil
	case Nucleotide:
		return Nucleotide, nil
	default:
		return "", fmt.Errorf("ParseSequenceType %q: %w", s, ErrUnknownSequenceType)
	}
}

// ColumnName returns the table column holding the CDR3 of (arm, chain),
// e.g. "VJ_1_cdr3" for amino acids and "VJ_1_cdr3_nt" for nucleotides.
func ColumnName(arm string, chain int, seq SequenceType) string {
	name := fmt.Sprintf("%s_%d_cdr3", arm, chain)
	if seq == Nucleotide {
		name += "_nt"
	}
	return name
}

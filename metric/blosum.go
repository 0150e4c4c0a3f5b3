// SPDX-License-Identifier: MIT
// Package: metric
//
// blosum.go — amino-acid substitution scores.
//
// Lookup:
//   - residues are matched case-insensitively;
//   - any byte outside the alphabet scores as the wildcard 'X'.

package metric

import "fmt"

// SubstitutionMatrix scores residue pairs for alignment.
// Built once and read-only afterwards, so it is safe to share across workers.
type SubstitutionMatrix struct {
	name     string
	alphabet string
	index    [256]uint8 // byte -> row/col of scores
	scores   [][]int
}

// blosum62Alphabet is the NCBI residue order of the BLOSUM62 table.
const blosum62Alphabet = "ARNDCQEGHILKMFPSTWYVBZX*"

var blosum62Scores = [][]int{
	{4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0, -2, -1, 0, -4}, // A
	{-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3, -1, 0, -1, -4}, // R
	{-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3, 3, 0, -1, -4}, // N
	{-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3, 4, 1, -1, -4}, // D
	{0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1, -3, -3, -2, -4}, // C
	{-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2, 0, 3, -1, -4}, // Q
	{-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4}, // E
	{0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3, -1, -2, -1, -4}, // G
	{-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3, 0, 0, -1, -4}, // H
	{-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3, -3, -3, -1, -4}, // I
	{-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1, -4, -3, -1, -4}, // L
	{-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2, 0, 1, -1, -4}, // K
	{-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1, -3, -1, -1, -4}, // M
	{-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1, -3, -3, -1, -4}, // F
	{-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2, -2, -1, -2, -4}, // P
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2, 0, 0, 0, -4}, // S
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0, -1, -1, 0, -4}, // T
	{-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3, -4, -3, -2, -4}, // W
	{-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1, -3, -2, -1, -4}, // Y
	{0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4, -3, -2, -1, -4}, // V
	{-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4, 1, -1, -4}, // B
	{-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4}, // Z
	{0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1, -4}, // X
	{-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 1}, // *
}

// BLOSUM62 is the default substitution matrix for the Alignment metric.
var BLOSUM62 = mustSubstitutionMatrix("blosum62", blosum62Alphabet, blosum62Scores)

// maxResidues is the number of distinct byte residues an alphabet can hold.
const maxResidues = 256

// NewSubstitutionMatrix builds a matrix over alphabet from a square score table.
// The table is copied. The alphabet must contain 'X', which unknown residues
// fall back to.
// Returns ErrBadMatrix when the alphabet exceeds 256 residues, the table is
// not |alphabet|×|alphabet|, not symmetric, or the alphabet repeats a residue.
func NewSubstitutionMatrix(name, alphabet string, scores [][]int) (*SubstitutionMatrix, error) {
	n := len(alphabet)
	if n > maxResidues {
		return nil, fmt.Errorf("%s: %d residues exceed %d: %w", name, n, maxResidues, ErrBadMatrix)
	}
	if n == 0 || len(scores) != n {
		return nil, fmt.Errorf("%s: %d residues, %d rows: %w", name, n, len(scores), ErrBadMatrix)
	}
	for i, row := range scores {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns: %w", name, i, len(row), ErrBadMatrix)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if scores[i][j] != scores[j][i] {
				return nil, fmt.Errorf("%s: score(%c,%c) asymmetric: %w", name, alphabet[i], alphabet[j], ErrBadMatrix)
			}
		}
	}

	table := make([][]int, n)
	for i, row := range scores {
		table[i] = append([]int(nil), row...)
	}
	sm := &SubstitutionMatrix{name: name, alphabet: alphabet, scores: table}
	seen := make(map[byte]bool, n)
	wildcard := -1
	for i := 0; i < n; i++ {
		r := upper(alphabet[i])
		if seen[r] {
			return nil, fmt.Errorf("%s: residue %q repeated: %w", name, r, ErrBadMatrix)
		}
		seen[r] = true
		if r == 'X' {
			wildcard = i
		}
	}
	if wildcard < 0 {
		return nil, fmt.Errorf("%s: alphabet lacks wildcard X: %w", name, ErrBadMatrix)
	}
	for b := range sm.index {
		sm.index[b] = uint8(wildcard)
	}
	for i := 0; i < n; i++ {
		r := upper(alphabet[i])
		sm.index[r] = uint8(i)
		sm.index[lower(r)] = uint8(i)
	}

	return sm, nil
}

func mustSubstitutionMatrix(name, alphabet string, scores [][]int) *SubstitutionMatrix {
	sm, err := NewSubstitutionMatrix(name, alphabet, scores)
	if err != nil {
		panic(err)
	}

	return sm
}

// Name returns the matrix name, e.g. "blosum62".
func (sm *SubstitutionMatrix) Name() string { return sm.name }

// Score returns the substitution score of residues a and b. Complexity: O(1).
func (sm *SubstitutionMatrix) Score(a, b byte) int {
	return sm.scores[sm.index[a]][sm.index[b]]
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

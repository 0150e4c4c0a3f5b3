// SPDX-License-Identifier: MIT
// Package: metric
//
// alignment.go — substitution-matrix global alignment distance.
//
// Algorithm (Gotoh, score only, rolling rows):
//
//	H[i][j] best score of a[:i] vs b[:j]
//	E[i][j] best score ending with a gap in a (consumes b[j-1])
//	F[i][j] best score ending with a gap in b (consumes a[i-1])
//
//	E[i][j] = max(E[i][j-1] − ext, H[i][j-1] − open)
//	F[i][j] = max(F[i-1][j] − ext, H[i-1][j] − open)
//	H[i][j] = max(H[i-1][j-1] + s(a[i-1], b[j-1]), E[i][j], F[i][j])
//
// A gap of length k costs open + (k−1)·ext.
// Distance of a pair is min(S(i,i), S(j,j)) − S(i,j), where the self scores
// are computed once per pool in Bind.
//
// Complexity: O(|a|·|b|) time, O(|b|) memory per pair.

package metric

import (
	"fmt"
	"math"
)

// negInf keeps gap-state arithmetic clear of overflow.
const negInf = math.MinInt32 / 2

// Alignment scores sequence pairs by global affine-gap alignment.
// Alignment is only meaningful over amino-acid alphabets.
type Alignment struct {
	Matrix    *SubstitutionMatrix
	GapOpen   int
	GapExtend int
}

// NewAlignment returns an Alignment with BLOSUM62, gap open 11 and gap
// extend 1, modified by opts. Returns ErrBadPenalty for negative penalties.
func NewAlignment(opts ...Option) (*Alignment, error) {
	a := &Alignment{Matrix: BLOSUM62, GapOpen: DefaultGapOpen, GapExtend: DefaultGapExtend}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Alignment) validate() error {
	if a.GapOpen < 0 || a.GapExtend < 0 {
		return fmt.Errorf("NewAlignment: open=%d extend=%d: %w", a.GapOpen, a.GapExtend, ErrBadPenalty)
	}
	return nil
}

// Name returns "alignment".
func (a *Alignment) Name() string { return NameAlignment }

// Bind computes the self-alignment score of every pool entry and returns
// the pair scorer. The self-score slice is shared read-only by all calls.
func (a *Alignment) Bind(pool []string) (Scorer, error) {
	if a.Matrix == nil {
		a.Matrix = BLOSUM62
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	self := make([]int, len(pool))
	for i, s := range pool {
		self[i] = a.Score(s, s)
	}
	n := len(pool)

	return func(i, j, cutoff int) (int, bool, error) {
		if err := checkIndex(i, j, n); err != nil {
			return 0, false, err
		}
		best := self[i]
		if self[j] < best {
			best = self[j]
		}
		d := best - a.Score(pool[i], pool[j])
		if d < 0 {
			return d, false, fmt.Errorf("%q vs %q: distance %d: %w", pool[i], pool[j], d, ErrNegativeDistance)
		}
		return d, d <= cutoff, nil
	}, nil
}

// Score returns the global alignment score of x and y.
func (a *Alignment) Score(x, y string) int {
	open, ext := a.GapOpen, a.GapExtend
	n, m := len(x), len(y)

	h := make([]int, m+1) // H of the previous row, updated in place
	f := make([]int, m+1) // F of the previous row, updated in place
	h[0] = 0
	for j := 1; j <= m; j++ {
		h[j] = -open - (j-1)*ext
		f[j] = negInf
	}

	for i := 1; i <= n; i++ {
		diag := h[0]
		h[0] = -open - (i-1)*ext
		e := negInf
		for j := 1; j <= m; j++ {
			e = max(e-ext, h[j-1]-open)
			f[j] = max(f[j]-ext, h[j]-open)
			best := diag + a.Matrix.Score(x[i-1], y[j-1])
			diag = h[j]
			h[j] = max(best, e, f[j])
		}
	}

	return h[m]
}

// SPDX-License-Identifier: MIT
// Package: metric
//
// identity.go — exact sequence identity.

package metric

// Identity places every sequence at distance 0 from itself and beyond any
// cutoff from every other sequence. Pools are deduplicated, so equality of
// sequences is equality of indices.
type Identity struct{}

// Name returns "identity".
func (Identity) Name() string { return NameIdentity }

// DiagonalOnly reports true: the result is the identity relation.
func (Identity) DiagonalOnly() bool { return true }

// Bind returns a Scorer that accepts only i == j.
func (Identity) Bind(pool []string) (Scorer, error) {
	n := len(pool)
	return func(i, j, _ int) (int, bool, error) {
		if err := checkIndex(i, j, n); err != nil {
			return 0, false, err
		}
		return 0, i == j, nil
	}, nil
}

// SPDX-License-Identifier: MIT
// Package: metric
//
// levenshtein.go — cutoff-bounded edit distance.
//
// Algorithm (two rolling rows, unit costs):
//  1. If |len(a) − len(b)| > cutoff the pair is rejected without any DP.
//  2. prev[j] = j; for each i: curr[0] = i,
//     curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+[a[i-1] != b[j-1]]).
//  3. Every cell of the final row is at least the minimum of any earlier row,
//     so a row whose minimum exceeds cutoff ends the computation early.
//
// Complexity: O(|a|·|b|) time worst case, O(|b|) memory.

package metric

// Levenshtein is the classic edit distance (insert, delete, substitute at
// cost 1) over bytes.
type Levenshtein struct{}

// Name returns "levenshtein".
func (Levenshtein) Name() string { return NameLevenshtein }

// Bind returns a Scorer over pool. No precomputation is needed.
func (Levenshtein) Bind(pool []string) (Scorer, error) {
	n := len(pool)
	return func(i, j, cutoff int) (int, bool, error) {
		if err := checkIndex(i, j, n); err != nil {
			return 0, false, err
		}
		if i == j {
			return 0, true, nil
		}
		d, ok := BoundedEditDistance(pool[i], pool[j], cutoff)
		return d, ok, nil
	}, nil
}

// BoundedEditDistance returns the edit distance of a and b and whether it is
// within cutoff. When ok is false the returned distance is a lower bound.
func BoundedEditDistance(a, b string, cutoff int) (dist int, ok bool) {
	if len(a) < len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if n-m > cutoff {
		return n - m, false
	}
	if m == 0 {
		return n, n <= cutoff
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost
			if v := prev[j] + 1; v < best {
				best = v
			}
			if v := curr[j-1] + 1; v < best {
				best = v
			}
			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if rowMin > cutoff {
			return rowMin, false
		}
		prev, curr = curr, prev
	}

	dist = prev[m]
	return dist, dist <= cutoff
}

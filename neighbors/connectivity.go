// SPDX-License-Identifier: MIT
// Package: neighbors
//
// connectivity.go — distance to connectivity weights.

package neighbors

import "github.com/katalvlaran/irneighbors/sparse"

// Connectivity converts an offset-encoded distance matrix into weights.
// For cutoff > 0 a value v becomes (cutoff − (v−1)) / cutoff and entries
// whose weight is not positive are dropped, so every stored weight lies in
// (0, 1]. For cutoff 0 the values are carried over unchanged.
func Connectivity(dist *sparse.Matrix[uint16], cutoff int) *sparse.Matrix[float64] {
	if cutoff <= 0 {
		return sparse.Convert[uint16, float64](dist)
	}
	c := float64(cutoff)
	return sparse.Map(dist, func(_, _ int, v uint16) float64 {
		w := (c - float64(v-1)) / c
		if w <= 0 {
			return 0
		}
		return w
	})
}

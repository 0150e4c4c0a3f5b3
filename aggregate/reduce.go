// SPDX-License-Identifier: MIT
// Package: aggregate
//
// reduce.go — MinReduce and the policy-driven Reduce.
//
// Dual "all" reduction by Shape (values are offset-encoded):
//
//	single   -> the one value
//	parallel, crossed, mixed -> 0 (the pair is dropped)
//	full     -> min(v12+v21, v11+v22) − 1
//	triple, invalid -> ErrInconsistentCombination
//
// A triple arises from valid input: x=(A,B) and y=(A,C) with only B–C
// beyond the cutoff. It aborts the reduction.
//
// Arm "all" adds decoded distances, 1 + Σ(v−1), and requires a value from
// every arm in which both entities carry a sequence; arms where either side
// is missing are skipped. Arm "any" takes the minimum over the arms present.
// Combined values above cutoff+1 are dropped, so every stored entry decodes
// to a distance ≤ cutoff.

package aggregate

import (
	"fmt"

	"github.com/katalvlaran/irneighbors/seqindex"
	"github.com/katalvlaran/irneighbors/sparse"
)

// ArmDistances pairs an arm index with its sequence distance matrix.
type ArmDistances struct {
	Index *seqindex.ArmIndex
	Dist  *sparse.Matrix[uint16]
}

// visit calls fn for every entity pair reached from the stored entries of
// ad, with chain positions (p1, p2) of the row and column entity. Mirrored
// pairs are reported with swapped positions.
func visit(n int, ad ArmDistances, fn func(x, y, p1, p2 int, v uint16)) error {
	if ad.Index == nil || ad.Dist == nil {
		return fmt.Errorf("visit: %w", sparse.ErrNilMatrix)
	}
	if ad.Index.NumEntities() != n {
		return fmt.Errorf("arm %s: %d entities, want %d: %w", ad.Index.Arm(), ad.Index.NumEntities(), n, ErrEntityCount)
	}
	pool := len(ad.Index.Pool())
	if ad.Dist.Rows() != pool || ad.Dist.Cols() != pool {
		return fmt.Errorf("arm %s: matrix %s for pool of %d: %w", ad.Index.Arm(), ad.Dist, pool, ErrDistShape)
	}
	if err := sparse.ValidateUpperTriangular(ad.Dist); err != nil {
		return fmt.Errorf("arm %s: %w", ad.Index.Arm(), err)
	}
	chains := ad.Index.Chains()
	if len(chains) > 2 {
		return fmt.Errorf("arm %s: %d chains: %w", ad.Index.Arm(), len(chains), ErrChainCount)
	}

	var err error
	ad.Dist.Each(func(row, col int, v uint16) {
		if err != nil {
			return
		}
		for p1, c1 := range chains {
			xs, e := ad.Index.Entities(c1, row)
			if e != nil {
				err = e
				return
			}
			for p2, c2 := range chains {
				ys, e := ad.Index.Entities(c2, col)
				if e != nil {
					err = e
					return
				}
				for _, x := range xs {
					for _, y := range ys {
						fn(x, y, p1, p2, v)
						if row != col {
							fn(y, x, p2, p1, v)
						}
					}
				}
			}
		}
	})

	return err
}

// MinReduce returns the n×n matrix holding, per entity pair, the minimum
// value over every arm and chain combination.
func MinReduce(n int, arms []ArmDistances) (*sparse.Matrix[uint16], error) {
	acc, err := sparse.NewMinAccumulator[uint16](n, n)
	if err != nil {
		return nil, err
	}
	for _, ad := range arms {
		var offerErr error
		err := visit(n, ad, func(x, y, _, _ int, v uint16) {
			if offerErr == nil {
				offerErr = acc.Offer(x, y, v)
			}
		})
		if err == nil {
			err = offerErr
		}
		if err != nil {
			return nil, fmt.Errorf("MinReduce: %w", err)
		}
	}

	return acc.Build()
}

// combos holds the values of one arm for one entity pair.
type combos struct {
	mask uint8
	v    [4]uint16
}

func (c *combos) set(p1, p2 int, v uint16) {
	bit := uint8(1) << (p1*2 + p2)
	k := p1*2 + p2
	if c.mask&bit == 0 || v < c.v[k] {
		c.v[k] = v
	}
	c.mask |= bit
}

// hasSequence marks the entities carrying a sequence in any chain of ad.
func hasSequence(n int, ad ArmDistances) ([]bool, error) {
	out := make([]bool, n)
	for _, c := range ad.Index.Chains() {
		for e := 0; e < n; e++ {
			p, err := ad.Index.EntitySequence(c, e)
			if err != nil {
				return nil, err
			}
			if p != seqindex.NoSequence {
				out[e] = true
			}
		}
	}
	return out, nil
}

// Reduce returns the n×n matrix obtained by reducing chain combinations per
// arm with dual, then arms with arm. Entries whose combined value exceeds
// cutoff+1 are dropped.
func Reduce(n int, arms []ArmDistances, dual DualPolicy, arm ArmPolicy, cutoff int) (*sparse.Matrix[uint16], error) {
	if _, err := ParseDualPolicy(string(dual)); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	if _, err := ParseArmPolicy(string(arm)); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("Reduce: n=%d: %w", n, sparse.ErrBadShape)
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("Reduce: cutoff=%d: %w", cutoff, sparse.ErrValueRange)
	}
	limit := cutoff + 1

	cells := make(map[[2]int][]combos)
	for a, ad := range arms {
		err := visit(n, ad, func(x, y, p1, p2 int, v uint16) {
			key := [2]int{x, y}
			cs, ok := cells[key]
			if !ok {
				cs = make([]combos, len(arms))
				cells[key] = cs
			}
			cs[a].set(p1, p2, v)
		})
		if err != nil {
			return nil, fmt.Errorf("Reduce: %w", err)
		}
	}

	var present [][]bool
	if arm == ArmsAll {
		present = make([][]bool, len(arms))
		for a, ad := range arms {
			has, err := hasSequence(n, ad)
			if err != nil {
				return nil, fmt.Errorf("Reduce: arm %s: %w", ad.Index.Arm(), err)
			}
			present[a] = has
		}
	}

	b, err := sparse.NewBuilder[uint16](n, n)
	if err != nil {
		return nil, err
	}
	b.Grow(len(cells))
	for key, cs := range cells {
		required := func(a int) bool {
			return present != nil && present[a][key[0]] && present[a][key[1]]
		}
		v, err := reduceArms(cs, dual, arm, required)
		if err != nil {
			return nil, fmt.Errorf("Reduce: entities (%d,%d): %w", key[0], key[1], err)
		}
		if v == 0 || int(v) > limit {
			continue
		}
		if err := b.Add(key[0], key[1], v); err != nil {
			return nil, fmt.Errorf("Reduce: %w", err)
		}
	}

	return b.Build()
}

// reduceArms combines the per-arm values of one entity pair; 0 means absent.
// An arm for which required reports true must contribute a value.
func reduceArms(cs []combos, dual DualPolicy, arm ArmPolicy, required func(a int) bool) (uint16, error) {
	var out uint16
	for a, c := range cs {
		var v uint16
		if c.mask != 0 {
			var err error
			if v, err = reduceDual(c, dual); err != nil {
				return 0, err
			}
		}
		if v == 0 {
			if required(a) {
				return 0, nil
			}
			continue
		}
		switch {
		case out == 0:
			out = v
		case arm == ArmsAll:
			out += v - 1
		case v < out:
			out = v
		}
	}
	return out, nil
}

// reduceDual combines the chain combinations of one arm; 0 means absent.
func reduceDual(c combos, dual DualPolicy) (uint16, error) {
	if dual != DualAll {
		var best uint16
		for k := 0; k < 4; k++ {
			if c.mask&(1<<k) != 0 && (best == 0 || c.v[k] < best) {
				best = c.v[k]
			}
		}
		return best, nil
	}

	switch shape := ShapeOf(c.mask); shape {
	case ShapeSingle:
		for k := 0; k < 4; k++ {
			if c.mask&(1<<k) != 0 {
				return c.v[k], nil
			}
		}
	case ShapeParallel, ShapeCrossed, ShapeMixed:
		return 0, nil
	case ShapeFull:
		crossed := c.v[1] + c.v[2]
		parallel := c.v[0] + c.v[3]
		return min(crossed, parallel) - 1, nil
	default:
		return 0, fmt.Errorf("shape %s (mask %04b): %w", shape, c.mask, ErrInconsistentCombination)
	}

	return 0, fmt.Errorf("mask %04b: %w", c.mask, ErrInconsistentCombination)
}

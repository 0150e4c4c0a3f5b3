// SPDX-License-Identifier: MIT
// Package: seqindex
//
// index.go — ArmIndex and Index construction and read-only accessors.
//
// Concurrency:
//   - an index is immutable after Build and safe for concurrent readers.

package seqindex

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/irneighbors/table"
)

// NoSequence marks an entity without a sequence in a slot.
const NoSequence = -1

// slot is the mapping of one chain slot.
type slot struct {
	byEntity []int   // entity -> pool index or NoSequence
	byPool   [][]int // pool index -> ascending entity indices
}

// ArmIndex is the pool and per-slot mappings of one receptor arm.
type ArmIndex struct {
	arm    string
	n      int
	pool   []string
	chains []int
	slots  map[int]*slot
}

// BuildArm indexes one arm. columns maps each chain in chains to its
// per-entity sequences; every column must have the same length, which is
// the entity count. Missing values (table.IsMissing) are skipped.
func BuildArm(arm string, chains []int, columns map[int][]string) (*ArmIndex, error) {
	if len(chains) == 0 {
		return nil, fmt.Errorf("BuildArm %s: %w", arm, ErrNoChains)
	}
	n := -1
	for _, c := range chains {
		col, ok := columns[c]
		if !ok {
			return nil, fmt.Errorf("BuildArm %s: chain %d: %w", arm, c, ErrUnknownChain)
		}
		if n < 0 {
			n = len(col)
		} else if len(col) != n {
			return nil, fmt.Errorf("BuildArm %s: chain %d has %d values, want %d: %w", arm, c, len(col), n, ErrColumnLength)
		}
	}

	// unique non-missing sequences over all slots, sorted
	lookup := make(map[string]int)
	for _, c := range chains {
		for _, s := range columns[c] {
			if !table.IsMissing(s) {
				lookup[s] = 0
			}
		}
	}
	pool := make([]string, 0, len(lookup))
	for s := range lookup {
		pool = append(pool, s)
	}
	sort.Strings(pool)
	for i, s := range pool {
		lookup[s] = i
	}

	a := &ArmIndex{
		arm:    arm,
		n:      n,
		pool:   pool,
		chains: append([]int(nil), chains...),
		slots:  make(map[int]*slot, len(chains)),
	}
	for _, c := range chains {
		sl := &slot{byEntity: make([]int, n), byPool: make([][]int, len(pool))}
		for e, s := range columns[c] {
			if table.IsMissing(s) {
				sl.byEntity[e] = NoSequence
				continue
			}
			p := lookup[s]
			sl.byEntity[e] = p
			sl.byPool[p] = append(sl.byPool[p], e)
		}
		a.slots[c] = sl
	}

	return a, nil
}

// Arm returns the arm name.
func (a *ArmIndex) Arm() string { return a.arm }

// NumEntities returns the entity count.
func (a *ArmIndex) NumEntities() int { return a.n }

// Pool returns the sorted unique-sequence pool. It must not be modified.
func (a *ArmIndex) Pool() []string { return a.pool }

// Chains returns the indexed chain slots in configuration order.
func (a *ArmIndex) Chains() []int { return append([]int(nil), a.chains...) }

// Entities returns the ascending entities carrying pool entry p in chain.
// The returned slice must not be modified.
func (a *ArmIndex) Entities(chain, p int) ([]int, error) {
	sl, ok := a.slots[chain]
	if !ok {
		return nil, fmt.Errorf("Entities: chain %d: %w", chain, ErrUnknownChain)
	}
	if p < 0 || p >= len(sl.byPool) {
		return nil, nil
	}
	return sl.byPool[p], nil
}

// EntitySequence returns the pool index of entity e in chain, or NoSequence.
func (a *ArmIndex) EntitySequence(chain, e int) (int, error) {
	sl, ok := a.slots[chain]
	if !ok {
		return NoSequence, fmt.Errorf("EntitySequence: chain %d: %w", chain, ErrUnknownChain)
	}
	if e < 0 || e >= a.n {
		return NoSequence, nil
	}
	return sl.byEntity[e], nil
}

// Index holds one ArmIndex per configured arm.
type Index struct {
	arms  []*ArmIndex
	byArm map[string]*ArmIndex
	n     int
}

// Build reads the CDR3 columns of every (arm, chain) from t and indexes
// each arm. Columns are looked up by ColumnName.
func Build(t table.Table, arms []string, chains []int, seq SequenceType) (*Index, error) {
	if seq != AminoAcid && seq != Nucleotide {
		return nil, fmt.Errorf("Build: %q: %w", seq, ErrUnknownSequenceType)
	}
	idx := &Index{byArm: make(map[string]*ArmIndex, len(arms)), n: t.NumEntities()}
	for _, arm := range arms {
		columns := make(map[int][]string, len(chains))
		for _, c := range chains {
			col, err := t.Column(ColumnName(arm, c, seq))
			if err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
			if len(col) != idx.n {
				return nil, fmt.Errorf("Build: %s: %d values for %d entities: %w", ColumnName(arm, c, seq), len(col), idx.n, ErrColumnLength)
			}
			columns[c] = col
		}
		a, err := BuildArm(arm, chains, columns)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		idx.arms = append(idx.arms, a)
		idx.byArm[arm] = a
	}

	return idx, nil
}

// Arms returns the arm indices in configuration order.
func (x *Index) Arms() []*ArmIndex { return append([]*ArmIndex(nil), x.arms...) }

// Arm returns the index of the named arm, or nil.
func (x *Index) Arm(name string) *ArmIndex { return x.byArm[name] }

// NumEntities returns the entity count.
func (x *Index) NumEntities() int { return x.n }

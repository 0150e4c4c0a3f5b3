// SPDX-License-Identifier: MIT
// Package: network
//
// convergence.go — coarse clusters that merge several fine clusters.

package network

import "fmt"

// Convergence labels.
const (
	Convergent    = "convergent"
	NotConvergent = "not convergent"
)

// Convergence marks each entity Convergent when its coarse cluster holds
// more than one distinct fine label (for example amino-acid clonotypes
// built from several nucleotide clonotypes), NotConvergent otherwise.
// Entities with an empty coarse label are NotConvergent.
func Convergence(coarse, fine []string) ([]string, error) {
	if len(coarse) != len(fine) {
		return nil, fmt.Errorf("Convergence: %d coarse vs %d fine labels: %w", len(coarse), len(fine), ErrLengthMismatch)
	}
	members := make(map[string]map[string]struct{})
	for i, c := range coarse {
		if c == "" {
			continue
		}
		if members[c] == nil {
			members[c] = make(map[string]struct{})
		}
		members[c][fine[i]] = struct{}{}
	}
	out := make([]string, len(coarse))
	for i, c := range coarse {
		if c != "" && len(members[c]) > 1 {
			out[i] = Convergent
		} else {
			out[i] = NotConvergent
		}
	}
	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: aggregate
//
// policy.go — reduction policies and chain-combination shapes.

package aggregate

import (
	"fmt"
	"math/bits"
	"strings"
)

// DualPolicy reduces the chain combinations of one arm.
type DualPolicy string

const (
	// DualPrimaryOnly considers only the primary chain slot.
	DualPrimaryOnly DualPolicy = "primary_only"
	// DualAny takes the minimum over chain combinations.
	DualAny DualPolicy = "any"
	// DualAll requires both chains to match (see Shape).
	DualAll DualPolicy = "all"
)

// ParseDualPolicy accepts primary_only, any or all.
func ParseDualPolicy(s string) (DualPolicy, error) {
	switch p := DualPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DualPrimaryOnly, DualAny, DualAll:
		return p, nil
	default:
		return "", fmt.Errorf("ParseDualPolicy %q: %w", s, ErrUnknownDualPolicy)
	}
}

// Chains returns the chain slots the policy reads: [1] for primary_only,
// otherwise [1, 2].
func (p DualPolicy) Chains() []int {
	if p == DualPrimaryOnly {
		return []int{1}
	}
	return []int{1, 2}
}

// ArmPolicy reduces the per-arm results of one entity pair.
type ArmPolicy string

const (
	// ArmsAll adds the decoded distances of the arms present and requires a
	// match in every arm where both entities carry a sequence.
	ArmsAll ArmPolicy = "all"
	// ArmsAny takes the minimum over the arms present.
	ArmsAny ArmPolicy = "any"
)

// ParseArmPolicy accepts all or any.
func ParseArmPolicy(s string) (ArmPolicy, error) {
	switch p := ArmPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ArmsAll, ArmsAny:
		return p, nil
	default:
		return "", fmt.Errorf("ParseArmPolicy %q: %w", s, ErrUnknownArmPolicy)
	}
}

// Combination bits: bit (p1*2 + p2) marks the pairing of chain position p1
// of the row entity with chain position p2 of the column entity.
const (
	comb11 uint8 = 1 << 0
	comb12 uint8 = 1 << 1
	comb21 uint8 = 1 << 2
	comb22 uint8 = 1 << 3
)

// Shape classifies the set of chain combinations observed for an entity pair.
type Shape uint8

const (
	ShapeInvalid  Shape = iota // no combination, or a mask outside 4 bits
	ShapeSingle                // exactly one combination
	ShapeParallel              // (1,1) and (2,2)
	ShapeCrossed               // (1,2) and (2,1)
	ShapeMixed                 // any other two combinations
	ShapeTriple                // three combinations
	ShapeFull                  // all four combinations
)

var shapeNames = [...]string{"invalid", "single", "parallel", "crossed", "mixed", "triple", "full"}

// String returns the shape name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ShapeOf classifies a combination mask.
func ShapeOf(mask uint8) Shape {
	if mask == 0 || mask > comb11|comb12|comb21|comb22 {
		return ShapeInvalid
	}
	switch bits.OnesCount8(mask) {
	case 1:
		return ShapeSingle
	case 2:
		switch mask {
		case comb11 | comb22:
			return ShapeParallel
		case comb12 | comb21:
			return ShapeCrossed
		default:
			return ShapeMixed
		}
	case 3:
		return ShapeTriple
	default:
		return ShapeFull
	}
}


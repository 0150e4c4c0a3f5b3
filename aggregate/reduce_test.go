package aggregate_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/irneighbors/aggregate"
	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/pairwise"
	"github.com/katalvlaran/irneighbors/seqindex"
	"github.com/katalvlaran/irneighbors/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arm builds an ArmDistances from slot columns and explicit pool entries.
func arm(t *testing.T, name string, columns map[int][]string, entries ...sparse.Entry[uint16]) aggregate.ArmDistances {
	t.Helper()
	chains := []int{1}
	if _, ok := columns[2]; ok {
		chains = []int{1, 2}
	}
	idx, err := seqindex.BuildArm(name, chains, columns)
	require.NoError(t, err)
	b, err := sparse.NewBuilder[uint16](len(idx.Pool()), len(idx.Pool()))
	require.NoError(t, err)
	require.NoError(t, b.AddEntries(entries))
	m, err := b.Build()
	require.NoError(t, err)

	return aggregate.ArmDistances{Index: idx, Dist: m}
}

// testCutoff keeps every hand-written value below the cutoff limit.
const testCutoff = 8

func at(t *testing.T, m *sparse.Matrix[uint16], i, j int) uint16 {
	t.Helper()
	v, _, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// TestShapeOf classifies every mask.
func TestShapeOf(t *testing.T) {
	assert.Equal(t, aggregate.ShapeInvalid, aggregate.ShapeOf(0))
	assert.Equal(t, aggregate.ShapeInvalid, aggregate.ShapeOf(16))
	assert.Equal(t, aggregate.ShapeSingle, aggregate.ShapeOf(0b0100))
	assert.Equal(t, aggregate.ShapeParallel, aggregate.ShapeOf(0b1001))
	assert.Equal(t, aggregate.ShapeCrossed, aggregate.ShapeOf(0b0110))
	assert.Equal(t, aggregate.ShapeMixed, aggregate.ShapeOf(0b0011))
	assert.Equal(t, aggregate.ShapeTriple, aggregate.ShapeOf(0b0111))
	assert.Equal(t, aggregate.ShapeFull, aggregate.ShapeOf(0b1111))
	assert.Equal(t, "crossed", aggregate.ShapeCrossed.String())
}

// TestParsePolicies accepts the configured literals only.
func TestParsePolicies(t *testing.T) {
	d, err := aggregate.ParseDualPolicy("primary_only")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, d.Chains())
	assert.Equal(t, []int{1, 2}, aggregate.DualAll.Chains())
	_, err = aggregate.ParseDualPolicy("both")
	assert.ErrorIs(t, err, aggregate.ErrUnknownDualPolicy)

	a, err := aggregate.ParseArmPolicy("ANY")
	require.NoError(t, err)
	assert.Equal(t, aggregate.ArmsAny, a)
	_, err = aggregate.ParseArmPolicy("VJ")
	assert.ErrorIs(t, err, aggregate.ErrUnknownArmPolicy)
}

// TestReduce_DualAllFull reproduces min(4+4, 1+1) − 1 = 1.
func TestReduce_DualAllFull(t *testing.T) {
	ad := arm(t, seqindex.ArmVJ, map[int][]string{
		1: {"A", "A"},
		2: {"B", "B"},
	},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1}, // d(A,A)=0
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 4}, // d(A,B)=3
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1}, // d(B,B)=0
	)
	m, err := aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, 4, m.NNZ())
	assert.Equal(t, uint16(1), at(t, m, 0, 1))
	assert.Equal(t, uint16(1), at(t, m, 1, 0))

	// crossed pairing wins when it is cheaper
	ad = arm(t, seqindex.ArmVJ, map[int][]string{
		1: {"A", "B"},
		2: {"B", "A"},
	},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 3},
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
	)
	m, err = aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), at(t, m, 0, 1), "1+1−1 over the crossed pairing")
}

// TestReduce_DualAllTwoCombinations drops pairs matched by two combinations.
func TestReduce_DualAllTwoCombinations(t *testing.T) {
	ad := arm(t, seqindex.ArmVJ, map[int][]string{
		1: {"A", "A"},
		2: {"B", ""},
	},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 2},
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
	)
	all, err := aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), at(t, all, 0, 1), "two combinations reduce to absent")
	assert.Equal(t, uint16(1), at(t, all, 0, 0))
	assert.Equal(t, uint16(1), at(t, all, 1, 1))

	anyM, err := aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAny, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), at(t, anyM, 0, 1))
}

// TestReduce_DualAllTriple aborts when three of four chain pairings are
// within the cutoff: x=(A,B), y=(A,C) with only B–C beyond it.
func TestReduce_DualAllTriple(t *testing.T) {
	ad := arm(t, seqindex.ArmVJ, map[int][]string{
		1: {"A", "A"},
		2: {"B", "C"},
	},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1}, // A–A
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 2}, // A–B
		sparse.Entry[uint16]{Row: 0, Col: 2, Value: 2}, // A–C
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
		sparse.Entry[uint16]{Row: 2, Col: 2, Value: 1},
	)
	_, err := aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, testCutoff)
	assert.ErrorIs(t, err, aggregate.ErrInconsistentCombination)

	// the same input is fine under "any"
	m, err := aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAny, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), at(t, m, 0, 1))
}

// policyArms returns a VJ and a VDJ arm over four entities. Entity 2 has no
// VDJ sequence; X–Z and Y–Z are beyond the cutoff.
func policyArms(t *testing.T) []aggregate.ArmDistances {
	t.Helper()
	vj := arm(t, seqindex.ArmVJ, map[int][]string{1: {"A", "B", "A", "A"}},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 2}, // d=1
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
	)
	vdj := arm(t, seqindex.ArmVDJ, map[int][]string{1: {"X", "Y", "", "Z"}},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 3}, // d=2
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
		sparse.Entry[uint16]{Row: 2, Col: 2, Value: 1},
	)
	return []aggregate.ArmDistances{vj, vdj}
}

// TestReduce_ArmPolicies adds decoded distances for "all" and takes the
// minimum for "any".
func TestReduce_ArmPolicies(t *testing.T) {
	arms := policyArms(t)

	all, err := aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAll, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), at(t, all, 0, 1), "1 + (1) + (2)")
	assert.Equal(t, uint16(1), at(t, all, 0, 0))
	assert.Equal(t, uint16(1), at(t, all, 0, 2), "entity 2 has no VDJ, VJ alone decides")
	assert.Equal(t, uint16(2), at(t, all, 1, 2))

	anyM, err := aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), at(t, anyM, 0, 1))

	require.NoError(t, sparse.ValidateSymmetric(all))
	require.NoError(t, sparse.ValidateSymmetric(anyM))
}

// TestReduce_ArmsAllRequiresEveryArm drops pairs whose shared arm is beyond
// the cutoff even when the other arm matches exactly.
func TestReduce_ArmsAllRequiresEveryArm(t *testing.T) {
	arms := policyArms(t)

	all, err := aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAll, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), at(t, all, 0, 3), "VJ identical, VDJ X–Z beyond cutoff")
	assert.Equal(t, uint16(0), at(t, all, 3, 0))
	assert.Equal(t, uint16(0), at(t, all, 1, 3), "VDJ Y–Z beyond cutoff")
	assert.Equal(t, uint16(1), at(t, all, 2, 3), "entity 2 has no VDJ")
	assert.Equal(t, uint16(1), at(t, all, 3, 3))

	anyM, err := aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAny, testCutoff)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), at(t, anyM, 0, 3))
	assert.Equal(t, uint16(2), at(t, anyM, 1, 3))
}

// TestReduce_CutoffLimit drops combined values above cutoff+1 and rejects a
// negative cutoff.
func TestReduce_CutoffLimit(t *testing.T) {
	arms := policyArms(t)

	m, err := aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAll, 2)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), at(t, m, 0, 1), "decoded 3 exceeds cutoff 2")
	assert.Equal(t, uint16(2), at(t, m, 1, 2))
	require.NoError(t, sparse.ValidateMaxValue(m, 3))

	// dual "all" sums two chains and is bounded the same way
	ad := arm(t, seqindex.ArmVJ, map[int][]string{
		1: {"A", "B"},
		2: {"A", "B"},
	},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
		sparse.Entry[uint16]{Row: 0, Col: 1, Value: 2}, // d=1
		sparse.Entry[uint16]{Row: 1, Col: 1, Value: 1},
	)
	m, err = aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, 2)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), at(t, m, 0, 1), "min(2+2, 2+2) − 1")
	m, err = aggregate.Reduce(2, []aggregate.ArmDistances{ad}, aggregate.DualAll, aggregate.ArmsAny, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), at(t, m, 0, 1), "decoded 2 exceeds cutoff 1")
	assert.Equal(t, uint16(1), at(t, m, 0, 0))

	_, err = aggregate.Reduce(4, arms, aggregate.DualPrimaryOnly, aggregate.ArmsAll, -1)
	assert.ErrorIs(t, err, sparse.ErrValueRange)
}

// TestReduce_MissingEntity gives entities without sequences no entries.
func TestReduce_MissingEntity(t *testing.T) {
	ad := arm(t, seqindex.ArmVJ, map[int][]string{1: {"A", "nan", "A"}},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
	)
	for _, fn := range []func() (*sparse.Matrix[uint16], error){
		func() (*sparse.Matrix[uint16], error) { return aggregate.MinReduce(3, []aggregate.ArmDistances{ad}) },
		func() (*sparse.Matrix[uint16], error) {
			return aggregate.Reduce(3, []aggregate.ArmDistances{ad}, aggregate.DualAny, aggregate.ArmsAll, testCutoff)
		},
	} {
		m, err := fn()
		require.NoError(t, err)
		assert.Equal(t, 4, m.NNZ(), "(0,0) (0,2) (2,0) (2,2)")
		cols, _, err := m.Row(1)
		require.NoError(t, err)
		assert.Empty(t, cols)
		for _, e := range m.Entries() {
			assert.NotEqual(t, 1, e.Col)
		}
	}
}

// TestReduce_Validation rejects mismatched inputs.
func TestReduce_Validation(t *testing.T) {
	ad := arm(t, seqindex.ArmVJ, map[int][]string{1: {"A", "B"}},
		sparse.Entry[uint16]{Row: 0, Col: 0, Value: 1},
	)
	_, err := aggregate.MinReduce(3, []aggregate.ArmDistances{ad})
	assert.ErrorIs(t, err, aggregate.ErrEntityCount)

	wrong, err := sparse.Empty[uint16](3, 3)
	require.NoError(t, err)
	bad := aggregate.ArmDistances{Index: ad.Index, Dist: wrong}
	_, err = aggregate.Reduce(2, []aggregate.ArmDistances{bad}, aggregate.DualAny, aggregate.ArmsAny, testCutoff)
	assert.ErrorIs(t, err, aggregate.ErrDistShape)

	_, err = aggregate.Reduce(2, []aggregate.ArmDistances{ad}, "some", aggregate.ArmsAny, testCutoff)
	assert.ErrorIs(t, err, aggregate.ErrUnknownDualPolicy)
}

// TestMinReduce_MatchesReduceAnyAny compares both strategies on random data
// built with the edit-distance metric.
func TestMinReduce_MatchesReduceAnyAny(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 60
	var arms []aggregate.ArmDistances
	for _, name := range []string{seqindex.ArmVJ, seqindex.ArmVDJ} {
		cols := map[int][]string{1: randomColumn(rng, n), 2: randomColumn(rng, n)}
		idx, err := seqindex.BuildArm(name, []int{1, 2}, cols)
		require.NoError(t, err)
		dist, err := pairwise.Build(context.Background(), idx.Pool(), metric.Levenshtein{}, 2)
		require.NoError(t, err)
		arms = append(arms, aggregate.ArmDistances{Index: idx, Dist: dist})
	}

	fast, err := aggregate.MinReduce(n, arms)
	require.NoError(t, err)
	general, err := aggregate.Reduce(n, arms, aggregate.DualAny, aggregate.ArmsAny, 2)
	require.NoError(t, err)

	assert.True(t, sparse.Equal(fast, general))
	require.NoError(t, sparse.ValidateSymmetric(fast))
	require.NoError(t, sparse.ValidateMaxValue(fast, 3))

	for e := 0; e < n; e++ {
		has := false
		for _, ad := range arms {
			for _, c := range ad.Index.Chains() {
				if p, _ := ad.Index.EntitySequence(c, e); p != seqindex.NoSequence {
					has = true
				}
			}
		}
		v := at(t, fast, e, e)
		if has {
			assert.Equal(t, uint16(1), v, "self distance of entity %d", e)
		} else {
			assert.Zero(t, v)
		}
	}
}

func randomColumn(rng *rand.Rand, n int) []string {
	out := make([]string, n)
	for i := range out {
		if rng.Intn(5) == 0 {
			out[i] = "nan"
			continue
		}
		b := make([]byte, 3+rng.Intn(2))
		for k := range b {
			b[k] = "CAS"[rng.Intn(3)]
		}
		out[i] = string(b)
	}
	return out
}

package pairwise_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/pairwise"
	"github.com/katalvlaran/irneighbors/parallel"
	"github.com/katalvlaran/irneighbors/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingMetric errors on one specific pair.
type failingMetric struct{ err error }

func (failingMetric) Name() string { return "failing" }

func (f failingMetric) Bind(pool []string) (metric.Scorer, error) {
	return func(i, j, _ int) (int, bool, error) {
		if i == 1 && j == 2 {
			return 0, false, f.err
		}
		return 0, i == j, nil
	}, nil
}

// TestBuild_CutoffValidation rejects bad cutoffs before any work.
func TestBuild_CutoffValidation(t *testing.T) {
	ctx := context.Background()
	pool := []string{"CAT", "DOG"}

	_, err := pairwise.Build(ctx, pool, metric.Levenshtein{}, 256)
	assert.ErrorIs(t, err, pairwise.ErrCutoffRange)
	_, err = pairwise.Build(ctx, pool, metric.Levenshtein{}, -1)
	assert.ErrorIs(t, err, pairwise.ErrCutoffRange)
	_, err = pairwise.Build(ctx, pool, metric.Identity{}, 2)
	assert.ErrorIs(t, err, pairwise.ErrIdentityCutoff)
	_, err = pairwise.Build(ctx, pool, nil, 0)
	assert.ErrorIs(t, err, pairwise.ErrNilMetric)

	m, err := pairwise.Build(ctx, pool, metric.Levenshtein{}, pairwise.MaxCutoff)
	require.NoError(t, err)
	require.NoError(t, sparse.ValidateMaxValue(m, pairwise.MaxCutoff+1))
}

// TestBuild_Identity yields exactly n diagonal entries of value 1.
func TestBuild_Identity(t *testing.T) {
	pool := []string{"A", "B", "C", "D", "E"}
	m, err := pairwise.Build(context.Background(), pool, metric.Identity{}, 0)
	require.NoError(t, err)
	assert.Equal(t, len(pool), m.NNZ())
	m.Each(func(row, col int, v uint16) {
		assert.Equal(t, row, col)
		assert.Equal(t, uint16(1), v)
	})
}

// TestBuild_IdentityProgress reports the diagonal pass as complete.
func TestBuild_IdentityProgress(t *testing.T) {
	var p parallel.Progress
	_, err := pairwise.Build(context.Background(), []string{"A", "B", "C"}, metric.Identity{}, 0,
		parallel.WithProgress(&p))
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Total())
	assert.Equal(t, int64(3), p.Done())

	// a later run restarts the counter
	_, err = pairwise.Build(context.Background(), []string{"A"}, metric.Identity{}, 0,
		parallel.WithProgress(&p))
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Total())
	assert.Equal(t, int64(1), p.Done())
}

// TestBuild_LevenshteinCutoff keeps only the diagonal for distant sequences.
func TestBuild_LevenshteinCutoff(t *testing.T) {
	pool := []string{"BIRD", "CAT", "DOG", "FISH"}
	m, err := pairwise.Build(context.Background(), pool, metric.Levenshtein{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, m.NNZ(), "all pairwise distances exceed 1")

	m, err = pairwise.Build(context.Background(), pool, metric.Levenshtein{}, 3)
	require.NoError(t, err)
	v, ok, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint16(4), v, "CAT/DOG distance 3 stored as 4")
	_, ok, err = m.At(2, 1)
	require.NoError(t, err)
	assert.False(t, ok, "lower triangle is never stored")
}

// TestBuild_Alignment checks offset values from the alignment metric.
func TestBuild_Alignment(t *testing.T) {
	a, err := metric.NewAlignment()
	require.NoError(t, err)
	m, err := pairwise.Build(context.Background(), []string{"CAR", "CAT", "CT"}, a, 10)
	require.NoError(t, err)
	assert.Equal(t, []sparse.Entry[uint16]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 7},
		{Row: 1, Col: 1, Value: 1},
		{Row: 2, Col: 2, Value: 1},
	}, m.Entries())
}

// TestBuild_WorkerFailure surfaces a metric error as ErrWorkerFailed.
func TestBuild_WorkerFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := pairwise.Build(context.Background(), []string{"A", "B", "C"}, failingMetric{err: boom}, 0)
	assert.ErrorIs(t, err, parallel.ErrWorkerFailed)
	assert.ErrorIs(t, err, boom)

	_, err = pairwise.Build(context.Background(), []string{"S", "X"}, mustAlignment(t), 5)
	assert.ErrorIs(t, err, metric.ErrNegativeDistance)
}

// TestBuild_MatchesBruteForce compares against a direct double loop for
// random pools, several cutoffs and chunk sizes.
func TestBuild_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := randomPool(rng, 120)
	for _, cutoff := range []int{0, 1, 2, 4} {
		for _, chunk := range []int{1, 7, 200} {
			var p parallel.Progress
			m, err := pairwise.Build(context.Background(), pool, metric.Levenshtein{}, cutoff,
				parallel.WithChunkSize(chunk), parallel.WithWorkers(4), parallel.WithProgress(&p))
			require.NoError(t, err)
			require.NoError(t, sparse.ValidateUpperTriangular(m))
			require.NoError(t, sparse.ValidateMaxValue(m, uint16(cutoff+1)))
			assert.Equal(t, int64(len(pool)), p.Done())

			want := 0
			for i := range pool {
				for j := i; j < len(pool); j++ {
					d, ok := metric.BoundedEditDistance(pool[i], pool[j], cutoff)
					v, stored, err := m.At(i, j)
					require.NoError(t, err)
					assert.Equal(t, ok, stored, "(%d,%d) cutoff %d", i, j, cutoff)
					if ok {
						want++
						assert.Equal(t, uint16(d+1), v)
					}
				}
			}
			assert.Equal(t, want, m.NNZ())
		}
	}
}

func mustAlignment(t *testing.T) metric.Metric {
	t.Helper()
	a, err := metric.NewAlignment()
	require.NoError(t, err)
	return a
}

// randomPool returns n distinct short strings over a tiny alphabet so that
// many pairs fall within small cutoffs.
func randomPool(rng *rand.Rand, n int) []string {
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		l := 3 + rng.Intn(4)
		b := make([]byte, l)
		for i := range b {
			b[i] = "ACG"[rng.Intn(3)]
		}
		if s := string(b); !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

package network_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/irneighbors/network"
)

type GraphSuite struct {
	suite.Suite
	g *network.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = network.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), network.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeMirrorsAndKeepsMaxWeight() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 0.5))
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("B", "A"), "expected mirror edge B–A")

	require.NoError(s.g.AddEdge("B", "A", 0.25))
	require.Equal(1, s.g.EdgeCount(), "no parallel edges")
	w, ok := s.g.Weight("A", "B")
	require.True(ok)
	require.Equal(0.5, w)

	require.NoError(s.g.AddEdge("B", "A", 0.75))
	w, _ = s.g.Weight("A", "B")
	require.Equal(0.75, w)

	require.ErrorIs(s.g.AddEdge("", "A", 1), network.ErrEmptyVertexID)
}

func (s *GraphSuite) TestLoopOnlyAddsVertex() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "A", 1))
	require.True(s.g.HasVertex("A"))
	require.False(s.g.HasEdge("A", "A"))
	require.Zero(s.g.EdgeCount())
}

func (s *GraphSuite) TestVerticesAndNeighborsKeepInsertionOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("z"))
	require.NoError(s.g.AddEdge("m", "z", 1))
	require.NoError(s.g.AddEdge("z", "a", 1))
	require.Equal([]string{"z", "m", "a"}, s.g.Vertices())

	nbrs, err := s.g.NeighborIDs("z")
	require.NoError(err)
	require.Equal([]string{"m", "a"}, nbrs)

	_, err = s.g.NeighborIDs("missing")
	require.ErrorIs(err, network.ErrVertexNotFound)
}

func (s *GraphSuite) TestInducedSubgraph() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddEdge("B", "C", 1))
	require.NoError(s.g.AddEdge("C", "A", 1))

	sub := s.g.InducedSubgraph([]string{"C", "A", "nope"})
	require.Equal([]string{"A", "C"}, sub.Vertices())
	require.Equal(1, sub.EdgeCount())
	require.True(sub.HasEdge("A", "C"))
	require.False(sub.HasVertex("B"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestGraph_ConcurrentAddEdge inserts a star from many goroutines.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := network.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.AddEdge("hub", fmt.Sprintf("v%d", i), 1)
			_, _ = g.NeighborIDs("hub")
		}(i)
	}
	wg.Wait()
	require.Equal(t, 65, g.VertexCount())
	require.Equal(t, 64, g.EdgeCount())
}

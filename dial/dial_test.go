package dial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/dial"
	"github.com/katalvlaran/csrflow/dijkstra"
	"github.com/katalvlaran/csrflow/residual"
)

func tinyDAG(t *testing.T) (*csrgraph.Graph, map[csrgraph.Edge]int) {
	t.Helper()
	g, err := csrgraph.New(4, []csrgraph.Tuple{
		{Tail: 0, Head: 1}, // edge 0, w=1
		{Tail: 0, Head: 2}, // edge 1, w=4
		{Tail: 1, Head: 2}, // edge 2, w=2
		{Tail: 2, Head: 3}, // edge 3, w=1
	})
	require.NoError(t, err)
	return g, map[csrgraph.Edge]int{0: 1, 1: 4, 2: 2, 3: 1}
}

func runDial(t *testing.T, g *csrgraph.Graph, weights map[csrgraph.Edge]int, numBuckets int, sources ...csrgraph.Vertex) *dial.Search[int] {
	t.Helper()
	s := dial.New[int](g, numBuckets)
	for _, src := range sources {
		s.AddSource(src)
	}
	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		for e, head := range g.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weights[e])
		}
	}
	return s
}

func TestDial_MatchesDijkstraDistances(t *testing.T) {
	g, weights := tinyDAG(t)
	weight := func(e csrgraph.Edge) int { return weights[e] }

	dj := dijkstra.Run(g, weight, 0)
	dl := runDial(t, g, weights, 5, 0)

	for v := range g.Vertices() {
		assert.Equal(t, dj.DistanceToVertex(v), dl.DistanceToVertex(v))
	}
}

func TestDial_TinyDAGSingleSource(t *testing.T) {
	g, weights := tinyDAG(t)
	s := runDial(t, g, weights, 5, 0)

	assert.Equal(t, 0, s.DistanceToVertex(0))
	assert.Equal(t, 1, s.DistanceToVertex(1))
	assert.Equal(t, 3, s.DistanceToVertex(2))
	assert.Equal(t, 4, s.DistanceToVertex(3))
}

func TestDial_ZeroBucketsIsImmediatelyDone(t *testing.T) {
	g, _ := tinyDAG(t)
	s := dial.New[int](g, 0)
	assert.True(t, s.Done())
}

func TestDial_ResetClearsBucketsAndRing(t *testing.T) {
	g, weights := tinyDAG(t)
	s := runDial(t, g, weights, 5, 0)
	s.Reset()

	assert.Equal(t, 0, s.CurrentBucketID())
	assert.True(t, s.Done())
	assert.False(t, s.HasReachedVertex(1))
}

func unitResidualNetwork(t *testing.T) *residual.Network[int, int] {
	t.Helper()
	g, err := csrgraph.New(3, []csrgraph.Tuple{
		{Tail: 0, Head: 1},
		{Tail: 1, Head: 2},
		{Tail: 0, Head: 2},
	})
	require.NoError(t, err)

	n, err := residual.NewUnitCapacity[int, int](g, []int{1, 0, -1}, []int{2, 3, 5})
	require.NoError(t, err)
	return n
}

func TestMaxAdmissibleArcLength_ProbesNetwork(t *testing.T) {
	n := unitResidualNetwork(t)

	// Every forward arc is unsaturated at construction with π all zero, so
	// reduced cost equals arc cost; every reverse arc starts saturated and
	// is skipped.
	got := dial.MaxAdmissibleArcLength[int, int](n)
	assert.Equal(t, 5, got)
}

func TestNewFromNetwork_SizesRingFromProbe(t *testing.T) {
	n := unitResidualNetwork(t)
	s := dial.NewFromNetwork[int, int](n)
	assert.Equal(t, 6, s.NumBuckets())
}

func TestDial_MaxDistancePrunesFartherVertices(t *testing.T) {
	g, weights := tinyDAG(t)
	s := dial.New[int](g, 5, dial.WithMaxDistance[int](3))
	s.AddSource(0)
	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		for e, head := range g.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weights[e])
		}
	}

	assert.Equal(t, 3, s.DistanceToVertex(2))
	assert.False(t, s.HasReachedVertex(3))
}

func TestDial_OnVisitObservesEveryFinalizedVertex(t *testing.T) {
	g, weights := tinyDAG(t)
	var visited []csrgraph.Vertex
	s := dial.New[int](g, 5, dial.WithOnVisit(func(v csrgraph.Vertex, _ int) { visited = append(visited, v) }))
	s.AddSource(0)
	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		for e, head := range g.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weights[e])
		}
	}

	assert.ElementsMatch(t, []csrgraph.Vertex{0, 1, 2, 3}, visited)
}

// Package dijkstra_test exercises Search against the hand-driven loop and
// the Run convenience wrapper, including the concrete scenarios from the
// spec this package implements.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/dijkstra"
)

// tinyDAG builds the 4-vertex DAG: (0,1,w=1),(0,2,w=4),(1,2,w=2),(2,3,w=1).
func tinyDAG(t *testing.T) (*csrgraph.Graph, dijkstra.Weight[int64]) {
	t.Helper()
	g, err := csrgraph.New(4, []csrgraph.Tuple{
		{Tail: 0, Head: 1}, // edge 0, w=1
		{Tail: 0, Head: 2}, // edge 1, w=4
		{Tail: 1, Head: 2}, // edge 2, w=2
		{Tail: 2, Head: 3}, // edge 3, w=1
	})
	require.NoError(t, err)

	weights := map[csrgraph.Edge]int64{0: 1, 1: 4, 2: 2, 3: 1}
	weight := func(e csrgraph.Edge) int64 { return weights[e] }
	return g, weight
}

func TestRun_TinyDAGSingleSource(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.Run(g, weight, 0)

	assert.Equal(t, int64(0), s.DistanceToVertex(0))
	assert.Equal(t, int64(1), s.DistanceToVertex(1))
	assert.Equal(t, int64(3), s.DistanceToVertex(2))
	assert.Equal(t, int64(4), s.DistanceToVertex(3))

	v, e := s.Predecessor(1)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, e)

	v, e = s.Predecessor(2)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, e)

	v, e = s.Predecessor(3)
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, e)
}

func TestRun_TwoSources(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.Run(g, weight, 0, 3)

	assert.Equal(t, int64(0), s.DistanceToVertex(0))
	assert.Equal(t, int64(1), s.DistanceToVertex(1))
	assert.Equal(t, int64(3), s.DistanceToVertex(2))
	assert.Equal(t, int64(0), s.DistanceToVertex(3))

	// 3 is a source at distance 0; edge (2,3) only offers distance 4, so 3
	// stays its own root.
	assert.True(t, s.IsRootVertex(3))
}

func TestRun_EmptySourceSetIsImmediatelyDone(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.New[int64](g)
	assert.True(t, s.Done())
	_ = weight
}

func TestRun_ZeroEdgeGraphYieldsSingletonForest(t *testing.T) {
	g, err := csrgraph.New(3, nil)
	require.NoError(t, err)

	weight := func(csrgraph.Edge) int64 { return 0 }
	s := dijkstra.Run(g, weight, 0)

	assert.Equal(t, int64(0), s.DistanceToVertex(0))
	assert.True(t, s.IsRootVertex(1))
	assert.True(t, s.IsRootVertex(2))
	assert.False(t, s.HasReachedVertex(1))
}

func TestSearch_ResetIsBitIdenticalToFreshRun(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.Run(g, weight, 0)
	distBefore := make([]int64, g.NumVertices())
	for v := range g.Vertices() {
		distBefore[v] = s.DistanceToVertex(v)
	}

	s.Reset()
	assert.True(t, s.Done())
	for v := range g.Vertices() {
		_ = v
	}

	s.AddSource(0)
	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		for e, head := range g.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weight(e))
		}
	}

	for v := range g.Vertices() {
		assert.Equal(t, distBefore[v], s.DistanceToVertex(v))
	}
}

func TestSearch_VisitOrderIsNondecreasingDistance(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.New[int64](g)
	s.AddSource(0)

	var order []int64
	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		order = append(order, d)
		for e, head := range g.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weight(e))
		}
	}

	for i := 1; i < len(order); i++ {
		assert.GreaterOrEqual(t, order[i], order[i-1])
	}
}

func TestSearch_RelaxEdgePanicsOnNegativeWeight(t *testing.T) {
	g, _ := tinyDAG(t)
	s := dijkstra.New[int64](g)
	s.AddSource(0)
	_, d := s.PopNextUnvisitedVertex()
	assert.Panics(t, func() { s.RelaxEdge(0, 0, 1, d-1) })
}

func TestRunWithOptions_MaxDistancePrunesFartherVertices(t *testing.T) {
	g, weight := tinyDAG(t)
	s := dijkstra.RunWithOptions(g, weight, []dijkstra.Option[int64]{dijkstra.WithMaxDistance[int64](3)}, 0)

	assert.Equal(t, int64(0), s.DistanceToVertex(0))
	assert.Equal(t, int64(1), s.DistanceToVertex(1))
	assert.Equal(t, int64(3), s.DistanceToVertex(2))
	// 3 sits at distance 4, past the MaxDistance(3) bound: never reached.
	assert.False(t, s.HasReachedVertex(3))
}

func TestRunWithOptions_OnVisitObservesEveryFinalizedVertex(t *testing.T) {
	g, weight := tinyDAG(t)
	var visited []csrgraph.Vertex
	s := dijkstra.RunWithOptions(g, weight, []dijkstra.Option[int64]{
		dijkstra.WithOnVisit(func(v csrgraph.Vertex, _ int64) { visited = append(visited, v) }),
	}, 0)

	assert.ElementsMatch(t, []csrgraph.Vertex{0, 1, 2, 3}, visited)
	assert.True(t, s.HasVisitedVertex(3))
}

package csrgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrflow/csrgraph"
)

func TestNew_GroupsEdgesByTailPreservingInsertionOrder(t *testing.T) {
	// Tails arrive out of order; within a tail, insertion order must survive.
	g, err := csrgraph.New(4, []csrgraph.Tuple{
		{Tail: 2, Head: 3},
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
		{Tail: 1, Head: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())

	var got []csrgraph.Tuple
	for e, head := range g.OutgoingEdges(0) {
		got = append(got, csrgraph.Tuple{Tail: e, Head: head})
	}
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Head, "first edge inserted for tail 0 keeps edge id 0")
	assert.Equal(t, 2, got[1].Head, "second edge inserted for tail 0 keeps edge id 1")

	assert.Equal(t, 1, g.OutDegree(1))
	assert.Equal(t, 1, g.OutDegree(2))
	assert.Equal(t, 0, g.OutDegree(3))
}

func TestNew_OutOfRangeTailOrHead(t *testing.T) {
	_, err := csrgraph.New(2, []csrgraph.Tuple{{Tail: 0, Head: 5}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, csrgraph.ErrOutOfRange))

	_, err = csrgraph.New(2, []csrgraph.Tuple{{Tail: 5, Head: 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, csrgraph.ErrOutOfRange))
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := csrgraph.New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())

	var vertices []int
	for v := range g.Vertices() {
		vertices = append(vertices, v)
	}
	assert.Empty(t, vertices)
}

func TestGraph_ContainsVertexAndEdge(t *testing.T) {
	g, err := csrgraph.New(3, []csrgraph.Tuple{{Tail: 0, Head: 1}})
	require.NoError(t, err)

	assert.True(t, g.ContainsVertex(0))
	assert.True(t, g.ContainsVertex(2))
	assert.False(t, g.ContainsVertex(3))
	assert.False(t, g.ContainsVertex(-1))

	assert.True(t, g.ContainsEdge(0))
	assert.False(t, g.ContainsEdge(1))
}

func TestGraph_TailAndHead(t *testing.T) {
	g, err := csrgraph.New(3, []csrgraph.Tuple{
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
		{Tail: 1, Head: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, g.Tail(0))
	assert.Equal(t, 0, g.Tail(1))
	assert.Equal(t, 1, g.Tail(2))
	assert.Equal(t, 2, g.Head(2))
}

func TestGraph_SumOfOutDegreesEqualsNumEdges(t *testing.T) {
	g, err := csrgraph.New(5, []csrgraph.Tuple{
		{Tail: 0, Head: 1}, {Tail: 0, Head: 2}, {Tail: 1, Head: 3},
		{Tail: 3, Head: 4}, {Tail: 4, Head: 0},
	})
	require.NoError(t, err)

	sum := 0
	for v := range g.Vertices() {
		sum += g.OutDegree(v)
	}
	assert.Equal(t, g.NumEdges(), sum)
}

func TestGraph_PanicsOnVertexOrEdgeOutOfRange(t *testing.T) {
	g, err := csrgraph.New(2, nil)
	require.NoError(t, err)

	assert.Panics(t, func() { g.OutDegree(5) })
	assert.Panics(t, func() { _ = g.Head(0) })
}

func TestNewWithEdgeIDs_ReportsWhereEachInputTupleLanded(t *testing.T) {
	edges := []csrgraph.Tuple{
		{Tail: 2, Head: 3},
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
		{Tail: 1, Head: 2},
	}
	g, edgeIDs, err := csrgraph.NewWithEdgeIDs(4, edges)
	require.NoError(t, err)
	require.Len(t, edgeIDs, len(edges))

	for i, e := range edges {
		assert.Equal(t, e.Tail, g.Tail(edgeIDs[i]))
		assert.Equal(t, e.Head, g.Head(edgeIDs[i]))
	}

	seen := make(map[csrgraph.Edge]bool)
	for _, id := range edgeIDs {
		assert.False(t, seen[id], "edge ids assigned by NewWithEdgeIDs must be distinct")
		seen[id] = true
	}
}

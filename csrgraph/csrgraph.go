// Package csrgraph implements an immutable directed graph in compressed
// sparse row (CSR) form.
//
// Vertices and edges are dense, zero-based integer ids. The graph is built
// once from an edge list and never mutated afterward: there is no vertex
// or edge insertion after New returns. This trades away dynamic topology
// for O(1) out-degree lookup and cache-friendly adjacency iteration, which
// is what the shortest-path and residual-network packages in this module
// are built around.
package csrgraph

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/csrflow/internal/assert"
)

// Vertex identifies a vertex by its dense index in [0, NumVertices()).
type Vertex = int

// Edge identifies an edge by its dense index in [0, NumEdges()).
type Edge = int

// ErrOutOfRange indicates that an edge tail or head fell outside
// [0, numVertices) during construction.
var ErrOutOfRange = errors.New("csrgraph: vertex id out of range")

// Tuple is a (tail, head) pair describing one directed edge.
type Tuple struct {
	Tail Vertex
	Head Vertex
}

// Graph is an immutable directed graph in compressed sparse row form.
//
// offsets has length NumVertices()+1; offsets[i+1]-offsets[i] is the
// out-degree of vertex i. heads has length NumEdges(); edge e for e in
// [offsets[i], offsets[i+1]) has tail i and head heads[e].
type Graph struct {
	offsets []Edge
	heads   []Vertex
}

// New builds a Graph from numVertices vertices and a list of (tail, head)
// edge tuples. Tails need not be sorted; edges are grouped by tail to
// produce the offsets array. Edge ids preserve insertion order within each
// tail group; the ordering between groups is tail-ascending.
//
// New returns ErrOutOfRange if any tail or head falls outside
// [0, numVertices).
func New(numVertices int, edges []Tuple) (*Graph, error) {
	graph, _, err := NewWithEdgeIDs(numVertices, edges)
	return graph, err
}

// NewWithEdgeIDs builds a Graph exactly as New does, additionally
// returning the assigned edge id for each element of edges, in the same
// order. Callers that build a derived graph from a known edge sequence —
// the residual package doubles each edge into a forward and reverse
// arc — use this to recover where an input tuple landed once New's
// tail-grouping has reordered it.
func NewWithEdgeIDs(numVertices int, edges []Tuple) (*Graph, []Edge, error) {
	assertNumVertices(numVertices)

	for _, e := range edges {
		if e.Tail < 0 || e.Tail >= numVertices || e.Head < 0 || e.Head >= numVertices {
			return nil, nil, fmt.Errorf("%w: tail=%d head=%d numVertices=%d", ErrOutOfRange, e.Tail, e.Head, numVertices)
		}
	}

	outDegree := make([]int, numVertices)
	for _, e := range edges {
		outDegree[e.Tail]++
	}

	offsets := make([]Edge, numVertices+1)
	for v := 0; v < numVertices; v++ {
		offsets[v+1] = offsets[v] + outDegree[v]
	}

	cursor := make([]Edge, numVertices)
	copy(cursor, offsets[:numVertices])

	heads := make([]Vertex, len(edges))
	edgeIDs := make([]Edge, len(edges))
	for i, e := range edges {
		id := cursor[e.Tail]
		heads[id] = e.Head
		edgeIDs[i] = id
		cursor[e.Tail]++
	}

	return &Graph{offsets: offsets, heads: heads}, edgeIDs, nil
}

func assertNumVertices(numVertices int) {
	if numVertices < 0 {
		panic("csrgraph: numVertices must be non-negative")
	}
}

// NumVertices returns the total number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges returns the total number of edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.heads)
}

// GetVertexID returns the dense array index of vertex. For this graph type
// it is the identity function; it exists to satisfy the library's graph
// capability set uniformly across richer graph types.
func (g *Graph) GetVertexID(vertex Vertex) int {
	return vertex
}

// GetEdgeID returns the dense array index of edge. For this graph type it
// is the identity function.
func (g *Graph) GetEdgeID(edge Edge) int {
	return edge
}

// ContainsVertex reports whether vertex is a valid vertex of the graph.
func (g *Graph) ContainsVertex(vertex Vertex) bool {
	return vertex >= 0 && vertex < g.NumVertices()
}

// ContainsEdge reports whether edge is a valid edge of the graph.
func (g *Graph) ContainsEdge(edge Edge) bool {
	return edge >= 0 && edge < g.NumEdges()
}

// OutDegree returns the number of edges with tail vertex.
func (g *Graph) OutDegree(vertex Vertex) int {
	assertContainsVertex(g, vertex)
	return g.offsets[vertex+1] - g.offsets[vertex]
}

// Vertices iterates over all vertices in the graph, in ascending order.
func (g *Graph) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := 0; v < g.NumVertices(); v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges iterates over all edges in the graph, in ascending order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := 0; e < g.NumEdges(); e++ {
			if !yield(e) {
				return
			}
		}
	}
}

// OutgoingEdges iterates over (edge, head) pairs for every edge whose tail
// is vertex, in edge-ascending order.
func (g *Graph) OutgoingEdges(vertex Vertex) iter.Seq2[Edge, Vertex] {
	assertContainsVertex(g, vertex)
	return func(yield func(Edge, Vertex) bool) {
		start, end := g.offsets[vertex], g.offsets[vertex+1]
		for e := start; e < end; e++ {
			if !yield(e, g.heads[e]) {
				return
			}
		}
	}
}

// Tail returns the tail vertex of edge. Unlike Head, this is not an O(1)
// array lookup in CSR form (the row array is not stored per edge); it
// binary-searches the offsets array. Callers on a search hot path should
// prefer OutgoingEdges, which yields (edge, head) pairs without needing
// Tail at all.
func (g *Graph) Tail(edge Edge) Vertex {
	assertContainsEdge(g, edge)
	lo, hi := 0, g.NumVertices()
	for lo < hi {
		mid := (lo + hi) / 2
		if g.offsets[mid+1] <= edge {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Head returns the head vertex of edge.
func (g *Graph) Head(edge Edge) Vertex {
	assertContainsEdge(g, edge)
	return g.heads[edge]
}

func assertContainsVertex(g *Graph, vertex Vertex) {
	assert.Assert(g.ContainsVertex(vertex), fmt.Sprintf("csrgraph: vertex %d not in graph of %d vertices", vertex, g.NumVertices()))
}

func assertContainsEdge(g *Graph, edge Edge) {
	assert.Assert(g.ContainsEdge(edge), fmt.Sprintf("csrgraph: edge %d not in graph of %d edges", edge, g.NumEdges()))
}

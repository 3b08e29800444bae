// Package forest implements a predecessor forest over a csrgraph.Graph:
// per-vertex (parent vertex, parent edge) arrays with view iteration up to
// a root.
//
// A Forest never owns its graph — the graph must outlive it — and is
// mutable: callers build up trees by calling SetPredecessor, and Reset
// collapses every vertex back to being the root of its own singleton
// tree. The shortestpath package embeds Forest to add label and distance
// state on top of the same predecessor arrays.
package forest

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/assert"
)

// Forest holds predecessor-vertex and predecessor-edge arrays for every
// vertex of a graph.
//
// Invariant: predVertex[v] == v iff v is a root. For a non-root v,
// predEdge[v] is a valid edge whose head is v and whose tail is
// predVertex[v]. Callers that mutate predecessors are responsible for
// never introducing a cycle; Forest does not check for one.
type Forest struct {
	graph      *csrgraph.Graph
	predVertex []int
	predEdge   []int
	fillEdge   int
}

// New creates a Forest over graph in which every vertex is its own root.
// fillEdge is the sentinel value stored in PredecessorEdge for root
// vertices; it carries no meaning beyond that and is never interpreted as
// a real edge id.
func New(graph *csrgraph.Graph, fillEdge int) *Forest {
	assert.Assert(graph != nil, "forest: graph must not be nil")

	n := graph.NumVertices()
	f := &Forest{
		graph:      graph,
		predVertex: make([]int, n),
		predEdge:   make([]int, n),
		fillEdge:   fillEdge,
	}
	f.Reset()
	return f
}

// Graph returns the graph this forest was built over.
func (f *Forest) Graph() *csrgraph.Graph {
	return f.graph
}

// IsRootVertex reports whether vertex is the root of its own tree.
func (f *Forest) IsRootVertex(vertex csrgraph.Vertex) bool {
	f.assertContainsVertex(vertex)
	return f.predVertex[vertex] == vertex
}

// PredecessorVertex returns the parent vertex of vertex. For a root it
// returns vertex itself.
func (f *Forest) PredecessorVertex(vertex csrgraph.Vertex) csrgraph.Vertex {
	f.assertContainsVertex(vertex)
	return f.predVertex[vertex]
}

// PredecessorEdge returns the edge connecting vertex to its parent. Only
// valid if vertex is not a root.
func (f *Forest) PredecessorEdge(vertex csrgraph.Vertex) csrgraph.Edge {
	f.assertContainsVertex(vertex)
	assert.Assert(!f.IsRootVertex(vertex), "forest: root vertex has no predecessor")
	return f.predEdge[vertex]
}

// Predecessor returns the (parent vertex, parent edge) pair for vertex.
// Only valid if vertex is not a root.
func (f *Forest) Predecessor(vertex csrgraph.Vertex) (csrgraph.Vertex, csrgraph.Edge) {
	return f.PredecessorVertex(vertex), f.PredecessorEdge(vertex)
}

// SetPredecessor sets the parent of vertex to (parentVertex, parentEdge).
// It is the caller's responsibility not to introduce a cycle.
func (f *Forest) SetPredecessor(vertex, parentVertex csrgraph.Vertex, parentEdge csrgraph.Edge) {
	f.assertContainsVertex(vertex)
	f.assertContainsVertex(parentVertex)
	f.predVertex[vertex] = parentVertex
	f.predEdge[vertex] = parentEdge
}

// MakeRootVertex makes vertex the root of its own singleton tree.
func (f *Forest) MakeRootVertex(vertex csrgraph.Vertex) {
	f.assertContainsVertex(vertex)
	f.predVertex[vertex] = vertex
	f.predEdge[vertex] = f.fillEdge
}

// Predecessors iterates the (tail, edge) pairs on the path from vertex up
// to, but excluding, its root. The sequence is empty if vertex is itself a
// root.
func (f *Forest) Predecessors(vertex csrgraph.Vertex) iter.Seq2[csrgraph.Vertex, csrgraph.Edge] {
	f.assertContainsVertex(vertex)
	return func(yield func(csrgraph.Vertex, csrgraph.Edge) bool) {
		current := vertex
		for !f.IsRootVertex(current) {
			tail, edge := f.Predecessor(current)
			if !yield(tail, edge) {
				return
			}
			current = tail
		}
	}
}

// Reset restores every vertex to being the root of its own singleton tree.
func (f *Forest) Reset() {
	for v := range f.predVertex {
		f.predVertex[v] = v
		f.predEdge[v] = f.fillEdge
	}
}

func (f *Forest) assertContainsVertex(vertex csrgraph.Vertex) {
	assert.Assert(f.graph.ContainsVertex(vertex), fmt.Sprintf("forest: vertex %d not in underlying graph", vertex))
}

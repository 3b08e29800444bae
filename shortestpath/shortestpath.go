// Package shortestpath extends forest.Forest with the label and distance
// state shared by every shortest-path search in this module: a per-vertex
// label (unreached/reached/visited) and a per-vertex distance, initialized
// to the +∞ sentinel.
//
// Forest is the scaffold dijkstra.Search and dial.Search both embed; it
// does not itself drive a search loop.
package shortestpath

import (
	"iter"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/forest"
	"github.com/katalvlaran/csrflow/internal/assert"
	"github.com/katalvlaran/csrflow/internal/numeric"
)

// Label is a vertex's position in the unreached -> reached -> visited
// progression. Labels only ever move forward: a vertex marked visited
// cannot be reached or visited again.
type Label uint8

const (
	// Unreached is the initial label of every vertex.
	Unreached Label = iota
	// Reached means a candidate distance is known but not yet final.
	Reached
	// Visited means the vertex's distance is final.
	Visited
)

// Forest is a forest.Forest plus per-vertex label and distance arrays.
type Forest[D numeric.Ordered] struct {
	*forest.Forest
	label    []Label
	distance []D
}

// New creates a Forest over graph with every vertex unreached and at
// distance +∞. fillEdge is forwarded to forest.New.
func New[D numeric.Ordered](graph *csrgraph.Graph, fillEdge int) *Forest[D] {
	f := &Forest[D]{
		Forest:   forest.New(graph, fillEdge),
		label:    make([]Label, graph.NumVertices()),
		distance: make([]D, graph.NumVertices()),
	}
	f.resetLabelsAndDistances()
	return f
}

// HasReachedVertex reports whether vertex has been labeled reached or
// visited.
func (f *Forest[D]) HasReachedVertex(vertex csrgraph.Vertex) bool {
	return f.label[f.assertIndex(vertex)] != Unreached
}

// HasVisitedVertex reports whether vertex has been labeled visited.
func (f *Forest[D]) HasVisitedVertex(vertex csrgraph.Vertex) bool {
	return f.label[f.assertIndex(vertex)] == Visited
}

// LabelVertexReached marks vertex as reached. Idempotent if vertex is
// already reached; panics if vertex is already visited.
func (f *Forest[D]) LabelVertexReached(vertex csrgraph.Vertex) {
	idx := f.assertIndex(vertex)
	assert.Assert(!f.HasVisitedVertex(vertex), "shortestpath: cannot re-reach a visited vertex")
	f.label[idx] = Reached
}

// LabelVertexVisited marks vertex as visited. Panics if vertex is already
// visited.
func (f *Forest[D]) LabelVertexVisited(vertex csrgraph.Vertex) {
	idx := f.assertIndex(vertex)
	assert.Assert(!f.HasVisitedVertex(vertex), "shortestpath: vertex already visited")
	f.label[idx] = Visited
}

// ReachedVertices iterates every vertex currently labeled reached or
// visited, in ascending vertex order.
func (f *Forest[D]) ReachedVertices() iter.Seq[csrgraph.Vertex] {
	return func(yield func(csrgraph.Vertex) bool) {
		for v := range f.Graph().Vertices() {
			if f.HasReachedVertex(v) && !yield(v) {
				return
			}
		}
	}
}

// VisitedVertices iterates every vertex currently labeled visited, in
// ascending vertex order.
func (f *Forest[D]) VisitedVertices() iter.Seq[csrgraph.Vertex] {
	return func(yield func(csrgraph.Vertex) bool) {
		for v := range f.Graph().Vertices() {
			if f.HasVisitedVertex(v) && !yield(v) {
				return
			}
		}
	}
}

// DistanceToVertex returns the current best-known distance to vertex,
// or the +∞ sentinel if vertex is unreached.
func (f *Forest[D]) DistanceToVertex(vertex csrgraph.Vertex) D {
	return f.distance[f.assertIndex(vertex)]
}

// SetDistanceToVertex sets the current best-known distance to vertex.
func (f *Forest[D]) SetDistanceToVertex(vertex csrgraph.Vertex, distance D) {
	f.distance[f.assertIndex(vertex)] = distance
}

// Reset restores every vertex to being an unvisited root at distance +∞.
func (f *Forest[D]) Reset() {
	f.Forest.Reset()
	f.resetLabelsAndDistances()
}

func (f *Forest[D]) resetLabelsAndDistances() {
	inf := numeric.Infinity[D]()
	for v := range f.label {
		f.label[v] = Unreached
		f.distance[v] = inf
	}
}

func (f *Forest[D]) assertIndex(vertex csrgraph.Vertex) csrgraph.Vertex {
	assert.Assert(f.Graph().ContainsVertex(vertex), "shortestpath: vertex not in underlying graph")
	return vertex
}

package dijkstra

import (
	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/numeric"
)

// Weight is the per-edge cost function a Run caller supplies; edge weights
// must be non-negative.
type Weight[D any] func(edge csrgraph.Edge) D

// Run drives a complete Dijkstra search to completion from sources,
// returning search for inspection (DistanceToVertex, Predecessors, ...).
// This is the single-call convenience wrapper around the
// add-source/pop/visit/relax loop that Search otherwise leaves to the
// caller.
func Run[D numeric.Ordered](graph *csrgraph.Graph, weight Weight[D], sources ...csrgraph.Vertex) *Search[D] {
	return RunWithOptions(graph, weight, nil, sources...)
}

// RunWithOptions is Run, additionally configuring the search with opts
// (see WithMaxDistance, WithOnVisit).
func RunWithOptions[D numeric.Ordered](graph *csrgraph.Graph, weight Weight[D], opts []Option[D], sources ...csrgraph.Vertex) *Search[D] {
	s := New[D](graph, opts...)
	for _, source := range sources {
		s.AddSource(source)
	}

	for !s.Done() {
		v, d := s.PopNextUnvisitedVertex()
		s.VisitVertex(v, d)
		for e, head := range graph.OutgoingEdges(v) {
			if s.HasVisitedVertex(head) {
				continue
			}
			s.RelaxEdge(e, v, head, d+weight(e))
		}
	}
	return s
}

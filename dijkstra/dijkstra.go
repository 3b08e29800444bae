// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// csrgraph.Graph using a lazy-decrease-key binary heap.
//
// Search is a generic scaffold, not a one-shot function: callers add one
// or more sources, then drive the main loop themselves, checking Done and
// calling VisitVertex/RelaxEdge as edges are explored, over any ordered
// numeric distance type.
//
// Complexity: O((V+E) log V) time, O(V+E) space — each vertex is popped at
// most once, each edge relaxation may push a new heap entry, and stale
// entries are discarded lazily at pop time rather than decrease-keyed in
// place.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/assert"
	"github.com/katalvlaran/csrflow/internal/numeric"
	"github.com/katalvlaran/csrflow/internal/searchopts"
	"github.com/katalvlaran/csrflow/shortestpath"
)

// noPredecessorEdge is the sentinel stored for root vertices' predecessor
// edge; it is never interpreted as a real edge id.
const noPredecessorEdge = -1

// Option configures a Search at construction. See WithMaxDistance and
// WithOnVisit.
type Option[D numeric.Ordered] = searchopts.Option[D]

// WithMaxDistance bounds the search to vertices reachable at distance at
// most max; candidates beyond it are never relaxed into.
func WithMaxDistance[D numeric.Ordered](max D) Option[D] {
	return searchopts.WithMaxDistance[D](max)
}

// WithOnVisit registers a callback invoked each time VisitVertex
// finalizes a vertex's distance.
func WithOnVisit[D numeric.Ordered](fn func(vertex csrgraph.Vertex, distance D)) Option[D] {
	return searchopts.WithOnVisit[D](fn)
}

// Search is a Dijkstra shortest-path search over a csrgraph.Graph.
//
// Search owns a shortestpath.Forest[D] plus a min-heap of (vertex,
// distance) pairs. It must not be driven concurrently on the same state.
type Search[D numeric.Ordered] struct {
	*shortestpath.Forest[D]
	pq   priorityQueue[D]
	opts searchopts.Options[D]
}

// New creates a Dijkstra search over graph, with every vertex unreached.
func New[D numeric.Ordered](graph *csrgraph.Graph, opts ...Option[D]) *Search[D] {
	return &Search[D]{
		Forest: shortestpath.New[D](graph, noPredecessorEdge),
		pq:     make(priorityQueue[D], 0, graph.NumVertices()),
		opts:   searchopts.Apply(opts),
	}
}

// AddSource makes source a root of the forest, labels it reached, sets its
// distance to zero, and pushes it onto the queue. source must not already
// be reached.
func (s *Search[D]) AddSource(source csrgraph.Vertex) {
	assert.Assert(!s.HasReachedVertex(source), "dijkstra: source already reached")
	s.MakeRootVertex(source)
	s.LabelVertexReached(source)
	zero := numeric.Zero[D]()
	s.SetDistanceToVertex(source, zero)
	heap.Push(&s.pq, item[D]{vertex: source, distance: zero})
}

// Done reports whether no unvisited reached vertex remains in the queue.
// Stale (already-visited) entries at the top of the heap are discarded as
// a side effect.
func (s *Search[D]) Done() bool {
	for s.pq.Len() > 0 {
		top := s.pq[0]
		if !s.HasVisitedVertex(top.vertex) {
			return false
		}
		heap.Pop(&s.pq)
	}
	return true
}

// PopNextUnvisitedVertex pops and returns the next unvisited vertex in
// nondecreasing distance order, discarding any stale entries first. The
// queue must be non-empty; callers must check Done first.
func (s *Search[D]) PopNextUnvisitedVertex() (csrgraph.Vertex, D) {
	assert.Assert(s.pq.Len() > 0, "dijkstra: PopNextUnvisitedVertex called on empty queue")
	for {
		top := heap.Pop(&s.pq).(item[D])
		if !s.HasVisitedVertex(top.vertex) {
			return top.vertex, top.distance
		}
	}
}

// ReachVertex records tail as the predecessor of head along edge, labels
// head reached, sets its distance to d, and pushes it onto the queue. head
// must not already be visited.
func (s *Search[D]) ReachVertex(edge csrgraph.Edge, tail, head csrgraph.Vertex, d D) {
	assert.Assert(!s.HasVisitedVertex(head), "dijkstra: cannot reach an already-visited vertex")
	s.SetPredecessor(head, tail, edge)
	s.LabelVertexReached(head)
	s.SetDistanceToVertex(head, d)
	heap.Push(&s.pq, item[D]{vertex: head, distance: d})
}

// VisitVertex labels vertex visited, finalizing its distance at d, and
// invokes the configured OnVisit hook.
func (s *Search[D]) VisitVertex(vertex csrgraph.Vertex, d D) {
	s.LabelVertexVisited(vertex)
	s.SetDistanceToVertex(vertex, d)
	s.opts.OnVisit(vertex, d)
}

// RelaxEdge attempts to improve the distance to head via edge from a
// just-visited tail at candidate distance d. If d exceeds the configured
// MaxDistance, this is a no-op. If d is strictly better than head's
// current distance, head is reached via ReachVertex; otherwise this is
// also a no-op. Requires d to be non-negative (Dijkstra does not support
// negative edge weights).
func (s *Search[D]) RelaxEdge(edge csrgraph.Edge, tail, head csrgraph.Vertex, d D) {
	assert.Assert(d >= numeric.Zero[D](), "dijkstra: negative edge weight")
	if d > s.opts.MaxDistance {
		return
	}
	if d < s.DistanceToVertex(head) {
		s.ReachVertex(edge, tail, head, d)
	}
}

// Reset clears the queue and restores the underlying forest to its initial
// state (every vertex an unvisited root at distance +∞). The configured
// options are unaffected.
func (s *Search[D]) Reset() {
	s.Forest.Reset()
	s.pq = s.pq[:0]
}

// item pairs a vertex with its candidate distance for the priority queue.
type item[D numeric.Ordered] struct {
	vertex   csrgraph.Vertex
	distance D
}

// priorityQueue is a container/heap min-heap of item[D], ordered by
// ascending distance. Stale entries (superseded by a smaller distance
// pushed later) are left in place and discarded lazily at pop time.
type priorityQueue[D numeric.Ordered] []item[D]

func (pq priorityQueue[D]) Len() int            { return len(pq) }
func (pq priorityQueue[D]) Less(i, j int) bool  { return pq[i].distance < pq[j].distance }
func (pq priorityQueue[D]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[D]) Push(x interface{}) { *pq = append(*pq, x.(item[D])) }

func (pq *priorityQueue[D]) Pop() interface{} {
	old := *pq
	n := len(old)
	top := old[n-1]
	*pq = old[:n-1]
	return top
}

// Package dial implements Dial's algorithm: a bucketed shortest-path
// search over a csrgraph.Graph, trading a priority queue for a ring of
// FIFO buckets indexed by distance modulo the bucket count. It requires
// bounded, non-negative integer edge weights.
//
// Search is a generic scaffold mirroring dijkstra.Search: callers add one
// or more sources, then drive the main loop themselves. Construction comes
// in two forms — New takes an explicit bucket count, NewFromNetwork probes
// a residual network's admissible arcs to size the ring automatically.
package dial

import (
	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/assert"
	"github.com/katalvlaran/csrflow/internal/numeric"
	"github.com/katalvlaran/csrflow/internal/searchopts"
	"github.com/katalvlaran/csrflow/residual"
	"github.com/katalvlaran/csrflow/shortestpath"
)

// noPredecessorEdge is the sentinel stored for root vertices' predecessor
// edge; it is never interpreted as a real edge id.
const noPredecessorEdge = -1

// Option configures a Search at construction. See WithMaxDistance and
// WithOnVisit.
type Option[D numeric.Integer] = searchopts.Option[D]

// WithMaxDistance bounds the search to vertices reachable at distance at
// most max; candidates beyond it are never relaxed into.
func WithMaxDistance[D numeric.Integer](max D) Option[D] {
	return searchopts.WithMaxDistance[D](max)
}

// WithOnVisit registers a callback invoked each time VisitVertex
// finalizes a vertex's distance.
func WithOnVisit[D numeric.Integer](fn func(vertex csrgraph.Vertex, distance D)) Option[D] {
	return searchopts.WithOnVisit[D](fn)
}

// Search is a Dial shortest-path search over a csrgraph.Graph.
//
// Search owns a shortestpath.Forest[D] plus a ring of FIFO buckets. It
// must not be driven concurrently on the same state.
type Search[D numeric.Integer] struct {
	*shortestpath.Forest[D]
	buckets         [][]csrgraph.Vertex
	currentBucketID int
	opts            searchopts.Options[D]
}

// New creates a Dial search over graph with an explicit bucket count.
// numBuckets must be at least 1 for any source to be usable; a zero count
// is permitted and yields a search for which Done is immediately true.
func New[D numeric.Integer](graph *csrgraph.Graph, numBuckets int, opts ...Option[D]) *Search[D] {
	assert.Assert(numBuckets >= 0, "dial: numBuckets must be non-negative")
	return &Search[D]{
		Forest:  shortestpath.New[D](graph, noPredecessorEdge),
		buckets: make([][]csrgraph.Vertex, numBuckets),
		opts:    searchopts.Apply(opts),
	}
}

// NewFromNetwork creates a Dial search over network's residual graph,
// sizing the bucket ring from MaxAdmissibleArcLength(network) + 1.
//
// The probe runs once, at construction, against the network's potentials
// at that moment. If a caller updates potentials afterward, the bucket
// count may no longer bound every admissible arc length, and subsequent
// search results are undefined; this repo documents that contract rather
// than offering a resize operation.
func NewFromNetwork[C numeric.Integer, F numeric.Ordered](network *residual.Network[C, F], opts ...Option[C]) *Search[C] {
	maxLen := MaxAdmissibleArcLength[C, F](network)
	return New[C](network.ResidualGraph(), int(maxLen)+1, opts...)
}

// NumBuckets returns the number of buckets in the ring.
func (s *Search[D]) NumBuckets() int {
	return len(s.buckets)
}

// CurrentBucketID returns the index of the bucket currently at the head of
// the ring.
func (s *Search[D]) CurrentBucketID() int {
	return s.currentBucketID
}

// bucketID maps a non-negative distance to its bucket index.
func (s *Search[D]) bucketID(distance D) int {
	assert.DebugAssert(distance >= numeric.Zero[D](), "dial: negative distance")
	n := s.NumBuckets()
	// D may be any sized integer type; reduce through int64 to avoid
	// truncation surprises on 32-bit platforms.
	return int(int64(distance) % int64(n))
}

// PushVertex places vertex into the bucket addressed by distance.
func (s *Search[D]) PushVertex(vertex csrgraph.Vertex, distance D) {
	assert.Assert(s.Graph().ContainsVertex(vertex), "dial: vertex not in graph")
	assert.Assert(distance >= numeric.Zero[D](), "dial: negative distance")
	assert.Assert(s.NumBuckets() >= 1, "dial: cannot push with zero buckets")
	id := s.bucketID(distance)
	s.buckets[id] = append(s.buckets[id], vertex)
}

// AddSource makes source a root of the forest, labels it reached, sets its
// distance to zero, and pushes it into bucket 0. source must not already
// be reached.
func (s *Search[D]) AddSource(source csrgraph.Vertex) {
	assert.Assert(!s.HasReachedVertex(source), "dial: source already reached")
	assert.Assert(s.NumBuckets() > 0, "dial: cannot add a source with zero buckets")
	s.MakeRootVertex(source)
	s.LabelVertexReached(source)
	zero := numeric.Zero[D]()
	s.SetDistanceToVertex(source, zero)
	s.PushVertex(source, zero)
}

// currentBucket returns a pointer to the bucket at the head of the ring.
func (s *Search[D]) currentBucket() *[]csrgraph.Vertex {
	return &s.buckets[s.currentBucketID]
}

// AdvanceCurrentBucket moves the ring's head forward by one position,
// modulo the bucket count. A no-op when there are zero buckets.
func (s *Search[D]) AdvanceCurrentBucket() {
	n := s.NumBuckets()
	if n == 0 {
		return
	}
	s.currentBucketID = (s.currentBucketID + 1) % n
}

// Done reports whether no unvisited reached vertex remains in any bucket.
// As a side effect, it discards already-visited vertices from the fronts
// of buckets it scans and advances the ring's head past exhausted ones.
func (s *Search[D]) Done() bool {
	if s.NumBuckets() == 0 {
		return true
	}

	startID := s.currentBucketID
	for {
		bucket := s.currentBucket()
		for len(*bucket) > 0 {
			if !s.HasVisitedVertex((*bucket)[0]) {
				return false
			}
			*bucket = (*bucket)[1:]
		}

		s.AdvanceCurrentBucket()
		if s.currentBucketID == startID {
			return true
		}
	}
}

// PopNextUnvisitedVertex returns the front of the current bucket without
// skipping past visited entries; callers must call Done first, which
// guarantees the current bucket's front is unvisited.
func (s *Search[D]) PopNextUnvisitedVertex() (csrgraph.Vertex, D) {
	bucket := s.currentBucket()
	assert.Assert(len(*bucket) > 0, "dial: PopNextUnvisitedVertex called on an empty bucket")
	front := (*bucket)[0]
	*bucket = (*bucket)[1:]
	return front, s.DistanceToVertex(front)
}

// ReachVertex records tail as the predecessor of head along edge, labels
// head reached, sets its distance to d, and pushes it into its bucket.
// head must not already be visited.
func (s *Search[D]) ReachVertex(edge csrgraph.Edge, tail, head csrgraph.Vertex, d D) {
	assert.Assert(!s.HasVisitedVertex(head), "dial: cannot reach an already-visited vertex")
	s.SetPredecessor(head, tail, edge)
	s.LabelVertexReached(head)
	s.SetDistanceToVertex(head, d)
	s.PushVertex(head, d)
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
// also a no-op. Requires d to be non-negative.
func (s *Search[D]) RelaxEdge(edge csrgraph.Edge, tail, head csrgraph.Vertex, d D) {
	assert.Assert(d >= numeric.Zero[D](), "dial: negative edge weight")
	if d > s.opts.MaxDistance {
		return
	}
	if d < s.DistanceToVertex(head) {
		s.ReachVertex(edge, tail, head, d)
	}
}

// Reset clears every bucket, resets the ring's head to bucket 0, and
// restores the underlying forest to its initial state. The configured
// options are unaffected.
func (s *Search[D]) Reset() {
	s.Forest.Reset()
	for i := range s.buckets {
		s.buckets[i] = nil
	}
	s.currentBucketID = 0
}

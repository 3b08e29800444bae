// Package searchopts holds the functional-option machinery shared by
// dijkstra.Search and dial.Search construction, following the
// functional-options convention used across this module's search and
// graph-construction packages.
package searchopts

import (
	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/numeric"
)

// Options holds the exploration bound and instrumentation hook a search
// can be configured with.
//   - MaxDistance: vertices whose candidate distance exceeds this bound
//     are never relaxed into, so the search effectively stops expanding
//     past it. Default is the +∞ sentinel (no bound).
//   - OnVisit: called with a vertex's final distance the moment it is
//     visited, before the caller's own loop resumes. Default is a no-op.
type Options[D numeric.Ordered] struct {
	MaxDistance D
	OnVisit     func(vertex csrgraph.Vertex, distance D)
}

// Option configures a Search via functional arguments.
type Option[D numeric.Ordered] func(*Options[D])

// Default returns the zero-configuration Options: no distance bound, a
// no-op visit hook.
func Default[D numeric.Ordered]() Options[D] {
	return Options[D]{
		MaxDistance: numeric.Infinity[D](),
		OnVisit:     func(csrgraph.Vertex, D) {},
	}
}

// WithMaxDistance bounds exploration to vertices reachable at distance
// at most max.
func WithMaxDistance[D numeric.Ordered](max D) Option[D] {
	return func(o *Options[D]) {
		o.MaxDistance = max
	}
}

// WithOnVisit registers a callback invoked each time a vertex is
// finalized. A nil fn is ignored.
func WithOnVisit[D numeric.Ordered](fn func(vertex csrgraph.Vertex, distance D)) Option[D] {
	return func(o *Options[D]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Apply folds opts onto Default, in order.
func Apply[D numeric.Ordered](opts []Option[D]) Options[D] {
	o := Default[D]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

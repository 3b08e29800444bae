package residual

import (
	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/numeric"
)

// NewUnitCapacity builds a Network over graph with unit-capacity arcs:
// every forward arc has capacity 1 and carries 0 or 1 units of flow.
// surplus must have one entry per vertex of graph; cost must have one
// non-negative, non-NaN entry per edge of graph.
func NewUnitCapacity[C numeric.Ordered, F numeric.Ordered](graph *csrgraph.Graph, surplus []F, cost []C, opts ...Option[C, F]) (*Network[C, F], error) {
	n, err := newCore[C, F](graph, surplus, cost, opts)
	if err != nil {
		return nil, err
	}
	n.capacity = newUnitCapacity[F](n.arcIsForward, n.arcTranspose)
	return n, nil
}

// NewUncapacitated builds a Network over graph with uncapacitated
// forward arcs: capacity is effectively infinite and flow is an
// unbounded non-negative value. surplus must have one entry per vertex
// of graph; cost must have one non-negative, non-NaN entry per edge of
// graph.
func NewUncapacitated[C numeric.Ordered, F numeric.Ordered](graph *csrgraph.Graph, surplus []F, cost []C, opts ...Option[C, F]) (*Network[C, F], error) {
	n, err := newCore[C, F](graph, surplus, cost, opts)
	if err != nil {
		return nil, err
	}
	n.capacity = newUncapacitated[F](n.arcIsForward, n.arcTranspose)
	return n, nil
}

// unitCapacity is the 0/1-flow capacity mixin. Saturation is tracked
// directly per residual arc: a forward arc is saturated once flow
// reaches 1 (reverse residual capacity 1); its reverse starts saturated
// (reverse residual capacity 0) since initial flow is 0.
//
// isForward and transpose are supplied by Network rather than recomputed
// here: arc ids are assigned by the doubled graph's tail-grouped
// construction, so forward and reverse arcs are not generally split into
// two contiguous halves of the id space.
type unitCapacity[F numeric.Ordered] struct {
	isForwardArc []bool
	transposeArc []csrgraph.Edge
	saturated    []bool
}

func newUnitCapacity[F numeric.Ordered](isForwardArc []bool, transposeArc []csrgraph.Edge) *unitCapacity[F] {
	saturated := make([]bool, len(isForwardArc))
	for a, forward := range isForwardArc {
		saturated[a] = !forward
	}
	return &unitCapacity[F]{isForwardArc: isForwardArc, transposeArc: transposeArc, saturated: saturated}
}

func (u *unitCapacity[F]) isForward(arc csrgraph.Edge) bool { return u.isForwardArc[arc] }

func (u *unitCapacity[F]) transpose(arc csrgraph.Edge) csrgraph.Edge { return u.transposeArc[arc] }

func (u *unitCapacity[F]) arcCapacity(csrgraph.Edge) F { return numeric.One[F]() }

func (u *unitCapacity[F]) isArcSaturated(arc csrgraph.Edge) bool { return u.saturated[arc] }

func (u *unitCapacity[F]) arcResidualCapacity(arc csrgraph.Edge) F {
	if u.isArcSaturated(arc) {
		return numeric.Zero[F]()
	}
	return numeric.One[F]()
}

func (u *unitCapacity[F]) arcFlow(arc csrgraph.Edge) F {
	if u.isArcSaturated(arc) {
		return numeric.One[F]()
	}
	return numeric.Zero[F]()
}

func (u *unitCapacity[F]) increaseArcFlow(arc csrgraph.Edge, delta F) {
	u.saturated[arc] = true
	u.saturated[u.transpose(arc)] = false
}

// uncapacitated is the unbounded-flow capacity mixin. Flow is tracked
// per residual arc, keyed by arc id directly; reverse-arc capacity and
// residual capacity are derived from the corresponding forward arc's
// stored flow via transposeArc, and reverse-arc flow reports the +∞
// sentinel.
//
// isForward and transpose are supplied by Network rather than recomputed
// here, for the same reason as unitCapacity.
type uncapacitated[F numeric.Ordered] struct {
	isForwardArc []bool
	transposeArc []csrgraph.Edge
	flow         []F
}

func newUncapacitated[F numeric.Ordered](isForwardArc []bool, transposeArc []csrgraph.Edge) *uncapacitated[F] {
	return &uncapacitated[F]{isForwardArc: isForwardArc, transposeArc: transposeArc, flow: make([]F, len(isForwardArc))}
}

func (u *uncapacitated[F]) isForward(arc csrgraph.Edge) bool { return u.isForwardArc[arc] }

func (u *uncapacitated[F]) transpose(arc csrgraph.Edge) csrgraph.Edge { return u.transposeArc[arc] }

func (u *uncapacitated[F]) arcCapacity(arc csrgraph.Edge) F {
	if u.isForward(arc) {
		return numeric.Infinity[F]()
	}
	return u.flow[u.transpose(arc)]
}

func (u *uncapacitated[F]) arcFlow(arc csrgraph.Edge) F {
	if u.isForward(arc) {
		return u.flow[arc]
	}
	return numeric.Infinity[F]()
}

func (u *uncapacitated[F]) arcResidualCapacity(arc csrgraph.Edge) F {
	if u.isForward(arc) {
		return numeric.Infinity[F]()
	}
	return u.flow[u.transpose(arc)]
}

func (u *uncapacitated[F]) isArcSaturated(arc csrgraph.Edge) bool {
	if u.isForward(arc) {
		return false
	}
	return u.arcResidualCapacity(arc) == numeric.Zero[F]()
}

func (u *uncapacitated[F]) increaseArcFlow(arc csrgraph.Edge, delta F) {
	if u.isForward(arc) {
		u.flow[arc] += delta
	} else {
		u.flow[u.transpose(arc)] -= delta
	}
}

// Package residual implements the residual network substrate that
// minimum-cost-flow pivots run over: a doubled-arc directed graph (each
// original edge contributes a forward and a reverse arc), per-node
// excess/potential state, per-arc cost, and a pluggable capacity policy
// (see NewUnitCapacity and NewUncapacitated).
//
// Network wraps a csrgraph.Graph of 2|E| arcs. Arc ids are assigned by the
// underlying graph's usual tail-grouped construction, so a forward arc's
// id and its corresponding original edge id generally differ; Network
// tracks the mapping itself (arcEdgeID, arcIsForward, arcTranspose)
// rather than assuming identity.
package residual

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/internal/assert"
	"github.com/katalvlaran/csrflow/internal/numeric"
)

// ErrMismatchedLength indicates that surplus or cost did not have the
// length NewUnitCapacity and NewUncapacitated require (one entry per node,
// or one per original edge).
var ErrMismatchedLength = errors.New("residual: mismatched input length")

// ErrNegativeCost indicates a negative forward-arc cost was supplied.
var ErrNegativeCost = errors.New("residual: negative forward cost")

// ErrNaNCost indicates a NaN forward-arc cost was supplied.
var ErrNaNCost = errors.New("residual: NaN forward cost")

// Options holds construction-time configuration for a Network.
//   - Trace: if non-nil, called with arc and delta on every
//     IncreaseArcFlow, after the flow update. Intended for debugging a
//     pivot sequence; the default is a no-op.
type Options[C numeric.Ordered, F numeric.Ordered] struct {
	Trace func(arc csrgraph.Edge, delta F)
}

// Option configures a Network via functional arguments, in the style of
// NewUnitCapacity and NewUncapacitated's other constructors.
type Option[C numeric.Ordered, F numeric.Ordered] func(*Options[C, F])

// WithTrace registers fn to be called on every IncreaseArcFlow. A nil fn
// is ignored.
func WithTrace[C numeric.Ordered, F numeric.Ordered](fn func(arc csrgraph.Edge, delta F)) Option[C, F] {
	return func(o *Options[C, F]) {
		if fn != nil {
			o.Trace = fn
		}
	}
}

func defaultOptions[C numeric.Ordered, F numeric.Ordered]() Options[C, F] {
	return Options[C, F]{Trace: func(csrgraph.Edge, F) {}}
}

// capacityPolicy is the behavior a capacity mixin must supply. It is
// queried only by arc id, with the forward/reverse role and transpose
// already resolved by Network — the policy itself holds no graph
// reference.
type capacityPolicy[F numeric.Ordered] interface {
	arcCapacity(arc csrgraph.Edge) F
	arcFlow(arc csrgraph.Edge) F
	arcResidualCapacity(arc csrgraph.Edge) F
	isArcSaturated(arc csrgraph.Edge) bool
	increaseArcFlow(arc csrgraph.Edge, delta F)
}

// Network is a residual network over a doubled-arc csrgraph.Graph,
// generic over a signed cost type C and a flow type F.
type Network[C numeric.Ordered, F numeric.Ordered] struct {
	graph         *csrgraph.Graph
	numForwardArc int
	arcIsForward  []bool
	arcEdgeID     []csrgraph.Edge
	arcTranspose  []csrgraph.Edge
	nodeExcess    []F
	nodePotential []C
	arcCost       []C
	capacity      capacityPolicy[F]
	opts          Options[C, F]
}

// buildDoubledGraph constructs the 2|E|-arc residual graph from the
// original graph and a per-edge forward cost, returning the graph plus
// the per-arc bookkeeping arrays Network needs.
func buildDoubledGraph[C numeric.Ordered](graph *csrgraph.Graph, cost []C) (*csrgraph.Graph, []bool, []csrgraph.Edge, []csrgraph.Edge, []C, error) {
	numEdges := graph.NumEdges()
	if len(cost) != numEdges {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: cost has %d entries, graph has %d edges", ErrMismatchedLength, len(cost), numEdges)
	}
	for _, c := range cost {
		if numeric.IsNaN(c) {
			return nil, nil, nil, nil, nil, fmt.Errorf("%w", ErrNaNCost)
		}
		if c < numeric.Zero[C]() {
			return nil, nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrNegativeCost, c)
		}
	}

	tuples := make([]csrgraph.Tuple, 2*numEdges)
	for e := range graph.Edges() {
		tail := graph.Tail(e)
		head := graph.Head(e)
		tuples[e] = csrgraph.Tuple{Tail: tail, Head: head}
		tuples[numEdges+e] = csrgraph.Tuple{Tail: head, Head: tail}
	}

	residualGraph, edgeIDs, err := csrgraph.NewWithEdgeIDs(graph.NumVertices(), tuples)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	numArcs := 2 * numEdges
	arcIsForward := make([]bool, numArcs)
	arcEdgeID := make([]csrgraph.Edge, numArcs)
	arcTranspose := make([]csrgraph.Edge, numArcs)
	arcCost := make([]C, numArcs)

	for e := 0; e < numEdges; e++ {
		forwardArc := edgeIDs[e]
		reverseArc := edgeIDs[numEdges+e]

		arcIsForward[forwardArc] = true
		arcEdgeID[forwardArc] = e
		arcEdgeID[reverseArc] = e
		arcTranspose[forwardArc] = reverseArc
		arcTranspose[reverseArc] = forwardArc
		arcCost[forwardArc] = cost[e]
		arcCost[reverseArc] = -cost[e]
	}

	return residualGraph, arcIsForward, arcEdgeID, arcTranspose, arcCost, nil
}

func newCore[C numeric.Ordered, F numeric.Ordered](graph *csrgraph.Graph, surplus []F, cost []C, opts []Option[C, F]) (*Network[C, F], error) {
	if len(surplus) != graph.NumVertices() {
		return nil, fmt.Errorf("%w: surplus has %d entries, graph has %d vertices", ErrMismatchedLength, len(surplus), graph.NumVertices())
	}

	residualGraph, arcIsForward, arcEdgeID, arcTranspose, arcCost, err := buildDoubledGraph(graph, cost)
	if err != nil {
		return nil, err
	}

	nodeExcess := make([]F, len(surplus))
	copy(nodeExcess, surplus)

	o := defaultOptions[C, F]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Network[C, F]{
		graph:         residualGraph,
		numForwardArc: graph.NumEdges(),
		arcIsForward:  arcIsForward,
		arcEdgeID:     arcEdgeID,
		arcTranspose:  arcTranspose,
		nodeExcess:    nodeExcess,
		nodePotential: make([]C, graph.NumVertices()),
		arcCost:       arcCost,
		opts:          o,
	}, nil
}

// ResidualGraph returns the doubled-arc directed graph.
func (n *Network[C, F]) ResidualGraph() *csrgraph.Graph {
	return n.graph
}

// NumForwardArcs returns the number of forward arcs, equal to the
// original graph's edge count.
func (n *Network[C, F]) NumForwardArcs() int {
	return n.numForwardArc
}

// IsForwardArc reports whether arc is a forward arc (present in the
// original graph) as opposed to a reverse arc (present only in the
// residual graph).
func (n *Network[C, F]) IsForwardArc(arc csrgraph.Edge) bool {
	n.assertContainsArc(arc)
	return n.arcIsForward[arc]
}

// TransposeArc returns the arc id of arc's transpose: if arc is a
// forward arc from tail to head, its transpose is the reverse arc from
// head to tail, and vice versa.
func (n *Network[C, F]) TransposeArc(arc csrgraph.Edge) csrgraph.Edge {
	n.assertContainsArc(arc)
	return n.arcTranspose[arc]
}

// EdgeID returns the original graph's edge id that arc corresponds to,
// whether arc itself is the forward or the reverse residual arc for
// that edge.
func (n *Network[C, F]) EdgeID(arc csrgraph.Edge) csrgraph.Edge {
	n.assertContainsArc(arc)
	return n.arcEdgeID[arc]
}

// NodeExcess returns the current signed surplus (positive) or demand
// (negative) at node.
func (n *Network[C, F]) NodeExcess(node csrgraph.Vertex) F {
	n.assertContainsNode(node)
	return n.nodeExcess[node]
}

// IncreaseNodeExcess adds delta to node's excess.
func (n *Network[C, F]) IncreaseNodeExcess(node csrgraph.Vertex, delta F) {
	n.assertContainsNode(node)
	n.nodeExcess[node] += delta
}

// DecreaseNodeExcess subtracts delta from node's excess.
func (n *Network[C, F]) DecreaseNodeExcess(node csrgraph.Vertex, delta F) {
	n.assertContainsNode(node)
	n.nodeExcess[node] -= delta
}

// IsExcessNode reports whether node has strictly positive excess.
func (n *Network[C, F]) IsExcessNode(node csrgraph.Vertex) bool {
	return n.NodeExcess(node) > numeric.Zero[F]()
}

// IsDeficitNode reports whether node has strictly negative excess.
func (n *Network[C, F]) IsDeficitNode(node csrgraph.Vertex) bool {
	return n.NodeExcess(node) < numeric.Zero[F]()
}

// ExcessNodes iterates every node with strictly positive excess, in
// ascending node order.
func (n *Network[C, F]) ExcessNodes() iter.Seq[csrgraph.Vertex] {
	return func(yield func(csrgraph.Vertex) bool) {
		for v := range n.graph.Vertices() {
			if n.IsExcessNode(v) && !yield(v) {
				return
			}
		}
	}
}

// DeficitNodes iterates every node with strictly negative excess, in
// ascending node order.
func (n *Network[C, F]) DeficitNodes() iter.Seq[csrgraph.Vertex] {
	return func(yield func(csrgraph.Vertex) bool) {
		for v := range n.graph.Vertices() {
			if n.IsDeficitNode(v) && !yield(v) {
				return
			}
		}
	}
}

// TotalExcess returns the sum of excess over every excess node, accumulated
// in F itself rather than a widened integer type: F admits float32/float64,
// for which truncating each term to an integer before summing would
// misreport the total (and IsBalanced along with it).
func (n *Network[C, F]) TotalExcess() F {
	total := numeric.Zero[F]()
	for v := range n.ExcessNodes() {
		total += n.NodeExcess(v)
	}
	return total
}

// TotalDeficit returns the sum of excess over every deficit node (a
// non-positive value), accumulated in F.
func (n *Network[C, F]) TotalDeficit() F {
	total := numeric.Zero[F]()
	for v := range n.DeficitNodes() {
		total += n.NodeExcess(v)
	}
	return total
}

// IsBalanced reports whether the sum of every node's excess is zero.
func (n *Network[C, F]) IsBalanced() bool {
	total := numeric.Zero[F]()
	for v := range n.graph.Vertices() {
		total += n.NodeExcess(v)
	}
	return total == numeric.Zero[F]()
}

// NodePotential returns node's current dual variable π(node).
func (n *Network[C, F]) NodePotential(node csrgraph.Vertex) C {
	n.assertContainsNode(node)
	return n.nodePotential[node]
}

// IncreaseNodePotential adds delta to node's potential.
func (n *Network[C, F]) IncreaseNodePotential(node csrgraph.Vertex, delta C) {
	n.assertContainsNode(node)
	n.nodePotential[node] += delta
}

// DecreaseNodePotential subtracts delta from node's potential.
func (n *Network[C, F]) DecreaseNodePotential(node csrgraph.Vertex, delta C) {
	n.assertContainsNode(node)
	n.nodePotential[node] -= delta
}

// ArcCost returns the unit cost of flow in arc.
func (n *Network[C, F]) ArcCost(arc csrgraph.Edge) C {
	n.assertContainsArc(arc)
	return n.arcCost[arc]
}

// ArcReducedCost returns c(arc) - π(tail) + π(head), the adjusted cost
// that shortest-path engines traverse arcs by in primal-dual pivots.
func (n *Network[C, F]) ArcReducedCost(arc csrgraph.Edge, tail, head csrgraph.Vertex) C {
	n.assertContainsArc(arc)
	return n.ArcCost(arc) - n.NodePotential(tail) + n.NodePotential(head)
}

// TotalCost returns Σ over forward arcs of ArcCost(a)·ArcFlow(a).
func (n *Network[C, F]) TotalCost() C {
	total := numeric.Zero[C]()
	for a := range n.graph.Edges() {
		if !n.IsForwardArc(a) {
			continue
		}
		total += n.ArcCost(a) * C(n.ArcFlow(a))
	}
	return total
}

// ArcCapacity returns the upper capacity of arc, as defined by the
// network's capacity policy.
func (n *Network[C, F]) ArcCapacity(arc csrgraph.Edge) F {
	n.assertContainsArc(arc)
	return n.capacity.arcCapacity(arc)
}

// ArcFlow returns the amount of flow in arc.
func (n *Network[C, F]) ArcFlow(arc csrgraph.Edge) F {
	n.assertContainsArc(arc)
	return n.capacity.arcFlow(arc)
}

// ArcResidualCapacity returns the residual capacity of arc.
func (n *Network[C, F]) ArcResidualCapacity(arc csrgraph.Edge) F {
	n.assertContainsArc(arc)
	return n.capacity.arcResidualCapacity(arc)
}

// IsArcSaturated reports whether arc's residual capacity is zero.
func (n *Network[C, F]) IsArcSaturated(arc csrgraph.Edge) bool {
	n.assertContainsArc(arc)
	return n.capacity.isArcSaturated(arc)
}

// IncreaseArcFlow adds delta units of flow to arc and removes delta
// units from its transpose. Requires 0 < delta <= ArcResidualCapacity(arc).
func (n *Network[C, F]) IncreaseArcFlow(arc csrgraph.Edge, delta F) {
	n.assertContainsArc(arc)
	assert.Assert(delta > numeric.Zero[F](), "residual: IncreaseArcFlow requires a positive delta")
	assert.Assert(n.ArcResidualCapacity(arc) >= delta, "residual: delta exceeds residual capacity")
	n.capacity.increaseArcFlow(arc, delta)
	n.opts.Trace(arc, delta)
}

func (n *Network[C, F]) assertContainsNode(node csrgraph.Vertex) {
	assert.Assert(n.graph.ContainsVertex(node), "residual: node not in network")
}

func (n *Network[C, F]) assertContainsArc(arc csrgraph.Edge) {
	assert.Assert(n.graph.ContainsEdge(arc), "residual: arc not in network")
}

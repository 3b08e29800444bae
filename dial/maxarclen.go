package dial

import (
	"github.com/katalvlaran/csrflow/internal/assert"
	"github.com/katalvlaran/csrflow/internal/numeric"
	"github.com/katalvlaran/csrflow/residual"
)

// MaxAdmissibleArcLength scans every admissible arc of network — residual
// capacity positive, reduced cost finite and non-negative — and returns
// the maximum reduced cost among them, or zero if none are admissible.
// Used by NewFromNetwork to size the bucket ring; also independently
// callable by a caller sizing its own Dial search.
func MaxAdmissibleArcLength[C numeric.Integer, F numeric.Ordered](network *residual.Network[C, F]) C {
	maxLen := numeric.Zero[C]()
	graph := network.ResidualGraph()

	for tail := range graph.Vertices() {
		for arc, head := range graph.OutgoingEdges(tail) {
			if network.IsArcSaturated(arc) {
				continue
			}

			length := network.ArcReducedCost(arc, tail, head)
			assert.Assert(!numeric.IsNaN(length), "dial: NaN arc length during max-arc-length probe")
			assert.Assert(length >= numeric.Zero[C](), "dial: negative arc length during max-arc-length probe")
			if numeric.IsInf(length) {
				continue
			}

			if length > maxLen {
				maxLen = length
			}
		}
	}

	return maxLen
}

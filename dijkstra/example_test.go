package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/csrflow/csrgraph"
	"github.com/katalvlaran/csrflow/dijkstra"
)

// ExampleRun computes shortest distances from a single source over a
// small weighted DAG.
func ExampleRun() {
	g, err := csrgraph.New(4, []csrgraph.Tuple{
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
		{Tail: 1, Head: 2},
		{Tail: 2, Head: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	weights := map[csrgraph.Edge]int64{0: 1, 1: 4, 2: 2, 3: 1}
	weight := func(e csrgraph.Edge) int64 { return weights[e] }

	search := dijkstra.Run(g, weight, 0)
	for v := range g.Vertices() {
		fmt.Printf("dist[%d]=%d\n", v, search.DistanceToVertex(v))
	}
	// Output:
	// dist[0]=0
	// dist[1]=1
	// dist[2]=3
	// dist[3]=4
}

// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

// ExampleGraph_Relabel maps vertices onto dense decimal positions, the
// index space used by the numeric packages.
func ExampleGraph_Relabel() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("hub", "left", 2)
	_, _ = g.AddEdge("hub", "right", 3)

	r, err := g.Relabel(map[string]string{"hub": "0", "left": "1", "right": "2"})
	if err != nil {
		fmt.Println(err)
		return
	}
	ids, _ := r.NeighborIDs("0")
	fmt.Println(r.Vertices(), ids)
	// Output: [0 1 2] [1 2]
}

// ExampleGraph_Density computes the density of a triangle with a pendant vertex.
func ExampleGraph_Density() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)
	fmt.Printf("%.3f\n", g.Density())
	// Output: 0.667
}

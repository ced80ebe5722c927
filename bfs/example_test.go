package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/bfs"
	"github.com/katalvlaran/lvcurrent/builder"
)

// ExampleConnectedComponents splits a barbell once its bridge is gone.
func ExampleConnectedComponents() {
	g, _ := builder.BuildGraph(nil, nil, builder.Barbell(3, 0))
	_, _ = g.RemoveEdgesBetween("2", "3")

	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(comps)
	// Output: [[0 1 2] [3 4 5]]
}

// ExampleBFS_layers prints hop distances from the hub of a wheel.
func ExampleBFS_layers() {
	g, _ := builder.BuildGraph(nil, nil, builder.Wheel(5))
	res, _ := bfs.BFS(g, "1")
	fmt.Println(res.Order, res.Eccentricity())
	// Output: [1 0 2 4 3] 2
}

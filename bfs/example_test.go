package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/snakesladders/bfs"
	"github.com/katalvlaran/snakesladders/core"
)

// ExampleBFS_shortestPath finds the fewest-hop route when a long chain
// competes with a shortcut edge.
func ExampleBFS_shortestPath() {
	// Route1: 1→2→3→4→5→6 (5 hops)
	// Route2: 1→2→9→6     (3 hops)
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {2, 9}, {9, 6}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, 1, bfs.WithTarget(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(6)
	fmt.Println(res.Found, res.Depth[6], path)
	// Output:
	// true 3 [1 2 9 6]
}

// ExampleBFS_layers prints the depth of every vertex reachable from 0.
func ExampleBFS_layers() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 3)

	res, _ := bfs.BFS(g, 0)
	for _, id := range res.Order {
		fmt.Printf("%d@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output:
	// 0@0 1@1 2@1 3@2
}

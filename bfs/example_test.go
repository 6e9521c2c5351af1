package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/isograph/bfs"
	"github.com/katalvlaran/isograph/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex r*3+c sits at row r, column c.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := r*3 + c
			if c+1 < 3 {
				_ = g.AddEdge(v, v+1)
			}
			if r+1 < 3 {
				_ = g.AddEdge(v, v+3)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFSResult_PathTo finds the fewest-hop route between two vertices.
// Route 0-1-2-3-9 has 4 hops, route 0-4-5-9 has 3.
func ExampleBFSResult_PathTo() {
	g, _ := core.FromEdges(10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 9},
		{0, 4}, {4, 5}, {5, 9},
		{2, 6}, {6, 7}, {3, 8},
	})

	res, _ := bfs.BFS(g, 0)
	path, err := res.PathTo(9)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 9]
}

// ExampleFindCenter shows one center for even diameter and two for odd.
func ExampleFindCenter() {
	p5, _ := core.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	p6, _ := core.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})

	c5, _ := bfs.FindCenter(p5)
	c6, _ := bfs.FindCenter(p6)
	fmt.Println(c5, c6)
	// Output:
	// [2] [2 3]
}

// ExampleBFS_hooksAndCancellation demonstrates the hooks alongside context
// cancellation on a 7-vertex chain.
func ExampleBFS_hooksAndCancellation() {
	g := core.NewGraph(7)
	for i := 0; i < 6; i++ {
		_ = g.AddEdge(i, i+1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var visited []int
	_, err := bfs.BFS(g, 0,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(v, d int) error {
			visited = append(visited, v)
			if d == 3 {
				cancel()
			}
			return nil
		}),
	)

	fmt.Println("error:", err)
	fmt.Println("visited:", visited)
	// Output:
	// error: context canceled
	// visited: [0 1 2 3]
}

package refine_test

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/refine"
)

// ExampleRefine colors a path by its distance to the nearest endpoint.
func ExampleRefine() {
	g, _ := core.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})

	res, _ := refine.Refine(g)
	fmt.Println("classes:", res.Classes)
	fmt.Println("colors: ", g.Colors())
	fmt.Println("stable: ", refine.IsEquitable(g))
	// Output:
	// classes: 3
	// colors:  [1 2 0 0 2 1]
	// stable:  true
}

// ExampleRefine_union compares two graphs that 1-WL cannot tell apart:
// the 6-cycle and two disjoint triangles.
func ExampleRefine_union() {
	c6, _ := core.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	k3k3, _ := core.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})

	u, _ := core.Union(c6, k3k3)
	_, _ = refine.Refine(u)
	a, b, _ := u.Split()
	fmt.Println(a.ColorHistogram(), b.ColorHistogram())
	// Output:
	// [[0 6]] [[0 6]]
}

// SPDX-License-Identifier: MIT

package ahu_test

import (
	"fmt"

	"github.com/katalvlaran/isograph/ahu"
	"github.com/katalvlaran/isograph/core"
)

// ExampleIsomorphic compares unrooted trees through their centers.
func ExampleIsomorphic() {
	path, _ := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	other, _ := core.FromEdges(4, [][2]int{{3, 1}, {1, 0}, {0, 2}})
	star, _ := core.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	same, _ := ahu.Isomorphic(path, other)
	diff, _ := ahu.Isomorphic(path, star)
	fmt.Println(same, diff)
	// Output:
	// true false
}

// ExampleRooted prints the per-level code trace, deepest level first.
func ExampleRooted() {
	x, _ := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	y, _ := core.FromEdges(4, [][2]int{{3, 1}, {1, 0}, {0, 2}})

	res, _ := ahu.Rooted(x, 0, y, 3)
	fmt.Println(res.Isomorphic)
	for _, lv := range res.Levels {
		fmt.Println(lv.Level, lv.X, lv.Y)
	}
	// Output:
	// true
	// 3 [0] [0]
	// 2 [1] [1]
	// 1 [1] [1]
	// 0 [1] [1]
}

// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Connectivity and tree queries built on BFS: components, IsTree,
//       centers and diameter.
// Determinism:
//   - Components are listed by smallest member, each sorted ascending.
//   - The double BFS always starts from vertex 0 and takes the last vertex
//     of the visit order as "farthest".

package bfs

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// Components returns the connected components of g. Each component is
// sorted ascending; components are ordered by their smallest vertex.
//
// Complexity: O(n + m).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			return nil, err
		}
		comp := append([]int(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}

// IsConnected reports whether g has exactly one component. The empty
// graph is not connected; nil graphs report false.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.Order() == 0 {
		return false
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}

	return len(res.Order) == g.Order()
}

// IsTree reports whether g is connected with exactly n-1 edges.
func IsTree(g *core.Graph) bool {
	return IsConnected(g) && g.EdgeCount() == g.Order()-1
}

// FindCenter returns the center of tree g: one vertex when the diameter is
// even, two adjacent vertices (sorted ascending) when it is odd.
//
// Double BFS: from vertex 0 find a farthest vertex v1, from v1 a farthest
// vertex v2 at distance d, then walk ⌊d/2⌋ parent steps from v2 toward v1.
//
// Errors: ErrGraphNil, ErrNotTree.
//
// Complexity: O(n).
func FindCenter(g *core.Graph) ([]int, error) {
	d, path, err := diameterPath(g)
	if err != nil {
		return nil, err
	}
	// path runs v2 → v1 and has d+1 vertices
	mid := path[d/2]
	if d%2 == 0 {
		return []int{mid}, nil
	}
	other := path[d/2+1]
	if other < mid {
		return []int{other, mid}, nil
	}

	return []int{mid, other}, nil
}

// Diameter returns the number of edges on a longest path of tree g.
//
// Errors: ErrGraphNil, ErrNotTree.
func Diameter(g *core.Graph) (int, error) {
	d, _, err := diameterPath(g)

	return d, err
}

// diameterPath runs the double BFS and returns the diameter and the path
// from v2 back to v1.
func diameterPath(g *core.Graph) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	if !IsTree(g) {
		return 0, nil, errors.Wrapf(ErrNotTree, "n=%d m=%d", g.Order(), g.EdgeCount())
	}
	first, err := BFS(g, 0)
	if err != nil {
		return 0, nil, err
	}
	v1 := first.Order[len(first.Order)-1]

	second, err := BFS(g, v1)
	if err != nil {
		return 0, nil, err
	}
	v2 := second.Order[len(second.Order)-1]
	d := second.Depth[v2]

	path := make([]int, 0, d+1)
	for cur := v2; cur >= 0; cur = second.Parent[cur] {
		path = append(path, cur)
	}

	return d, path, nil
}

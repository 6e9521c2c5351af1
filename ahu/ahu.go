// SPDX-License-Identifier: MIT
//
// File: ahu.go
// Role: Aho–Hopcroft–Ullman level labeling for rooted and unrooted trees.
// Determinism:
//   - Codes at each level are assigned in first-seen order, scanning X's
//     level (in BFS order) before Y's, starting at 1; leaves are LeafCode.
//   - Unrooted trees are rooted at their centers (bfs.FindCenter).

package ahu

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/bfs"
	"github.com/katalvlaran/isograph/core"
)

// rooted is one tree hung from a root: BFS levels and children lists.
type rooted struct {
	levels   [][]int // depth → vertices in BFS order
	children [][]int // vertex → children
	code     []int   // vertex → code at its level
}

func hang(g *core.Graph, root int) (*rooted, error) {
	res, err := bfs.BFS(g, root)
	if err != nil {
		return nil, err
	}
	t := &rooted{
		children: make([][]int, g.Order()),
		code:     make([]int, g.Order()),
	}
	for _, v := range res.Order {
		d := res.Depth[v]
		if d == len(t.levels) {
			t.levels = append(t.levels, nil)
		}
		t.levels[d] = append(t.levels[d], v)
		if p := res.Parent[v]; p >= 0 {
			t.children[p] = append(t.children[p], v)
		}
	}

	return t, nil
}

// rawLabel is the sorted multiset of v's children codes.
func (t *rooted) rawLabel(v int) []int {
	lab := make([]int, len(t.children[v]))
	for i, c := range t.children[v] {
		lab[i] = t.code[c]
	}
	sort.Ints(lab)

	return lab
}

// compareLabels orders raw labels lexicographically, shorter prefix first.
func compareLabels(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}

	return len(x) - len(y)
}

// encodeLevel assigns codes to one level of both trees jointly and returns
// the sorted code lists.
func encodeLevel(tx, ty *rooted, xs, ys []int) ([]int, []int) {
	dict := redblacktree.NewWith(compareLabels)
	next := LeafCode + 1
	assign := func(t *rooted, vs []int) []int {
		out := make([]int, len(vs))
		for i, v := range vs {
			if len(t.children[v]) == 0 {
				t.code[v] = LeafCode
			} else {
				lab := t.rawLabel(v)
				c, ok := dict.Get(lab)
				if !ok {
					c = next
					dict.Put(lab, next)
					next++
				}
				t.code[v] = c.(int)
			}
			out[i] = t.code[v]
		}
		sort.Ints(out)

		return out
	}
	cx := assign(tx, xs)
	cy := assign(ty, ys)

	return cx, cy
}

// Rooted compares tree x rooted at rx with tree y rooted at ry level by
// level, deepest first, and fails fast on the first level whose code
// multisets differ.
//
// Errors: ErrGraphNil, ErrNotTree, ErrRootOutOfRange.
//
// Complexity: O(n log n).
func Rooted(x *core.Graph, rx int, y *core.Graph, ry int) (*Result, error) {
	if err := checkTrees(x, y); err != nil {
		return nil, err
	}
	if !x.HasVertex(rx) || !y.HasVertex(ry) {
		return nil, errors.Wrapf(ErrRootOutOfRange, "roots %d, %d", rx, ry)
	}
	res := &Result{RootX: rx, RootY: ry, FailedLevel: -1}
	if x.Order() != y.Order() {
		res.FailedLevel = 0
		return res, nil
	}
	tx, err := hang(x, rx)
	if err != nil {
		return nil, err
	}
	ty, err := hang(y, ry)
	if err != nil {
		return nil, err
	}
	if len(tx.levels) != len(ty.levels) {
		res.FailedLevel = min(len(tx.levels), len(ty.levels))
		return res, nil
	}

	for l := len(tx.levels) - 1; l >= 0; l-- {
		cx, cy := encodeLevel(tx, ty, tx.levels[l], ty.levels[l])
		res.Levels = append(res.Levels, LevelTrace{Level: l, X: cx, Y: cy})
		if !equalInts(cx, cy) {
			res.FailedLevel = l
			klog.V(3).Infof("ahu: roots (%d,%d) diverge at level %d", rx, ry, l)
			return res, nil
		}
	}
	res.Isomorphic = true

	return res, nil
}

// Isomorphic decides whether trees x and y are isomorphic by rooting both
// at their centers. With two centers, the pairings (x0, y0) and (x1, y0)
// are tried.
//
// Errors: ErrGraphNil, ErrNotTree.
func Isomorphic(x, y *core.Graph) (bool, error) {
	if err := checkTrees(x, y); err != nil {
		return false, err
	}
	if x.Order() != y.Order() {
		return false, nil
	}
	cx, err := bfs.FindCenter(x)
	if err != nil {
		return false, err
	}
	cy, err := bfs.FindCenter(y)
	if err != nil {
		return false, err
	}
	if len(cx) != len(cy) {
		return false, nil
	}
	for _, rx := range cx {
		res, err := Rooted(x, rx, y, cy[0])
		if err != nil {
			return false, err
		}
		if res.Isomorphic {
			return true, nil
		}
	}

	return false, nil
}

func checkTrees(x, y *core.Graph) error {
	if x == nil || y == nil {
		return ErrGraphNil
	}
	if !bfs.IsTree(x) {
		return errors.Wrap(ErrNotTree, "first graph")
	}
	if !bfs.IsTree(y) {
		return errors.Wrap(ErrNotTree, "second graph")
	}

	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

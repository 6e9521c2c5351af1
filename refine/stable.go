// SPDX-License-Identifier: MIT
//
// File: stable.go
// Role: Read-only checks on a coloring: class listing and equitability.

package refine

import (
	"sort"

	"github.com/katalvlaran/isograph/core"
)

// Classes returns the color classes of g as color → ascending vertices.
// It is a convenience alias of g.ColorClasses for callers that only import refine.
func Classes(g *core.Graph) map[int][]int {
	if g == nil {
		return nil
	}

	return g.ColorClasses()
}

// IsEquitable reports whether the coloring of g is stable: any two
// vertices of the same color have the same number of neighbors of every
// color. A nil graph is not equitable.
//
// Complexity: O(n + m).
func IsEquitable(g *core.Graph) bool {
	if g == nil {
		return false
	}
	// signature of a class: the histogram of its first member
	want := make(map[int]map[int]int)
	for v := 0; v < g.Order(); v++ {
		hist := make(map[int]int)
		for _, w := range g.Neighbors(v) {
			hist[g.Color(w)]++
		}
		ref, ok := want[g.Color(v)]
		if !ok {
			want[g.Color(v)] = hist
			continue
		}
		if !sameHistogram(ref, hist) {
			return false
		}
	}

	return true
}

func sameHistogram(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for c, k := range a {
		if b[c] != k {
			return false
		}
	}

	return true
}

// Signature returns the sorted class sizes of g's coloring, a cheap
// invariant for comparing two stable colorings.
func Signature(g *core.Graph) []int {
	hist := g.ColorHistogram()
	out := make([]int, len(hist))
	for i, h := range hist {
		out[i] = h[1]
	}
	sort.Ints(out)

	return out
}

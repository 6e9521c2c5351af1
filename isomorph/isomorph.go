// SPDX-License-Identifier: MIT
//
// File: isomorph.go
// Role: Isomorphism entry points: counting, deciding, equivalence classes.
// Policy:
//   - Inputs are never mutated: the search runs on a union that copies them.
//   - Vertex colors are part of the structure; isomorphisms must preserve them.

package isomorph

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/ahu"
	"github.com/katalvlaran/isograph/bfs"
	"github.com/katalvlaran/isograph/core"
)

// CountIsomorphisms returns the number of color-preserving isomorphisms
// from x to y. With WithStopAtFirst the result is 0 or 1.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrAlreadyUnion if an
// input is itself a union graph.
//
// Complexity: exponential in the worst case; polynomial per search node.
func CountIsomorphisms(x, y *core.Graph, opts ...Option) (uint64, error) {
	if x == nil || y == nil {
		return 0, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if x.Order() != y.Order() || x.EdgeCount() != y.EdgeCount() {
		if o.Stats != nil {
			*o.Stats = Stats{}
		}
		return 0, nil
	}

	s, err := newSearcher(x, y, o)
	if err != nil {
		return 0, err
	}
	var total uint64
	if err = s.run(func() { total, _ = s.count(0) }); err != nil {
		return 0, err
	}
	klog.V(2).Infof("isomorph: count n=%d result=%d nodes=%d leaves=%d unbalanced=%d",
		x.Order(), total, s.stats.Nodes, s.stats.Leaves, s.stats.Unbalanced)

	return total, nil
}

// IsIsomorphic reports whether x and y are isomorphic (preserving colors).
// Two uniformly colored trees are decided by AHU labeling; a tree is never
// isomorphic to a non-tree; everything else runs the counting search with
// stop-at-first.
func IsIsomorphic(x, y *core.Graph, opts ...Option) (bool, error) {
	if x == nil || y == nil {
		return false, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if x.Order() != y.Order() || x.EdgeCount() != y.EdgeCount() {
		return false, nil
	}

	tx, ty := bfs.IsTree(x), bfs.IsTree(y)
	if tx != ty {
		return false, nil
	}
	if tx && o.TreeFastPath && sameUniformColor(x, y) {
		ok, err := ahu.Isomorphic(x, y)
		klog.V(2).Infof("isomorph: tree fast path n=%d result=%v", x.Order(), ok)
		return ok, err
	}

	k, err := CountIsomorphisms(x, y, append(append([]Option(nil), opts...), WithStopAtFirst())...)

	return k > 0, err
}

// sameUniformColor reports whether both graphs carry one and the same color
// on every vertex, the only case where uncolored tree labeling applies.
func sameUniformColor(x, y *core.Graph) bool {
	if x.Order() == 0 {
		return true
	}
	c := x.Color(0)
	for _, g := range []*core.Graph{x, y} {
		for v := 0; v < g.Order(); v++ {
			if g.Color(v) != c {
				return false
			}
		}
	}

	return true
}

// EquivalenceClasses partitions graph indices into isomorphism classes.
// Each class is sorted ascending and classes are ordered by first member.
//
// Errors: ErrGraphNil (wrapped with the offending index), search errors.
//
// Complexity: O(k·c) isomorphism tests for k graphs and c classes.
func EquivalenceClasses(graphs []*core.Graph, opts ...Option) ([][]int, error) {
	for i, g := range graphs {
		if g == nil {
			return nil, errors.Wrapf(ErrGraphNil, "graph #%d", i)
		}
	}
	var classes [][]int
	for i, g := range graphs {
		placed := false
		for c := range classes {
			ok, err := IsIsomorphic(graphs[classes[c][0]], g, opts...)
			if err != nil {
				return nil, errors.Wrapf(err, "graph #%d vs #%d", classes[c][0], i)
			}
			if ok {
				classes[c] = append(classes[c], i)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, []int{i})
		}
	}
	klog.V(2).Infof("isomorph: %d graphs in %d classes", len(graphs), len(classes))

	return classes, nil
}

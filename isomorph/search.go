// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Individualization-refinement search over a disjoint-union graph.
// Policy:
//   - The search owns one union graph U = X ⊎ Y with journaling on. Every
//     recursive call is bracketed by Mark/Rollback, so the colors seen by a
//     node are exactly the colors its parent left, whatever its children did.
//   - The "stop" signal is an ordinary return value, never a panic.
// Determinism:
//   - Branching class: the largest class with ≥2 vertices on the A side,
//     ties to the smallest (earliest created) color id. The individualized
//     vertex is the smallest A-vertex of that class; B candidates are tried
//     in ascending index order.

package isomorph

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/group"
	"github.com/katalvlaran/isograph/perm"
	"github.com/katalvlaran/isograph/refine"
)

type nodeKind int

const (
	nodeBranch nodeKind = iota
	nodeUnbalanced
	nodeDiscrete
)

// node is the classification of the current coloring of U.
type node struct {
	kind  nodeKind
	color int   // branching color
	a     int   // vertex of A to individualize
	b     []int // candidates in B, ascending
}

// searcher holds the state of one search on a union graph.
type searcher struct {
	u     *core.Graph
	split int
	opts  Options
	stats Stats

	grp *group.Group // automorphism mode only
	err error
}

func newSearcher(x, y *core.Graph, o Options) (*searcher, error) {
	u, err := core.Union(x, y)
	if err != nil {
		return nil, err
	}
	if o.DegreeSeed {
		u.ColorByDegree()
	}

	return &searcher{u: u, split: u.SplitPoint(), opts: o}, nil
}

// run executes fn with journaling on and restores U afterwards.
func (s *searcher) run(fn func()) error {
	s.u.StartJournal()
	defer s.u.StopJournal()
	m := s.u.Mark()
	fn()
	if err := s.u.Rollback(m); err != nil && s.err == nil {
		s.err = err
	}
	if s.opts.Stats != nil {
		*s.opts.Stats = s.stats
	}

	return s.err
}

// enter refines U and classifies the result. It returns false if the
// search must unwind because of an error.
func (s *searcher) enter(depth int) (node, bool) {
	s.stats.Nodes++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	if _, err := refine.Refine(s.u); err != nil {
		s.err = err
		return node{}, false
	}
	nd := s.classify()
	klog.V(4).Infof("isomorph: depth=%d kind=%d color=%d candidates=%d", depth, nd.kind, nd.color, len(nd.b))

	return nd, true
}

// classify compares per-color counts of the two sides and picks the
// branching class.
func (s *searcher) classify() node {
	total := s.u.Order()
	countA := make(map[int]int)
	countB := make(map[int]int)
	for v := 0; v < s.split; v++ {
		countA[s.u.Color(v)]++
	}
	for v := s.split; v < total; v++ {
		countB[s.u.Color(v)]++
	}
	if len(countA) != len(countB) {
		return node{kind: nodeUnbalanced}
	}
	best, size := -1, 1
	for c, k := range countA {
		if countB[c] != k {
			return node{kind: nodeUnbalanced}
		}
		if k > size || (k == size && k >= 2 && c < best) {
			best, size = c, k
		}
	}
	if best < 0 {
		return node{kind: nodeDiscrete}
	}

	nd := node{kind: nodeBranch, color: best, a: -1, b: make([]int, 0, size)}
	for v := 0; v < s.split && nd.a < 0; v++ {
		if s.u.Color(v) == best {
			nd.a = v
		}
	}
	for v := s.split; v < total; v++ {
		if s.u.Color(v) == best {
			nd.b = append(nd.b, v)
		}
	}

	return nd
}

// try recolors candidate w with the individualized color, recurses via
// next, and restores every color write made on the way.
func (s *searcher) try(w, fresh int, next func() bool) bool {
	m := s.u.Mark()
	s.u.SetColor(w, fresh)
	r := next()
	if err := s.u.Rollback(m); err != nil && s.err == nil {
		s.err = err
	}

	return r || s.err != nil
}

// count returns the number of isomorphisms below the current node and
// whether enumeration must stop.
func (s *searcher) count(depth int) (uint64, bool) {
	nd, ok := s.enter(depth)
	if !ok {
		return 0, true
	}
	switch nd.kind {
	case nodeUnbalanced:
		s.stats.Unbalanced++
		return 0, false
	case nodeDiscrete:
		s.stats.Leaves++
		return 1, s.opts.StopAtFirst
	}

	fresh := s.u.NewColor()
	s.u.SetColor(nd.a, fresh)
	var total uint64
	for _, w := range nd.b {
		var sub uint64
		stop := s.try(w, fresh, func() bool {
			var st bool
			sub, st = s.count(depth + 1)
			return st
		})
		total += sub
		if stop {
			return total, true
		}
	}

	return total, false
}

// automorph explores the node for automorphisms of X (= Y). trivial means
// every individualization so far mapped a vertex to its own twin. It
// returns true when an automorphism was found below a non-trivial path,
// which lets non-trivial ancestors abandon their remaining siblings.
func (s *searcher) automorph(trivial bool, depth int) bool {
	nd, ok := s.enter(depth)
	if !ok {
		return true
	}
	switch nd.kind {
	case nodeUnbalanced:
		s.stats.Unbalanced++
		return false
	case nodeDiscrete:
		s.stats.Leaves++
		if trivial {
			return false
		}
		return s.record()
	}

	fresh := s.u.NewColor()
	s.u.SetColor(nd.a, fresh)
	found := false
	for _, w := range s.candidates(nd, trivial) {
		childTrivial := trivial && w == nd.a+s.split
		if trivial && !childTrivial && s.opts.OrbitPruning && s.grp.InSameOrbit(nd.a, w-s.split) {
			s.stats.Pruned++
			continue
		}
		r := s.try(w, fresh, func() bool { return s.automorph(childTrivial, depth+1) })
		if s.err != nil {
			return true
		}
		found = found || r
		if r && !trivial && s.opts.AncestorJump {
			return true
		}
	}

	return found && !trivial
}

// candidates orders B-candidates; at trivial nodes the twin of the
// individualized vertex goes first so that the stabilizer is known before
// any other coset is explored.
func (s *searcher) candidates(nd node, trivial bool) []int {
	if !trivial {
		return nd.b
	}
	twin := nd.a + s.split
	out := make([]int, 0, len(nd.b))
	rest := make([]int, 0, len(nd.b))
	for _, w := range nd.b {
		if w == twin {
			out = append(out, w)
		} else {
			rest = append(rest, w)
		}
	}

	return append(out, rest...)
}

// record turns the discrete coloring into a permutation and adds it to the
// generating set unless it is already a member.
func (s *searcher) record() bool {
	n := s.split
	imageOf := make(map[int]int, n)
	for v := n; v < s.u.Order(); v++ {
		imageOf[s.u.Color(v)] = v - n
	}
	pairs := make([][2]int, 0, n)
	for a := 0; a < n; a++ {
		pairs = append(pairs, [2]int{a, imageOf[s.u.Color(a)]})
	}
	p, err := perm.FromPairs(n, pairs)
	if err != nil {
		s.err = err
		return true
	}
	if !s.grp.Contains(p) {
		s.grp.Add(p)
		s.stats.Generators++
		klog.V(3).Infof("isomorph: generator #%d %s", s.grp.Len(), p)
	}

	return true
}

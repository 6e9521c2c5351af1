// SPDX-License-Identifier: MIT
//
// File: group.go
// Role: Group, a generating set with a cached stabilizer chain.

package group

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/isograph/perm"
)

// New creates a group on n points generated by gens (possibly none).
func New(n int, gens ...perm.Permutation) *Group {
	g := &Group{n: n}
	for _, p := range gens {
		g.Add(p)
	}

	return g
}

// Add appends p to the generating set. Duplicates and members are not
// rejected; callers that want a small set check Contains first.
func (g *Group) Add(p perm.Permutation) {
	g.gens = append(g.gens, p)
	if p.Degree() > g.n {
		g.n = p.Degree()
	}
	g.chain, g.built = nil, false
}

// Contains reports whether p is an element of the group.
func (g *Group) Contains(p perm.Permutation) bool {
	return sift(g.stabChain(), p)
}

// Order returns the number of elements of the group.
func (g *Group) Order() *big.Int {
	return orderOf(g.stabChain())
}

// Generators returns a copy of the generating set in insertion order.
func (g *Group) Generators() []perm.Permutation {
	return append([]perm.Permutation(nil), g.gens...)
}

// Len returns the number of generators.
func (g *Group) Len() int {
	return len(g.gens)
}

// Degree returns the number of points the group acts on.
func (g *Group) Degree() int {
	return g.n
}

// OrbitOf returns the orbit of a in BFS discovery order.
func (g *Group) OrbitOf(a int) []int {
	return append([]int(nil), Orbit(g.gens, a).Points...)
}

// InSameOrbit reports whether some element maps a to b.
func (g *Group) InSameOrbit(a, b int) bool {
	if a == b {
		return true
	}

	return Orbit(g.gens, a).Contains(b)
}

// Orbits partitions 0..n-1 into orbits, each sorted, ordered by smallest point.
func (g *Group) Orbits() [][]int {
	done := make([]bool, g.n)
	var out [][]int
	for a := 0; a < g.n; a++ {
		if done[a] {
			continue
		}
		orbit := g.OrbitOf(a)
		for _, b := range orbit {
			done[b] = true
		}
		sort.Ints(orbit)
		out = append(out, orbit)
	}

	return out
}

func (g *Group) stabChain() []level {
	if !g.built {
		g.chain = buildChain(g.gens)
		g.built = true
	}

	return g.chain
}

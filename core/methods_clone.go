// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and structural equality.
// Determinism:
//   - Clone carries the color counter, so fresh ids on the clone continue the
//     source's sequence. The journal is never copied.

package core

import "github.com/bits-and-blooms/bitset"

// Clone returns a deep copy of g: adjacency, colors, color counter and union
// tags. The clone starts with journaling off.
//
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	n := g.Order()
	c := &Graph{
		adj:       make([][]int, n),
		rows:      make([]*bitset.BitSet, n),
		edges:     g.edges,
		colors:    g.Colors(),
		nextColor: g.nextColor,
		split:     g.split,
	}
	for v := 0; v < n; v++ {
		c.adj[v] = append([]int(nil), g.adj[v]...)
		if g.rows[v] != nil {
			c.rows[v] = g.rows[v].Clone()
		}
	}
	if g.side != nil {
		c.side = append([]Side(nil), g.side...)
	}

	return c
}

// Equal reports whether g and h have the same order, the same edge set and
// the same colors, vertex by vertex. It is labeled equality, not isomorphism.
//
// Complexity: O(n + m).
func (g *Graph) Equal(h *Graph) bool {
	if g.Order() != h.Order() || g.edges != h.edges {
		return false
	}
	for v := range g.adj {
		if g.colors[v] != h.colors[v] || len(g.adj[v]) != len(h.adj[v]) {
			return false
		}
		for i, w := range g.adj[v] {
			if h.adj[v][i] != w {
				return false
			}
		}
	}

	return true
}

// SameEdges reports whether g and h have identical labeled edge sets,
// ignoring colors.
func (g *Graph) SameEdges(h *Graph) bool {
	if g.Order() != h.Order() || g.edges != h.edges {
		return false
	}
	for v := range g.adj {
		if len(g.adj[v]) != len(h.adj[v]) {
			return false
		}
		for _, w := range g.adj[v] {
			if !h.adjacent(v, w) {
				return false
			}
		}
	}

	return true
}

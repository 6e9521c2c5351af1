// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge-level queries.
// Policy:
//   - Out-of-range endpoints, self-loops and parallel edges fail with
//     sentinels; nothing is dropped silently.

package core

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// AddEdge inserts the undirected edge {u,v}.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is not in 0..n-1.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if {u,v} already exists.
//
// Complexity: O(d) for the sorted insert into both neighbor lists.
func (g *Graph) AddEdge(u, v int) error {
	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return errors.Wrapf(ErrVertexOutOfRange, "edge (%d,%d) with n=%d", u, v, n)
	}
	if u == v {
		return errors.Wrapf(ErrLoopNotAllowed, "vertex %d", u)
	}
	if g.adjacent(u, v) {
		return errors.Wrapf(ErrMultiEdgeNotAllowed, "edge (%d,%d)", u, v)
	}

	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.setRowBit(u, v)
	g.setRowBit(v, u)
	g.edges++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
//
// Complexity: O(1) when either endpoint has a bitset row, otherwise a binary
// search in the shorter neighbor list.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}

	return g.adjacent(u, v)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Edges returns every edge once as Edge{U,V} with U<V, sorted by (U,V).
//
// Complexity: O(n + m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// CommonNeighbors returns |N(u) ∩ N(v)|, by bitset intersection when both
// endpoints have rows and by merging the sorted lists otherwise.
func (g *Graph) CommonNeighbors(u, v int) int {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0
	}
	if g.rows[u] != nil && g.rows[v] != nil {
		return int(g.rows[u].IntersectionCardinality(g.rows[v]))
	}
	a, b := g.adj[u], g.adj[v]
	common := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			common++
			i++
			j++
		}
	}

	return common
}

// denseRowRatio controls when a vertex gets a bitset row: once
// deg(v)*denseRowRatio >= n, so a row costs at most about one word per
// neighbor and total row memory stays O(n + m) words.
const denseRowRatio = 64

// adjacent is HasEdge without range checks.
func (g *Graph) adjacent(u, v int) bool {
	if g.rows[u] != nil {
		return g.rows[u].Test(uint(v))
	}
	if g.rows[v] != nil {
		return g.rows[v].Test(uint(u))
	}
	if len(g.adj[v]) < len(g.adj[u]) {
		u, v = v, u
	}
	s := g.adj[u]
	i := sort.SearchInts(s, v)

	return i < len(s) && s[i] == v
}

// setRowBit records the neighbor w in v's row, building the row the first
// time v qualifies as dense.
func (g *Graph) setRowBit(v, w int) {
	if g.rows[v] != nil {
		g.rows[v].Set(uint(w))
		return
	}
	g.indexRow(v)
}

// indexRow builds v's bitset row from its neighbor list if v is dense.
func (g *Graph) indexRow(v int) {
	if g.rows[v] != nil || len(g.adj[v])*denseRowRatio < len(g.adj) {
		return
	}
	row := bitset.New(uint(len(g.adj)))
	for _, w := range g.adj[v] {
		row.Set(uint(w))
	}
	g.rows[v] = row
}

// insertSorted inserts x into the ascending slice s.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

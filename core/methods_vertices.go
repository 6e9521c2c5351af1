// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries (order, degree, neighbors).
// Determinism:
//   - Neighbors are kept sorted ascending; DegreeSequence is sorted descending.

package core

import "sort"

// AddVertex appends a new isolated vertex colored 0 and returns its index.
// The new vertex has no bitset row; existing rows are not resized since
// BitSet grows on demand and Test reports false past the end.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	v := len(g.adj)
	g.adj = append(g.adj, nil)
	g.rows = append(g.rows, nil)
	g.colors = append(g.colors, 0)
	if g.side != nil {
		// a vertex appended to a union belongs to neither operand
		g.side = append(g.side, SideNone)
	}

	return v
}

// Order returns the number of vertices n.
func (g *Graph) Order() int {
	return len(g.adj)
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// Neighbors returns the sorted neighbor indices of v. The returned slice is
// owned by the graph and must not be modified. Out-of-range v yields nil.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of neighbors of v, or 0 for an out-of-range v.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// DegreeSequence returns all vertex degrees sorted in non-increasing order.
// Equal degree sequences are a necessary condition for isomorphism.
//
// Complexity: O(n log n).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, len(g.adj))
	for v := range g.adj {
		out[v] = len(g.adj[v])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

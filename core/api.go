// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, read-only summary facade over a Graph.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a read-only snapshot of a graph's sizes and coloring.
type GraphStats struct {
	Order     int  // number of vertices
	EdgeCount int  // number of edges
	Colors    int  // number of distinct colors in use
	MinDegree int  // 0 for the empty graph
	MaxDegree int  // 0 for the empty graph
	Union     bool // produced by Union
	SplitAt   int  // |A| for unions, -1 otherwise
}

// Stats produces a snapshot of g's sizes, degree range and color count.
//
// Complexity: O(n).
func (g *Graph) Stats() *GraphStats {
	s := GraphStats{
		Order:     g.Order(),
		EdgeCount: g.edges,
		Colors:    g.ColorCount(),
		Union:     g.IsUnion(),
		SplitAt:   g.SplitPoint(),
	}
	for v := range g.adj {
		d := len(g.adj[v])
		if v == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return &s
}

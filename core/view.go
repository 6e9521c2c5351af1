// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (induced subgraphs, relabeled copies).
// Determinism:
//   - InducedSubgraph re-indexes vertices contiguously in the order given.
//   - Relabel moves vertex i to mapping[i]; colors travel with their vertex.

package core

import "github.com/pkg/errors"

// InducedSubgraph returns the subgraph induced by vs. Vertex vs[i] becomes
// vertex i of the result; its color is preserved. The input is not mutated.
//
// Errors:
//   - ErrVertexOutOfRange for an index outside 0..n-1.
//   - ErrDuplicateVertex if vs lists a vertex twice.
//
// Complexity: O(n + Σ deg(vs[i])).
func (g *Graph) InducedSubgraph(vs []int) (*Graph, error) {
	index := make([]int, g.Order())
	for i := range index {
		index[i] = -1
	}
	for i, v := range vs {
		if !g.HasVertex(v) {
			return nil, errors.Wrapf(ErrVertexOutOfRange, "vertex %d", v)
		}
		if index[v] >= 0 {
			return nil, errors.Wrapf(ErrDuplicateVertex, "vertex %d", v)
		}
		index[v] = i
	}

	sub := NewGraph(len(vs))
	for i, v := range vs {
		sub.colors[i] = g.colors[v]
		for _, w := range g.adj[v] {
			j := index[w]
			// each kept edge is visited from both ends; insert it once
			if j > i {
				if err := sub.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	sub.syncColorCounter()

	return sub, nil
}

// Relabel returns an isomorphic copy of g in which vertex i becomes
// mapping[i]. Colors move with their vertices.
//
// Errors:
//   - ErrBadMapping if mapping is not a permutation of 0..n-1.
//
// Complexity: O(n + m log d).
func (g *Graph) Relabel(mapping []int) (*Graph, error) {
	n := g.Order()
	if len(mapping) != n {
		return nil, errors.Wrapf(ErrBadMapping, "mapping has %d entries for %d vertices", len(mapping), n)
	}
	seen := make([]bool, n)
	for i, t := range mapping {
		if t < 0 || t >= n || seen[t] {
			return nil, errors.Wrapf(ErrBadMapping, "entry %d -> %d", i, t)
		}
		seen[t] = true
	}

	out := NewGraph(n)
	for v := 0; v < n; v++ {
		out.colors[mapping[v]] = g.colors[v]
	}
	for _, e := range g.Edges() {
		if err := out.AddEdge(mapping[e.U], mapping[e.V]); err != nil {
			return nil, err
		}
	}
	out.nextColor = g.nextColor

	return out, nil
}

// IsAutomorphism reports whether mapping (vertex i ↦ mapping[i]) preserves
// both adjacency and colors of g. Invalid mappings yield false.
//
// Complexity: O(n + m).
func (g *Graph) IsAutomorphism(mapping []int) bool {
	h, err := g.Relabel(mapping)
	if err != nil {
		return false
	}

	return h.Equal(g)
}

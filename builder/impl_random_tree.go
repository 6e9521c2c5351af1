// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_random_tree.go - RandomTree(n), a uniformly random labeled tree.
//
// Contract:
//   - n ≥ MinTreeNodes (else ErrTooFewVertices); requires an RNG for n ≥ 3
//     (ErrNeedRandSource). Trees with n ≤ 2 are unique.
//   - Draws a Prüfer sequence of length n-2 and decodes it with the
//     linear-time pointer scan, so every labeled tree is equally likely.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/isograph/core"

// RandomTree returns a Constructor that appends a random tree on n vertices.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomTree, n, MinTreeNodes); err != nil {
			return err
		}
		var seq []int
		if n > 2 {
			if err := requireRand(MethodRandomTree, cfg); err != nil {
				return err
			}
			seq = make([]int, n-2)
			for i := range seq {
				seq[i] = cfg.rng.Intn(n)
			}
		}
		b, err := allocate(MethodRandomTree, g, cfg, n)
		if err != nil {
			return err
		}
		for _, e := range pruferEdges(n, seq) {
			if err = b.connect(MethodRandomTree, g, e.U, e.V); err != nil {
				return err
			}
		}

		return nil
	}
}

// pruferEdges decodes a Prüfer sequence over 0..n-1 into the n-1 tree edges.
func pruferEdges(n int, seq []int) []chord {
	if n < 2 {
		return nil
	}
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, x := range seq {
		degree[x]++
	}

	edges := make([]chord, 0, n-1)
	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, x := range seq {
		edges = append(edges, chord{U: leaf, V: x})
		degree[x]--
		if degree[x] == 1 && x < ptr {
			leaf = x
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	// the last leaf joins n-1, which always survives to the end
	edges = append(edges, chord{U: leaf, V: n - 1})

	return edges
}

// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2), the graph K_{n1,n2}.
//
// Contract:
//   - n1, n2 ≥ MinPartition (else ErrTooFewVertices).
//   - Left side is local 0..n1-1, right side n1..n1+n2-1.
//   - Edges (i, n1+j) in lexicographic (i, j) order; no intra-side edges.
//
// Complexity: O(n1·n2).

package builder

import "github.com/katalvlaran/isograph/core"

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		b, err := allocate(MethodCompleteBipartite, g, cfg, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = b.connect(MethodCompleteBipartite, g, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_complete.go - Complete(n), the complete graph K_n.
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Pairs (i, j), i < j, in lexicographic order.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/isograph/core"

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		b, err := allocate(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		return b.connectClique(MethodComplete, g, 0, n)
	}
}

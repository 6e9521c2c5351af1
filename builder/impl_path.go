// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_path.go - Path(n), the simple path P_n on n vertices.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices); P_1 is a single vertex.
//   - Edges i—(i+1) for i in 0..n-2.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/isograph/core"

// Path returns a Constructor that appends P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		b, err := allocate(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = b.connect(MethodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

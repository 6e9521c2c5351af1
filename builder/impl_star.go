// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_star.go - Star(n), the star K_{1,n-1}.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Local vertex 0 is the center; leaves 1..n-1 attach in ascending order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/isograph/core"

// Star returns a Constructor that appends a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		b, err := allocate(MethodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = b.connect(MethodStar, g, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

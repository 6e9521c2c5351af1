// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_cycle.go - Cycle(n), the simple cycle C_n.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Edges i—(i+1) mod n in ascending i.
//
// Complexity: O(n) time, O(n) space for the vertex block.

package builder

import "github.com/katalvlaran/isograph/core"

// Cycle returns a Constructor that appends C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		b, err := allocate(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = b.connect(MethodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

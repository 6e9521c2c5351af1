// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_wheel.go - Wheel(n), the wheel W_n = C_{n-1} + hub.
//
// Contract:
//   - n ≥ MinWheelNodes (else ErrTooFewVertices).
//   - Rim is local 0..n-2 in cycle order; the hub is local n-1.
//   - Rim edges first, then spokes in ascending rim index.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/isograph/core"

// Wheel returns a Constructor that appends W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		b, err := allocate(MethodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		rim, hub := n-1, n-1
		for i := 0; i < rim; i++ {
			if err = b.connect(MethodWheel, g, i, (i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err = b.connect(MethodWheel, g, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) and Petersen().
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else fails with ErrOptionViolation.
//   - Shell vertices are local 0..V-1; shell edges follow variants_platonic.go.
//   - withCenter appends a hub (local V) joined to every shell vertex in
//     ascending order.
//
// Complexity: O(V+E), V ≤ 21, E ≤ 50.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// PlatonicSolid returns a Constructor that appends the chosen solid's
// skeleton, optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown solid %s", MethodPlatonicSolid, name)
		}
		total := n
		if withCenter {
			total++
		}
		b, err := allocate(MethodPlatonicSolid, g, cfg, total)
		if err != nil {
			return err
		}
		if err = b.connectAll(MethodPlatonicSolid, g, platonicEdgeSets[name]); err != nil {
			return err
		}
		if withCenter {
			for i := 0; i < n; i++ {
				if err = b.connect(MethodPlatonicSolid, g, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Petersen returns a Constructor that appends the Petersen graph
// (10 vertices, 15 edges, 3-regular, |Aut| = 120).
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		b, err := allocate(MethodPetersen, g, cfg, 10)
		if err != nil {
			return err
		}

		return b.connectAll(MethodPetersen, g, petersenEdges)
	}
}

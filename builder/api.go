// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Starts from an empty graph,
//     resolves cfg, runs cons in order.
//   - Every constructor appends its own vertices at the current end of the
//     graph, so composing constructors yields a disjoint union.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// Constructor appends one deterministic component to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Number their vertices from g.Order() upward (base offset).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...),
//     test with errors.Is.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixed fixtures in tests and examples; it panics
// on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                 C_n, n ≥ 3.                          impl_cycle.go
// Path(n)                  P_n, n ≥ 1.                          impl_path.go
// Star(n)                  K_{1,n-1}, center first, n ≥ 2.      impl_star.go
// Wheel(n)                 C_{n-1} plus hub, n ≥ 4.             impl_wheel.go
// Complete(n)              K_n, n ≥ 1.                          impl_complete.go
// CompleteBipartite(a, b)  K_{a,b}, a, b ≥ 1.                   impl_bipartite.go
// Grid(rows, cols)         4-neighborhood lattice.              impl_grid.go
// PlatonicSolid(name, c)   the five solids, optional hub.       impl_platonic.go
// Petersen()               the Petersen graph.                  impl_platonic.go
// RandomSparse(n, p)       G(n, p); needs an RNG.               impl_random_sparse.go
// RandomRegular(n, d)      uniform-ish d-regular; needs an RNG. impl_random_regular.go
// RandomTree(n)            uniform labeled tree; needs an RNG.  impl_random_tree.go

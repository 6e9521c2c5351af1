// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (ErrNeedRandSource); p ∈ {0, 1} is
//     deterministic and needs none.
//   - Pairs (i, j), i < j, are visited in lexicographic order and kept when
//     rng.Float64() < p, so a fixed seed reproduces the same graph.
//
// Complexity: O(n²) pair checks.

package builder

import "github.com/katalvlaran/isograph/core"

// RandomSparse returns a Constructor that appends a G(n, p) sample.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinPathNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if p > MinProbability && p < MaxProbability {
			if err := requireRand(MethodRandomSparse, cfg); err != nil {
				return err
			}
		}
		b, err := allocate(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = b.connect(MethodRandomSparse, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

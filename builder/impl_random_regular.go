// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_random_regular.go - RandomRegular(n, d) via stub matching.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - Requires an RNG (ErrNeedRandSource).
//   - Each vertex contributes d stubs; stubs are shuffled and paired
//     consecutively. A pairing with a loop or a repeated pair is rejected and
//     reshuffled, up to maxStubMatchingAttempts times (ErrConstructFailed).
//     The graph is touched only once a valid pairing is found.
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// maxStubMatchingAttempts bounds reshuffles. A random pairing is simple with
// probability about exp(-(d²-1)/4), so small d succeeds within a few dozen.
const maxStubMatchingAttempts = 500

// RandomRegular returns a Constructor that appends a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, n, MinPathNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return errors.Wrapf(ErrTooFewVertices, "%s: degree must be in [0,%d), got %d", MethodRandomRegular, n, d)
		}
		if (n*d)%2 != 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n*d must be even (n=%d, d=%d)", MethodRandomRegular, n, d)
		}
		if err := requireRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			b, err := allocate(MethodRandomRegular, g, cfg, n)
			if err != nil {
				return err
			}
			for i := 0; i < len(stubs); i += 2 {
				if err = b.connect(MethodRandomRegular, g, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return errors.Wrapf(ErrConstructFailed, "%s: no simple pairing after %d attempts",
			MethodRandomRegular, maxStubMatchingAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs contain neither a
// loop nor a repeated pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}

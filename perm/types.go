// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Permutation type and sentinel errors.
// Policy:
//   - A Permutation is immutable once built; every operation returns a new value.
//   - Points beyond a permutation's degree are fixed, so permutations of
//     different degrees compose and compare as if padded with fixed points.

package perm

import "github.com/pkg/errors"

// Sentinel errors for permutation construction.
var (
	// ErrPointOutOfRange indicates a point outside 0..n-1.
	ErrPointOutOfRange = errors.New("perm: point out of range")

	// ErrRepeatedPoint indicates a point listed twice in cycles or an image.
	ErrRepeatedPoint = errors.New("perm: repeated point")

	// ErrInconsistentPairs indicates two pairs with the same source or target.
	ErrInconsistentPairs = errors.New("perm: inconsistent pairs")

	// ErrOpenChain indicates pairs whose head-to-tail chain does not close.
	ErrOpenChain = errors.New("perm: open chain")
)

// Permutation is a bijection on 0..n-1, kept both as normalized disjoint
// cycles and as a dense image.
//
// Normal form: only cycles of length ≥ 2 are stored, each starts at its
// smallest point, and cycles are ordered by their first point. The identity
// has no cycles.
//
// Composition convention: Compose(f, g) applies g first, (f∘g)(i) = f(g(i)).
type Permutation struct {
	img    []int
	cycles [][]int
}

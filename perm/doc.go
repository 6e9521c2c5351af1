// Package perm implements permutations of 0..n-1 in cycle notation.
//
// A Permutation keeps its normalized disjoint cycles (each starting at its
// smallest point, ordered by first point) together with a dense image for
// O(1) Apply. Values are immutable; Compose and Inverse return new ones.
//
// Convention
//
//	Compose(f, g) applies g first: (f∘g)(i) = f(g(i)).
//
// Construction
//
//	Identity(n)          the identity on n points
//	New(n, cycles)       from disjoint cycles
//	FromImage(img)       from a dense image i ↦ img[i]
//	FromPairs(n, pairs)  from (a ↦ b) pairs chained head to tail
//
// FromPairs is how the search turns a discrete pair of colorings into an
// automorphism: matching colors give pairs (a, b) and the chains close into
// cycles.
//
// Errors
//
//	ErrPointOutOfRange    point outside 0..n-1
//	ErrRepeatedPoint      point listed twice (New, FromImage)
//	ErrInconsistentPairs  FromPairs source or target used twice
//	ErrOpenChain          FromPairs chain does not close
package perm

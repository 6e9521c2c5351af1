// SPDX-License-Identifier: MIT
//
// File: perm.go
// Role: Constructors and algebra for Permutation.
// Determinism:
//   - Cycles are always rebuilt from the image, so equal permutations have
//     identical cycle lists, strings and keys.

package perm

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Identity returns the identity on n points.
func Identity(n int) Permutation {
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}

	return Permutation{img: img}
}

// New builds a permutation on n points from disjoint cycles. Cycles of
// length 0 or 1 are accepted and ignored.
//
// Errors: ErrPointOutOfRange, ErrRepeatedPoint.
//
// Complexity: O(n + Σ|cycle|).
func New(n int, cycles [][]int) (Permutation, error) {
	p := Identity(n)
	seen := make([]bool, n)
	for _, cyc := range cycles {
		for i, a := range cyc {
			if a < 0 || a >= n {
				return Permutation{}, errors.Wrapf(ErrPointOutOfRange, "point %d with n=%d", a, n)
			}
			if seen[a] {
				return Permutation{}, errors.Wrapf(ErrRepeatedPoint, "point %d", a)
			}
			seen[a] = true
			p.img[a] = cyc[(i+1)%len(cyc)]
		}
	}
	p.cycles = cyclesOf(p.img)

	return p, nil
}

// FromImage builds the permutation i ↦ img[i]. The slice is copied.
//
// Errors: ErrPointOutOfRange, ErrRepeatedPoint.
func FromImage(img []int) (Permutation, error) {
	n := len(img)
	seen := make([]bool, n)
	for i, t := range img {
		if t < 0 || t >= n {
			return Permutation{}, errors.Wrapf(ErrPointOutOfRange, "image %d -> %d with n=%d", i, t, n)
		}
		if seen[t] {
			return Permutation{}, errors.Wrapf(ErrRepeatedPoint, "image %d -> %d", i, t)
		}
		seen[t] = true
	}
	p := Permutation{img: append([]int(nil), img...)}
	p.cycles = cyclesOf(p.img)

	return p, nil
}

// FromPairs builds a permutation on n points from mapping pairs (a, b)
// meaning a ↦ b. Pairs are chained head to tail into cycles: (a,b) and
// (b,c) join into a ↦ b ↦ c. Pairs (a,a) are fixed points and contribute
// nothing. Points not mentioned are fixed.
//
// Errors:
//   - ErrPointOutOfRange for a point outside 0..n-1.
//   - ErrInconsistentPairs if a point appears twice as a source or twice as a target.
//   - ErrOpenChain if some chain does not return to its start.
//
// Complexity: O(n + len(pairs)).
func FromPairs(n int, pairs [][2]int) (Permutation, error) {
	next := make([]int, n)
	prev := make([]int, n)
	for i := range next {
		next[i], prev[i] = -1, -1
	}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return Permutation{}, errors.Wrapf(ErrPointOutOfRange, "pair (%d,%d) with n=%d", a, b, n)
		}
		if next[a] >= 0 && next[a] != b {
			return Permutation{}, errors.Wrapf(ErrInconsistentPairs, "%d maps to both %d and %d", a, next[a], b)
		}
		if prev[b] >= 0 && prev[b] != a {
			return Permutation{}, errors.Wrapf(ErrInconsistentPairs, "%d is the image of both %d and %d", b, prev[b], a)
		}
		next[a], prev[b] = b, a
	}

	p := Identity(n)
	for a := 0; a < n; a++ {
		if next[a] < 0 {
			continue
		}
		// every head must also be a tail, otherwise the chain through a is open
		if prev[a] < 0 {
			return Permutation{}, errors.Wrapf(ErrOpenChain, "chain starting at %d", a)
		}
		p.img[a] = next[a]
	}
	for b := 0; b < n; b++ {
		if prev[b] >= 0 && next[b] < 0 {
			return Permutation{}, errors.Wrapf(ErrOpenChain, "chain ending at %d", b)
		}
	}
	p.cycles = cyclesOf(p.img)

	return p, nil
}

// cyclesOf extracts the normalized non-trivial cycles of img.
func cyclesOf(img []int) [][]int {
	var out [][]int
	seen := make([]bool, len(img))
	for s := range img {
		if seen[s] || img[s] == s {
			continue
		}
		// s is the smallest unseen point, hence the smallest of its cycle
		var cyc []int
		for x := s; !seen[x]; x = img[x] {
			seen[x] = true
			cyc = append(cyc, x)
		}
		out = append(out, cyc)
	}

	return out
}

// Degree returns the number of points the permutation acts on.
func (p Permutation) Degree() int {
	return len(p.img)
}

// Apply returns the image of i. Points outside the degree are fixed.
func (p Permutation) Apply(i int) int {
	if i < 0 || i >= len(p.img) {
		return i
	}

	return p.img[i]
}

// Image returns a copy of the dense image.
func (p Permutation) Image() []int {
	return append([]int(nil), p.img...)
}

// Cycles returns a copy of the normalized non-trivial cycles.
func (p Permutation) Cycles() [][]int {
	out := make([][]int, len(p.cycles))
	for i, c := range p.cycles {
		out[i] = append([]int(nil), c...)
	}

	return out
}

// Support returns the moved points in ascending order.
func (p Permutation) Support() []int {
	var out []int
	for _, c := range p.cycles {
		out = append(out, c...)
	}
	sort.Ints(out)

	return out
}

// MinMoved returns the smallest moved point, or -1 for the identity.
func (p Permutation) MinMoved() int {
	if len(p.cycles) == 0 {
		return -1
	}

	return p.cycles[0][0]
}

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	return len(p.cycles) == 0
}

// Equal reports whether p and q agree on every point.
func (p Permutation) Equal(q Permutation) bool {
	n := len(p.img)
	if len(q.img) > n {
		n = len(q.img)
	}
	for i := 0; i < n; i++ {
		if p.Apply(i) != q.Apply(i) {
			return false
		}
	}

	return true
}

// Compose returns f∘g, the permutation i ↦ f(g(i)). The degree is the
// larger of the two.
//
// Complexity: O(n).
func Compose(f, g Permutation) Permutation {
	n := len(f.img)
	if len(g.img) > n {
		n = len(g.img)
	}
	img := make([]int, n)
	for i := range img {
		img[i] = f.Apply(g.Apply(i))
	}

	return Permutation{img: img, cycles: cyclesOf(img)}
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	img := make([]int, len(p.img))
	for i, t := range p.img {
		img[t] = i
	}

	return Permutation{img: img, cycles: cyclesOf(img)}
}

// String renders the cycle notation, "()" for the identity and
// "(0 1 2)(3 4)" otherwise.
func (p Permutation) String() string {
	if len(p.cycles) == 0 {
		return "()"
	}
	var sb strings.Builder
	for _, c := range p.cycles {
		sb.WriteByte('(')
		for i, x := range c {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte(')')
	}

	return sb.String()
}

// Key returns a map key that is equal for equal permutations regardless of degree.
func (p Permutation) Key() string {
	return p.String()
}

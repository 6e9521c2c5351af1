// SPDX-License-Identifier: MIT
//
// File: schreier.go
// Role: Orbit/transversal computation, Schreier generators, the Sims
//       filter, and the stabilizer chain behind membership and order.
// Determinism:
//   - Orbits are explored breadth-first with generators in list order.
//   - The base point at every level is the smallest point moved by that
//     level's generators, so the chain depends only on the generator list.

package group

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/perm"
)

// degreeOf is the largest generator degree, at least minN.
func degreeOf(gens []perm.Permutation, minN int) int {
	n := minN
	for _, g := range gens {
		if g.Degree() > n {
			n = g.Degree()
		}
	}

	return n
}

// Orbit computes the orbit of alpha under gens and a transversal:
// u_α = id and u_{h(β)} = h∘u_β for the first generator h that reaches h(β).
//
// Complexity: O(|orbit| · |gens| · n).
func Orbit(gens []perm.Permutation, alpha int) *Transversal {
	n := degreeOf(gens, alpha+1)
	t := &Transversal{
		Alpha:  alpha,
		Points: []int{alpha},
		seen:   bitset.New(uint(n)),
		reps:   map[int]perm.Permutation{alpha: perm.Identity(n)},
	}
	t.seen.Set(uint(alpha))
	for i := 0; i < len(t.Points); i++ {
		beta := t.Points[i]
		for _, h := range gens {
			gamma := h.Apply(beta)
			if t.seen.Test(uint(gamma)) {
				continue
			}
			t.seen.Set(uint(gamma))
			t.reps[gamma] = perm.Compose(h, t.reps[beta])
			t.Points = append(t.Points, gamma)
		}
	}

	return t
}

// Stabilizer returns generators of the stabilizer of alpha in ⟨gens⟩.
// Schreier's lemma gives t_{h(β)}⁻¹ ∘ h ∘ u_β for every orbit point β and
// generator h; identities are dropped and the rest pass through a Sims
// filter, which keeps at most n(n-1)/2 of them.
func Stabilizer(gens []perm.Permutation, alpha int) []perm.Permutation {
	return schreierGens(gens, Orbit(gens, alpha))
}

func schreierGens(gens []perm.Permutation, t *Transversal) []perm.Permutation {
	f := newSimsFilter()
	for _, beta := range t.Points {
		u := t.reps[beta]
		for _, h := range gens {
			hu := perm.Compose(h, u)
			s := perm.Compose(t.reps[h.Apply(beta)].Inverse(), hu)
			f.add(s)
		}
	}

	return f.gens
}

// simsFilter keeps one permutation per (first moved point i, image of i).
// A colliding element h is replaced by t⁻¹∘h, which fixes everything up to
// and including i, so the sift always terminates.
type simsFilter struct {
	table map[[2]int]perm.Permutation
	gens  []perm.Permutation
}

func newSimsFilter() *simsFilter {
	return &simsFilter{table: make(map[[2]int]perm.Permutation)}
}

func (f *simsFilter) add(h perm.Permutation) {
	for !h.IsIdentity() {
		i := h.MinMoved()
		key := [2]int{i, h.Apply(i)}
		t, ok := f.table[key]
		if !ok {
			f.table[key] = h
			f.gens = append(f.gens, h)
			return
		}
		h = perm.Compose(t.Inverse(), h)
	}
}

// baseOf returns the smallest point moved by any generator, or -1.
func baseOf(gens []perm.Permutation) int {
	alpha := -1
	for _, g := range gens {
		if m := g.MinMoved(); m >= 0 && (alpha < 0 || m < alpha) {
			alpha = m
		}
	}

	return alpha
}

// buildChain computes the stabilizer chain G = G_0 ≥ G_1 ≥ ... ≥ 1.
func buildChain(gens []perm.Permutation) []level {
	var chain []level
	for {
		alpha := baseOf(gens)
		if alpha < 0 {
			return chain
		}
		t := Orbit(gens, alpha)
		chain = append(chain, level{orbit: t, gens: gens})
		gens = schreierGens(gens, t)
	}
}

// sift strips f through the chain and reports whether it reaches the identity.
func sift(chain []level, f perm.Permutation) bool {
	for _, lv := range chain {
		if f.IsIdentity() {
			return true
		}
		u, ok := lv.orbit.Rep(f.Apply(lv.orbit.Alpha))
		if !ok {
			return false
		}
		f = perm.Compose(u.Inverse(), f)
	}

	return f.IsIdentity()
}

// orderOf is the product of the chain's orbit lengths.
func orderOf(chain []level) *big.Int {
	order := big.NewInt(1)
	for _, lv := range chain {
		order.Mul(order, big.NewInt(int64(lv.orbit.Size())))
	}

	return order
}

// Member reports whether f lies in ⟨gens⟩. With no generators only the
// identity is a member.
func Member(gens []perm.Permutation, f perm.Permutation) bool {
	return sift(buildChain(gens), f)
}

// Order returns |⟨gens⟩|; 1 for an empty generating set.
func Order(gens []perm.Permutation) *big.Int {
	chain := buildChain(gens)
	klog.V(4).Infof("group: %d generators, chain of %d levels", len(gens), len(chain))

	return orderOf(chain)
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Transversal (orbit plus coset representatives) and Group declarations.

package group

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/isograph/perm"
)

// Transversal is the orbit of a base point α under a generating set,
// together with one representative u_β per orbit point β satisfying
// u_β(α) = β.
type Transversal struct {
	// Alpha is the base point.
	Alpha int
	// Points lists the orbit in discovery (BFS) order; Points[0] == Alpha.
	Points []int

	seen *bitset.BitSet
	reps map[int]perm.Permutation
}

// Size returns the orbit length.
func (t *Transversal) Size() int {
	return len(t.Points)
}

// Contains reports whether b lies in the orbit of Alpha.
func (t *Transversal) Contains(b int) bool {
	return b >= 0 && t.seen.Test(uint(b))
}

// Rep returns u_b, the representative mapping Alpha to b.
func (t *Transversal) Rep(b int) (perm.Permutation, bool) {
	if !t.Contains(b) {
		return perm.Permutation{}, false
	}

	return t.reps[b], true
}

// level is one stabilizer-chain step: the base point's transversal under
// the generators of the current stabilizer.
type level struct {
	orbit *Transversal
	gens  []perm.Permutation
}

// Group is a permutation group given by an ordered generating set. The
// stabilizer chain is built lazily for Contains/Order and dropped on Add.
//
// A Group is not safe for concurrent use.
type Group struct {
	n     int
	gens  []perm.Permutation
	chain []level
	built bool
}

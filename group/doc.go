// Package group decides membership in, and computes the order of, a
// permutation group given by generators.
//
// How
//
//	The engine is an orbit–stabilizer chain built with Schreier's lemma:
//
//	  1. α := smallest point moved by the generators.
//	  2. Orbit(gens, α) explores α's orbit breadth-first, recording a
//	     representative u_β with u_β(α) = β for every orbit point.
//	  3. Schreier generators t_{h(β)}⁻¹ ∘ h ∘ u_β generate the stabilizer
//	     of α; identities are dropped and a Sims filter keeps at most one
//	     element per (first moved point, its image), so at most n(n-1)/2.
//	  4. Repeat on the stabilizer until no generator is left.
//
//	|G| is the product of the orbit lengths. f ∈ G iff sifting f through
//	the chain (f := u_{f(α)}⁻¹ ∘ f, level by level) ends at the identity.
//
// Empty generating sets are well-defined: only the identity is a member
// and the order is 1.
//
// Usage
//
//	g := group.New(n, gens...)
//	g.Contains(p)      // membership
//	g.Order()          // *big.Int
//	g.Orbits()         // orbit partition of 0..n-1
//
// Composition follows perm: (f∘g)(i) = f(g(i)).
package group

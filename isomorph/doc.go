// Package isomorph decides graph isomorphism and computes automorphism
// groups by individualization-refinement.
//
// Both problems run one search on the disjoint union U = X ⊎ Y (for
// automorphisms, Y = X). At each node the coloring of U is refined to the
// coarsest equitable partition (package refine) and classified:
//
//   - unbalanced: some color has different counts on the two sides; no
//     isomorphism extends the current individualizations.
//   - discrete: every color holds exactly one vertex per side; pairing the
//     two vertices of each color is an isomorphism.
//   - branch: pick the largest class, ties to the smallest color id, take
//     its smallest X-vertex a and try every Y-vertex w of the class, giving
//     a and w one fresh color and recursing.
//
// Colors are restored exactly on the way back through the core journal
// (Mark/Rollback), so no per-node copies are made.
//
// Counting and deciding:
//
//	n, err := isomorph.CountIsomorphisms(x, y)  // every leaf counts once
//	ok, err := isomorph.IsIsomorphic(x, y)      // stops at the first leaf
//
// IsIsomorphic answers a pair of uniformly colored trees with the AHU fast
// path (package ahu) unless WithoutTreeFastPath is given.
//
// Automorphisms:
//
//	grp, err := isomorph.Automorphisms(g)
//	grp.Order() // |Aut(g)| as *big.Int
//
// The search keeps a "trivial" flag: true while every individualization so
// far mapped a vertex of X to its own copy in Y. Trivial leaves are the
// identity and are skipped. A non-trivial leaf yields a permutation that is
// added to the group (package group) unless it is already a member. Two
// prunings keep the number of generators at most n-1 and the tree small:
//
//   - ancestor jump: once a non-trivial subtree produced an automorphism,
//     its remaining siblings are abandoned up to the nearest trivial
//     ancestor, since that coset is now covered.
//   - orbit pruning: at a trivial node the twin branch runs first, and any
//     later candidate already in the orbit of a under the generators found
//     so far is skipped.
//
// Vertex colors are part of the structure: isomorphisms and automorphisms
// must preserve them. WithDegreeSeed replaces the input colors by degrees.
package isomorph

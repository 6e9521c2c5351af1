// Package ahu decides isomorphism of trees in near-linear time with the
// Aho–Hopcroft–Ullman level labeling.
//
// Rooted compares two rooted trees. Both are hung from their roots with a
// BFS; levels are then processed from the deepest to the root. Every leaf
// gets LeafCode (0). An internal vertex's raw label is the sorted multiset
// of its children's codes, and the raw labels of one level of BOTH trees
// are re-encoded jointly through a single dictionary (a red-black tree over
// lexicographically ordered []int keys), assigning 1, 2, ... in first-seen
// order, X before Y. The sorted code lists of the two trees must agree at
// every level; the first level where they differ ends the comparison.
//
// Isomorphic handles unrooted trees by rooting each at its center
// (bfs.FindCenter). Trees with different center counts are not isomorphic;
// with two centers, both centers of X are tried against the first center
// of Y.
//
//	ok, err := ahu.Isomorphic(x, y)
//
// Errors: ErrGraphNil, ErrNotTree, ErrRootOutOfRange.
package ahu

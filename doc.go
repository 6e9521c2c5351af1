// Package isograph is a toolkit for graph isomorphism and automorphism
// groups built on color refinement and individualization-refinement search.
//
// Everything is organized in subpackages:
//
//	core/       the Graph store: undirected simple graphs on 0..n-1 with
//	            one integer color per vertex, disjoint union/split and an
//	            undo journal for colors
//	bfs/        breadth-first traversal, components, tree tests, centers
//	refine/     color refinement (1-WL) to the coarsest equitable partition
//	perm/       permutations in normalized cycle form
//	group/      Schreier–Sims: orbits, stabilizers, membership and order
//	isomorph/   counting isomorphisms, deciding isomorphism, automorphism
//	            generators
//	ahu/        Aho–Hopcroft–Ullman labeling, the fast path for trees
//	builder/    deterministic graph families used as fixtures
//	graphio/    the graph list text format and Graphviz DOT export
//	cmd/        the isograph command-line driver
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g, _ := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	grp, _ := isomorph.Automorphisms(g)
//	grp.Order() // 8, the symmetries of a square
//
// Vertex colors are part of the structure: isomorphisms and automorphisms
// must preserve them.
//
//	go get github.com/katalvlaran/isograph
package isograph

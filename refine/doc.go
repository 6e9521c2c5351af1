// Package refine implements color refinement (the 1-dimensional
// Weisfeiler–Leman algorithm) over a core.Graph.
//
// What
//
//	Refine replaces the current coloring of a graph with the coarsest
//	equitable coloring that refines it: afterwards, any two vertices of the
//	same color have the same number of neighbors of every color.
//	The partition only ever gets finer.
//
// How
//
//	A worklist of splitter classes (Hopcroft style) is seeded with every
//	initial class, smallest first. Popping a splitter S counts for every
//	vertex its neighbors inside S; each touched class is bucketed by that
//	count. The largest bucket keeps the class color, the remaining buckets
//	receive fresh ids from g.NewColor() and are queued. Refinement stops
//	when the worklist is empty.
//
// Comparing two graphs
//
//	Color ids mean nothing across graphs. To compare the stable colorings
//	of X and Y, refine their disjoint union (core.Union) and compare the
//	per-color counts of the two halves.
//
// Options
//
//   - WithDegreeSeed():  recolor by degree first.
//   - WithOnSplit(fn):   diagnostics hook called for every split.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  for a nil OnSplit hook.
//
// Complexity: O((n + m) log n) for the splitter work.
package refine

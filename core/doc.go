// Package core provides the Graph Store used by every isograph algorithm:
// a finite, undirected, simple graph on the vertex indices 0..n-1 with one
// integer color per vertex.
//
// Storage
//
//   - Sorted adjacency lists for iteration (Neighbors, Degree, Edges).
//   - An adjacency bitset row (github.com/bits-and-blooms/bitset) for every
//     vertex whose degree is at least n/64, giving O(1) HasEdge and fast
//     CommonNeighbors there. Sparser vertices answer HasEdge by binary
//     search, so row memory stays linear in n + m.
//   - A per-vertex color slice and a single color-id counter (NewColor).
//
// Colors
//
// Colors are meaningful only inside one Graph instance. To compare the
// colorings of two graphs, build their disjoint union first:
//
//	u, _ := core.Union(x, y) // x keeps 0..|x|-1, y is shifted by |x|
//	// ... refine u ...
//	a, b, _ := u.Split()     // a, b carry the shared color ids
//
// Union and Split are paired. Split on an ordinary graph fails with
// ErrNotUnion, and Union of a union fails with ErrAlreadyUnion; both wrap
// ErrSequence.
//
// Undo journal
//
// Backtracking algorithms recolor vertices and must restore them exactly on
// the way back. Instead of copying the coloring per search node, the graph
// keeps a journal of (vertex, old color) records:
//
//	g.StartJournal()
//	m := g.Mark()
//	g.SetColor(v, g.NewColor())
//	// ... recurse ...
//	_ = g.Rollback(m) // v and every later write restored, counter rewound
//	g.StopJournal()
//
// Errors
//
//	ErrVertexOutOfRange    – index outside 0..n-1
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – duplicate edge
//	ErrDuplicateVertex     – repeated vertex in InducedSubgraph
//	ErrBadMapping          – Relabel mapping is not a bijection
//	ErrNotUnion            – Split of a non-union (wraps ErrSequence)
//	ErrAlreadyUnion        – Union of a union (wraps ErrSequence)
//	ErrJournalInactive     – Mark/Rollback without StartJournal
//
// A Graph is not safe for concurrent use; every algorithm in this module is
// single-threaded.
package core

// Package bfs provides breadth-first search over a core.Graph and the
// connectivity and tree queries built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a BFSResult with:
//   - Order: visit sequence
//   - Rank: position of each vertex in Order (-1 if unreached)
//   - Depth: distance in edges from the start (-1 if unreached)
//   - Parent: predecessor in the BFS tree (-1 for the start and unreached)
//   - Hooks at three stages (OnEnqueue, OnDequeue, OnVisit), neighbor
//     filtering, a MaxDepth limit and context cancellation.
//   - Components, IsConnected, IsTree (connected and |E| = n-1).
//   - FindCenter and Diameter for trees, via the classic double BFS.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted ascending and BFS enqueues them
//	in that order, so visit sequences, centers and components are fully
//	reproducible.
//
// Complexity (n = |V|, m = |E|)
//
//   - Time:   O(n + m) per BFS; FindCenter runs two.
//   - Memory: O(n).
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, _ := res.PathTo(7)
//
//	centers, err := bfs.FindCenter(tree) // ErrNotTree for non-trees
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNotTree              from FindCenter/Diameter on non-trees.
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

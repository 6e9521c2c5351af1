// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Side and GraphOption declarations, sentinel errors, NewGraph.
// Policy:
//   - Graphs are undirected and simple: loops and parallel edges are rejected.
//   - Vertices are dense indices 0..n-1; colors are plain ints owned by one instance.
//   - Structural errors fail loudly at construction time; nothing is silently dropped.

package core

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an endpoint or vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop u==v on a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateVertex indicates a vertex listed twice where a set was expected.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrBadMapping indicates a relabeling that is not a bijection on 0..n-1.
	ErrBadMapping = errors.New("core: mapping is not a bijection")

	// ErrSequence is the umbrella for union/split misuse. The two concrete
	// sequencing errors below wrap it, so errors.Is(err, ErrSequence) holds for both.
	ErrSequence = errors.New("core: union/split sequencing error")

	// ErrNotUnion indicates Split was called on a graph not produced by Union.
	ErrNotUnion = errors.Wrap(ErrSequence, "split of a graph that is not a disjoint union")

	// ErrAlreadyUnion indicates Union was given an operand that is itself a union.
	ErrAlreadyUnion = errors.Wrap(ErrSequence, "union of an already unioned graph")

	// ErrJournalInactive indicates Mark/Rollback without StartJournal.
	ErrJournalInactive = errors.New("core: color journal is not active")
)

// Side tags a vertex of a disjoint-union graph with the operand it came from.
type Side uint8

const (
	// SideNone marks vertices of ordinary (non-union) graphs.
	SideNone Side = iota
	// SideA marks vertices that came from the first Union operand.
	SideA
	// SideB marks vertices that came from the second Union operand.
	SideB
)

// String renders the side tag for logs.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

// Edge is an undirected edge between two vertex indices, normalized so U < V.
type Edge struct {
	U int
	V int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithColors seeds vertex colors from the given slice. Entries beyond the
// vertex count are ignored; missing entries keep the default color 0.
func WithColors(colors []int) GraphOption {
	return func(g *Graph) {
		for v := 0; v < len(g.colors) && v < len(colors); v++ {
			g.colors[v] = colors[v]
		}
	}
}

// Graph is the Graph Store: adjacency lists plus adjacency bitsets for
// high-degree vertices, a per-vertex color, and the single color-id counter shared by every
// algorithm that needs fresh colors.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	// adjacency: sorted neighbor slices; rows[v] is nil until v is dense
	adj   [][]int
	rows  []*bitset.BitSet
	edges int

	// coloring state
	colors    []int
	nextColor int

	// undo journal; nil while journaling is off
	journal []colorChange

	// disjoint-union bookkeeping; side is nil for ordinary graphs
	side  []Side
	split int
}

// colorChange is one journal record: the color a vertex had before a write.
type colorChange struct {
	v   int
	old int
}

// NewGraph creates a graph with n isolated vertices, all colored 0.
// It panics if n is negative, mirroring the option-constructor rule that
// meaningless construction parameters are programmer errors.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic("core: NewGraph(n<0)")
	}
	g := &Graph{
		adj:    make([][]int, n),
		rows:   make([]*bitset.BitSet, n),
		colors: make([]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.syncColorCounter()

	return g
}

// FromEdges builds a graph with n vertices and the given edge list.
// The first structural error aborts construction and is returned wrapped
// with the offending edge index.
//
// Complexity: O(n + m log d).
func FromEdges(n int, edges [][2]int, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, errors.Wrapf(err, "edge #%d (%d,%d)", i, e[0], e[1])
		}
	}

	return g, nil
}

// syncColorCounter lifts nextColor above every color currently in use.
func (g *Graph) syncColorCounter() {
	for _, c := range g.colors {
		if c >= g.nextColor {
			g.nextColor = c + 1
		}
	}
}

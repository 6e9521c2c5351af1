// SPDX-License-Identifier: MIT
//
// File: methods_union.go
// Role: Disjoint union and its inverse split.
// Policy:
//   - Union and Split are paired: Split only accepts graphs produced by Union,
//     and Union refuses operands that are themselves unions.
//   - Colors are copied verbatim so that refinement on the union is seeded by
//     the operands' existing colorings; the union's counter starts above both.

package core

import "github.com/pkg/errors"

// Union builds the disjoint union of a and b: a's vertices keep their
// indices, b's vertices are offset by a.Order(). Edges and colors are copied;
// neither operand is modified. Passing the same graph twice is allowed.
//
// Errors:
//   - ErrAlreadyUnion if either operand is itself a union.
//
// Complexity: O(n_a + n_b + m_a + m_b).
func Union(a, b *Graph) (*Graph, error) {
	if a.IsUnion() || b.IsUnion() {
		return nil, ErrAlreadyUnion
	}
	na, nb := a.Order(), b.Order()
	u := NewGraph(na + nb)
	u.side = make([]Side, na+nb)
	u.split = na

	for v := 0; v < na; v++ {
		u.side[v] = SideA
		u.colors[v] = a.colors[v]
		u.adj[v] = append([]int(nil), a.adj[v]...)
		u.indexRow(v)
	}
	for v := 0; v < nb; v++ {
		x := na + v
		u.side[x] = SideB
		u.colors[x] = b.colors[v]
		nbrs := make([]int, len(b.adj[v]))
		for i, w := range b.adj[v] {
			nbrs[i] = na + w
		}
		u.adj[x] = nbrs
		u.indexRow(x)
	}
	u.edges = a.edges + b.edges
	u.syncColorCounter()
	if a.nextColor > u.nextColor {
		u.nextColor = a.nextColor
	}
	if b.nextColor > u.nextColor {
		u.nextColor = b.nextColor
	}

	return u, nil
}

// IsUnion reports whether g was produced by Union.
func (g *Graph) IsUnion() bool {
	return g.side != nil
}

// Side returns the operand tag of v (SideNone for ordinary graphs).
func (g *Graph) Side(v int) Side {
	if g.side == nil || !g.HasVertex(v) {
		return SideNone
	}

	return g.side[v]
}

// SplitPoint returns |A| for a union graph, or -1 otherwise. Vertices
// [0, SplitPoint) came from A and the rest from B.
func (g *Graph) SplitPoint() int {
	if g.side == nil {
		return -1
	}

	return g.split
}

// Split reconstructs the two operands of a union with their current colors.
// The union itself is left unchanged.
//
// Errors:
//   - ErrNotUnion if g was not produced by Union.
//   - ErrVertexOutOfRange if an edge crosses the two sides (only possible
//     after AddEdge on the union).
//
// Complexity: O(n + m).
func (g *Graph) Split() (*Graph, *Graph, error) {
	if g.side == nil {
		return nil, nil, ErrNotUnion
	}
	na := g.split
	nb := g.Order() - na
	a := NewGraph(na)
	b := NewGraph(nb)

	for v := 0; v < na; v++ {
		a.colors[v] = g.colors[v]
	}
	for v := 0; v < nb; v++ {
		b.colors[v] = g.colors[na+v]
	}
	for _, e := range g.Edges() {
		switch {
		case e.V < na:
			if err := a.AddEdge(e.U, e.V); err != nil {
				return nil, nil, err
			}
		case e.U >= na:
			if err := b.AddEdge(e.U-na, e.V-na); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, errors.Wrapf(ErrVertexOutOfRange, "edge (%d,%d) crosses split point %d", e.U, e.V, na)
		}
	}
	a.syncColorCounter()
	b.syncColorCounter()

	return a, b, nil
}

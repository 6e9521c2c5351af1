// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: adjacency
// queries, colors and the undo journal, union/split, views.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/core"
)

// path4 builds 0-1-2-3.
func path4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	return g
}

func TestGraph_Adjacency(t *testing.T) {
	g := path4(t)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0), "undirected edges are symmetric")
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 9), "out of range is simply absent")

	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Nil(t, g.Neighbors(17))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 0, g.Degree(-1))
	assert.Equal(t, []int{2, 2, 1, 1}, g.DegreeSequence())
	assert.Equal(t, 1, g.CommonNeighbors(0, 2))
}

func TestGraph_NeighborsStaySorted(t *testing.T) {
	g := core.NewGraph(5)
	for _, v := range []int{4, 1, 3, 2} {
		require.NoError(t, g.AddEdge(0, v))
	}
	assert.Equal(t, []int{1, 2, 3, 4}, g.Neighbors(0))
}

func TestGraph_AddVertexGrows(t *testing.T) {
	g := core.NewGraph(2)
	v := g.AddVertex()
	assert.Equal(t, 2, v)
	require.NoError(t, g.AddEdge(0, v))
	assert.True(t, g.HasEdge(v, 0))
	assert.Equal(t, 3, g.Order())
}

func TestGraph_ColorsAndCounter(t *testing.T) {
	g := path4(t)
	g.ColorByDegree()
	assert.Equal(t, []int{1, 2, 2, 1}, g.Colors())
	assert.Equal(t, 2, g.ColorCount())
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, g.ColorHistogram())
	assert.Equal(t, map[int][]int{1: {0, 3}, 2: {1, 2}}, g.ColorClasses())

	c := g.NewColor()
	assert.Equal(t, 3, c)
	g.SetColor(0, 10)
	assert.Equal(t, 11, g.NextColor(), "explicit colors lift the counter")

	g.UniformColor()
	assert.Equal(t, []int{0, 0, 0, 0}, g.Colors())
}

func TestGraph_JournalRollback(t *testing.T) {
	g := path4(t)
	g.ColorByDegree()
	before := g.Colors()

	assert.ErrorIs(t, g.Rollback(g.Mark()), core.ErrJournalInactive)

	g.StartJournal()
	require.True(t, g.Journaling())
	outer := g.Mark()
	counter := g.NextColor()

	fresh := g.NewColor()
	g.SetColor(0, fresh)
	inner := g.Mark()
	g.SetColor(3, fresh)
	g.SetColor(1, g.NewColor())
	g.SetColor(1, g.NewColor())

	require.NoError(t, g.Rollback(inner))
	assert.Equal(t, []int{fresh, 2, 2, 1}, g.Colors())

	require.NoError(t, g.Rollback(outer))
	assert.Equal(t, before, g.Colors())
	assert.Equal(t, counter, g.NextColor(), "rollback rewinds the color counter")

	g.StopJournal()
	assert.False(t, g.Journaling())
}

func TestGraph_JournalSkipsNoopWrites(t *testing.T) {
	g := core.NewGraph(2)
	g.StartJournal()
	m := g.Mark()
	g.SetColor(0, 0)
	g.SetColor(1, 5)
	g.SetColor(1, 5)
	require.NoError(t, g.Rollback(m))
	assert.Equal(t, []int{0, 0}, g.Colors())
}

func TestUnionSplit_RoundTrip(t *testing.T) {
	a := path4(t)
	a.SetColor(0, 7)
	b, err := core.FromEdges(3, [][2]int{{0, 1}, {0, 2}, {1, 2}}, core.WithColors([]int{1, 2, 3}))
	require.NoError(t, err)

	u, err := core.Union(a, b)
	require.NoError(t, err)
	assert.True(t, u.IsUnion())
	assert.Equal(t, 4, u.SplitPoint())
	assert.Equal(t, 7, u.Order())
	assert.Equal(t, 6, u.EdgeCount())
	assert.Equal(t, core.SideA, u.Side(3))
	assert.Equal(t, core.SideB, u.Side(4))
	assert.True(t, u.HasEdge(4, 6), "B's edges are shifted by |A|")
	assert.GreaterOrEqual(t, u.NextColor(), 8)

	a2, b2, err := u.Split()
	require.NoError(t, err)
	assert.True(t, a.Equal(a2))
	assert.True(t, b.Equal(b2))
}

func TestUnionSplit_SplitCarriesCurrentColors(t *testing.T) {
	a := path4(t)
	u, err := core.Union(a, a)
	require.NoError(t, err)
	u.SetColor(5, 42)

	_, b, err := u.Split()
	require.NoError(t, err)
	assert.Equal(t, 42, b.Color(1))
	assert.Equal(t, 0, a.Color(1), "operands are never mutated through the union")
}

func TestUnionSplit_SequencingErrors(t *testing.T) {
	g := path4(t)
	_, _, err := g.Split()
	assert.ErrorIs(t, err, core.ErrNotUnion)
	assert.ErrorIs(t, err, core.ErrSequence)

	u, err := core.Union(g, g)
	require.NoError(t, err)
	_, err = core.Union(u, g)
	assert.ErrorIs(t, err, core.ErrAlreadyUnion)
	_, err = core.Union(g, u)
	assert.ErrorIs(t, err, core.ErrAlreadyUnion)
}

func TestUnion_Empty(t *testing.T) {
	u, err := core.Union(core.NewGraph(0), core.NewGraph(0))
	require.NoError(t, err)
	a, b, err := u.Split()
	require.NoError(t, err)
	assert.Equal(t, 0, a.Order())
	assert.Equal(t, 0, b.Order())
}

func TestInducedSubgraph(t *testing.T) {
	g := path4(t)
	g.ColorByDegree()

	sub, err := g.InducedSubgraph([]int{3, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Order())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}}, sub.Edges(), "only 2-3 survives, re-indexed to 1-0")
	assert.Equal(t, []int{1, 2, 1}, sub.Colors())

	_, err = g.InducedSubgraph([]int{0, 0})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
	_, err = g.InducedSubgraph([]int{4})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestRelabel(t *testing.T) {
	g := path4(t)
	g.SetColor(0, 9)

	h, err := g.Relabel([]int{3, 2, 1, 0})
	require.NoError(t, err)
	assert.True(t, h.SameEdges(g), "reversing a path is an automorphism of its edge set")
	assert.Equal(t, 9, h.Color(3))
	assert.False(t, h.Equal(g), "colors moved")

	assert.True(t, g.IsAutomorphism([]int{0, 1, 2, 3}))
	assert.False(t, g.IsAutomorphism([]int{3, 2, 1, 0}), "vertex 0 is colored 9 alone")
	g.SetColor(3, 9)
	assert.True(t, g.IsAutomorphism([]int{3, 2, 1, 0}))

	_, err = g.Relabel([]int{0, 0, 1, 2})
	assert.ErrorIs(t, err, core.ErrBadMapping)
	_, err = g.Relabel([]int{0, 1})
	assert.ErrorIs(t, err, core.ErrBadMapping)
}

func TestClone_Independent(t *testing.T) {
	g := path4(t)
	c := g.Clone()
	require.True(t, c.Equal(g))

	require.NoError(t, c.AddEdge(0, 3))
	c.SetColor(2, 5)
	assert.False(t, g.HasEdge(0, 3))
	assert.Equal(t, 0, g.Color(2))
	assert.False(t, c.Journaling())
}

func TestStats(t *testing.T) {
	g := path4(t)
	s := g.Stats()
	assert.Equal(t, core.GraphStats{Order: 4, EdgeCount: 3, Colors: 1, MinDegree: 1, MaxDegree: 2, SplitAt: -1}, *s)
}

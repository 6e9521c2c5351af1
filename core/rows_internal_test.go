// SPDX-License-Identifier: MIT
// Internal checks of the adjacency row policy: bitset rows exist only for
// dense vertices, and queries agree whichever representation answers them.

package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longPath(t *testing.T, n int) *Graph {
	t.Helper()
	g := NewGraph(n)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}

	return g
}

func countRows(g *Graph) int {
	k := 0
	for _, row := range g.rows {
		if row != nil {
			k++
		}
	}

	return k
}

func TestRows_SparseGraphHasNone(t *testing.T) {
	g := longPath(t, 2000)
	assert.Zero(t, countRows(g))
	assert.True(t, g.HasEdge(999, 1000))
	assert.False(t, g.HasEdge(0, 1999))
	assert.Equal(t, 1, g.CommonNeighbors(10, 12))

	u, err := Union(g, g)
	require.NoError(t, err)
	assert.Zero(t, countRows(u), "union of sparse graphs stays sparse")
	assert.True(t, u.HasEdge(2000, 2001))
	assert.False(t, u.HasEdge(1999, 2000))
}

func TestRows_HubGetsRow(t *testing.T) {
	const n = 500
	g := NewGraph(n)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(0, v))
	}
	require.NotNil(t, g.rows[0])
	assert.Equal(t, 1, countRows(g))
	assert.True(t, g.HasEdge(n-1, 0))
	assert.Equal(t, 1, g.CommonNeighbors(1, 2))
	assert.ErrorIs(t, g.AddEdge(7, 0), ErrMultiEdgeNotAllowed)

	c := g.Clone()
	require.NotNil(t, c.rows[0])
	assert.True(t, c.SameEdges(g))
}

func TestRows_SmallGraphsAreFullyIndexed(t *testing.T) {
	g, err := FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, countRows(g))
}

func TestRows_QueriesMatchNeighborLists(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 300
	g := NewGraph(n)
	for v := 0; v < n; v++ {
		// a few hubs among many low-degree vertices
		p := 0.005
		if v%50 == 0 {
			p = 0.5
		}
		for w := v + 1; w < n; w++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(v, w))
			}
		}
	}
	require.Positive(t, countRows(g))
	require.Less(t, countRows(g), n)

	adj := make([]map[int]bool, n)
	for v := range adj {
		adj[v] = make(map[int]bool)
		for _, w := range g.Neighbors(v) {
			adj[v][w] = true
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.Equal(t, adj[u][v], g.HasEdge(u, v), "HasEdge(%d,%d)", u, v)
		}
	}
	for i := 0; i < 200; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		want := 0
		for w := range adj[u] {
			if adj[v][w] {
				want++
			}
		}
		assert.Equal(t, want, g.CommonNeighbors(u, v), "CommonNeighbors(%d,%d)", u, v)
	}
}

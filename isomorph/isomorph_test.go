// SPDX-License-Identifier: MIT

package isomorph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/builder"
	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/isomorph"
)

func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
	require.NoError(t, err)

	return g
}

func relabel(t testing.TB, g *core.Graph, r *rand.Rand) *core.Graph {
	t.Helper()
	h, err := g.Relabel(r.Perm(g.Order()))
	require.NoError(t, err)

	return h
}

// rook4 is K4 □ K4: vertices (i, j), adjacent when sharing a row or column.
func rook4(t testing.TB) *core.Graph {
	t.Helper()
	var edges [][2]int
	for a := 0; a < 16; a++ {
		for b := a + 1; b < 16; b++ {
			if a/4 == b/4 || a%4 == b%4 {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	g, err := core.FromEdges(16, edges)
	require.NoError(t, err)

	return g
}

// shrikhande is the Cayley graph of Z4×Z4 with connection set ±(1,0), ±(0,1), ±(1,1).
func shrikhande(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(16)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for _, d := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
				u := x*4 + y
				v := ((x+d[0])%4)*4 + (y+d[1])%4
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}

	return g
}

func TestCountIsomorphisms_Table(t *testing.T) {
	p4 := build(t, builder.Path(4))
	k4 := build(t, builder.Complete(4))
	c6 := build(t, builder.Cycle(6))
	twoK3 := build(t, builder.Cycle(3), builder.Cycle(3))

	tests := []struct {
		name string
		x, y *core.Graph
		want uint64
	}{
		{"P4 with itself", p4, p4, 2},
		{"K4 with itself", k4, k4, 24},
		{"C6 vs 2K3", c6, twoK3, 0},
		{"2K3 with itself", twoK3, twoK3, 72},
		{"star vs path", build(t, builder.Star(4)), p4, 0},
		{"different orders", p4, k4, 0},
		{"empty graphs", core.NewGraph(0), core.NewGraph(0), 1},
		{"rook vs shrikhande", rook4(t), shrikhande(t), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := isomorph.CountIsomorphisms(tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountIsomorphisms_StopAtFirst(t *testing.T) {
	k5 := build(t, builder.Complete(5))
	var st isomorph.Stats
	got, err := isomorph.CountIsomorphisms(k5, k5, isomorph.WithStopAtFirst(), isomorph.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
	assert.Equal(t, 1, st.Leaves)
}

func TestCountIsomorphisms_MatchesAutomorphismCount(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 12; i++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(9, 0.35))
		require.NoError(t, err)
		h := relabel(t, g, r)

		k, err := isomorph.CountIsomorphisms(g, h)
		require.NoError(t, err)
		aut, err := isomorph.CountAutomorphisms(g)
		require.NoError(t, err)
		assert.Equal(t, aut.Uint64(), k, "graph %d: %v", i, g.Edges())
	}
}

func TestIsIsomorphic_RelabeledCopies(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	fixtures := map[string]*core.Graph{
		"petersen": build(t, builder.Petersen()),
		"cube":     build(t, builder.PlatonicSolid(builder.Cube, false)),
		"grid":     build(t, builder.Grid(3, 4)),
		"regular":  build(t, builder.RandomRegular(14, 3)),
		"sparse":   build(t, builder.RandomSparse(20, 0.2)),
		"rook":     rook4(t),
	}
	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			ok, err := isomorph.IsIsomorphic(g, relabel(t, g, r))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestIsIsomorphic_NonIsomorphic(t *testing.T) {
	p4 := build(t, builder.Path(4))
	triangleAndPoint := build(t, builder.Cycle(3), builder.Path(1))

	tests := []struct {
		name string
		x, y *core.Graph
	}{
		{"C6 vs 2K3", build(t, builder.Cycle(6)), build(t, builder.Cycle(3), builder.Cycle(3))},
		{"tree vs non-tree with equal sizes", p4, triangleAndPoint},
		{"rook vs shrikhande", rook4(t), shrikhande(t)},
		{"cube vs twisted cubic graph", build(t, builder.PlatonicSolid(builder.Cube, false)),
			mustEdges(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 6}, {2, 5}, {3, 7}})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := isomorph.IsIsomorphic(tc.x, tc.y)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestIsIsomorphic_TreesWithAndWithoutFastPath(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(r)}, builder.RandomTree(30))
		require.NoError(t, err)
		h := relabel(t, g, r)
		other, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(r)}, builder.RandomTree(30))
		require.NoError(t, err)

		fast, err := isomorph.IsIsomorphic(g, h)
		require.NoError(t, err)
		slow, err := isomorph.IsIsomorphic(g, h, isomorph.WithoutTreeFastPath())
		require.NoError(t, err)
		assert.True(t, fast)
		assert.True(t, slow)

		fast, err = isomorph.IsIsomorphic(g, other)
		require.NoError(t, err)
		slow, err = isomorph.IsIsomorphic(g, other, isomorph.WithoutTreeFastPath())
		require.NoError(t, err)
		assert.Equal(t, slow, fast, "both paths agree on unrelated trees")
	}
}

func TestIsIsomorphic_ColorsMatter(t *testing.T) {
	x := build(t, builder.Path(4))
	y := build(t, builder.Path(4))
	x.SetColor(0, 1)
	y.SetColor(3, 1)

	ok, err := isomorph.IsIsomorphic(x, y)
	require.NoError(t, err)
	assert.True(t, ok, "end-colored paths match by reversal")

	y.SetColor(3, 0)
	y.SetColor(1, 1)
	ok, err = isomorph.IsIsomorphic(x, y)
	require.NoError(t, err)
	assert.False(t, ok, "an end cannot map to an inner vertex")

	ok, err = isomorph.IsIsomorphic(x, y, isomorph.WithDegreeSeed())
	require.NoError(t, err)
	assert.True(t, ok, "degree seeding discards input colors")
}

func TestIsIsomorphic_InputsUntouched(t *testing.T) {
	x := build(t, builder.Petersen())
	y := relabel(t, x, rand.New(rand.NewSource(1)))
	x.SetColor(2, 4)
	y.SetColor(5, 4)
	cx, cy := x.Colors(), y.Colors()

	_, err := isomorph.CountIsomorphisms(x, y)
	require.NoError(t, err)
	assert.Equal(t, cx, x.Colors())
	assert.Equal(t, cy, y.Colors())
	assert.False(t, x.Journaling())
}

func TestEquivalenceClasses(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	c6 := build(t, builder.Cycle(6))
	twoK3 := build(t, builder.Cycle(3), builder.Cycle(3))
	graphs := []*core.Graph{
		c6,
		twoK3,
		relabel(t, c6, r),
		relabel(t, twoK3, r),
		build(t, builder.Path(6)),
	}

	classes, err := isomorph.EquivalenceClasses(graphs)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1, 3}, {4}}, classes)

	empty, err := isomorph.EquivalenceClasses(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestErrors(t *testing.T) {
	g := build(t, builder.Path(3))
	u, err := core.Union(g, g)
	require.NoError(t, err)

	_, err = isomorph.CountIsomorphisms(nil, g)
	assert.ErrorIs(t, err, isomorph.ErrGraphNil)
	_, err = isomorph.IsIsomorphic(g, nil)
	assert.ErrorIs(t, err, isomorph.ErrGraphNil)
	_, err = isomorph.Automorphisms(nil)
	assert.ErrorIs(t, err, isomorph.ErrGraphNil)
	_, err = isomorph.EquivalenceClasses([]*core.Graph{g, nil})
	assert.ErrorIs(t, err, isomorph.ErrGraphNil)

	_, err = isomorph.CountIsomorphisms(g, g, isomorph.WithStats(nil))
	assert.ErrorIs(t, err, isomorph.ErrOptionViolation)

	_, err = isomorph.CountIsomorphisms(u, u)
	assert.ErrorIs(t, err, core.ErrAlreadyUnion)
}

func mustEdges(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

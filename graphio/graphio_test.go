// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/builder"
	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/graphio"
)

const twoGraphs = `# a path and a triangle
4
0,1
1,2
2,3
--- second
3
0,1
1,2:5
0,2
`

func TestParseString_List(t *testing.T) {
	graphs, err := graphio.ParseString(twoGraphs)
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.Equal(t, 4, graphs[0].Order())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, graphs[0].Edges())
	assert.Equal(t, 3, graphs[1].Order())
	assert.Equal(t, 3, graphs[1].EdgeCount(), "the weighted edge is kept, its weight dropped")
}

func TestParseString_Tolerates(t *testing.T) {
	tests := map[string]string{
		"edgeless graph":       "5\n",
		"leading separator":    "---\n2\n0,1\n",
		"trailing separator":   "2\n0,1\n---\n",
		"comments everywhere":  "# head\n2 # count\n# mid\n0,1\n",
		"spaces around punct":  "2\n0 , 1\n",
		"negative weight":      "2\n0,1:-3\n",
		"spaced signed weight": "2\n0,1: +4\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			graphs, err := graphio.ParseString(src)
			require.NoError(t, err)
			assert.Len(t, graphs, 1)
		})
	}
}

func TestParseString_NegativeWeightIsNotASeparator(t *testing.T) {
	graphs, err := graphio.ParseString("3\n0,1:-3\n1,2:-1\n-\n2\n0,1\n")
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assert.Equal(t, 2, graphs[0].EdgeCount())
	assert.Equal(t, 1, graphs[1].EdgeCount())
}

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", graphio.ErrNoGraphs},
		{"only comments", "# nothing\n", graphio.ErrNoGraphs},
		{"out of range", "3\n0,1\n0,5\n", graphio.ErrEdgeOutOfRange},
		{"loop", "3\n1,1\n", core.ErrLoopNotAllowed},
		{"parallel", "3\n0,1\n1,0\n", core.ErrMultiEdgeNotAllowed},
		{"missing comma", "3\n0 1\n", graphio.ErrSyntax},
		{"garbage", "three\n", graphio.ErrSyntax},
		{"dangling colon", "3\n0,1:\n", graphio.ErrSyntax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			graphs, err := graphio.ParseString(tc.src)
			assert.Nil(t, graphs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseString_ErrorsCarryPosition(t *testing.T) {
	_, err := graphio.ParseString("3\n0,1\n0,5\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3:1")
}

func TestWrite_RoundTrip(t *testing.T) {
	in := []*core.Graph{
		builder.MustBuild(nil, builder.Petersen()),
		core.NewGraph(3),
		builder.MustBuild(nil, builder.Grid(2, 3)),
	}
	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, in))

	out, err := graphio.ParseString(buf.String())
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.True(t, in[i].SameEdges(out[i]), "graph #%d", i)
	}

	assert.ErrorIs(t, graphio.Write(&buf, []*core.Graph{nil}), graphio.ErrGraphNil)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.grl")
	require.NoError(t, os.WriteFile(path, []byte(twoGraphs), 0o600))

	graphs, err := graphio.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, graphs, 2)

	_, err = graphio.LoadFile(filepath.Join(t.TempDir(), "missing.grl"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.grl")
	require.NoError(t, os.WriteFile(bad, []byte("2\n0,2\n"), 0o600))
	_, err = graphio.LoadFile(bad)
	assert.ErrorIs(t, err, graphio.ErrEdgeOutOfRange)
	assert.Contains(t, err.Error(), "bad.grl:2:1")
}

func TestWriteDOT(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))
	g.SetColor(1, 13)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteDOT(&buf, g, graphio.WithGraphName("P3")))
	want := strings.Join([]string{
		"graph P3 {",
		"0 [penwidth=3, color=1, colorscheme=paired12]",
		"1 [penwidth=3, color=2, colorscheme=paired12]",
		"2 [penwidth=3, color=1, colorscheme=paired12]",
		"",
		"0 -- 1 [penwidth=2]",
		"1 -- 2 [penwidth=2]",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())

	assert.ErrorIs(t, graphio.WriteDOT(&buf, nil), graphio.ErrGraphNil)
	assert.Panics(t, func() { graphio.WithGraphName("") })
}

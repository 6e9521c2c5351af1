// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: Writers for the graph list format and Graphviz DOT.
// Determinism:
//   - Vertices ascending, edges in core.Graph.Edges order (U<V, lexicographic).

package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// Write emits graphs in the list format accepted by Parse, separated by
// "---" lines. Colors are not part of the format.
func Write(w io.Writer, graphs []*core.Graph) error {
	bw := bufio.NewWriter(w)
	for i, g := range graphs {
		if g == nil {
			return errors.Wrapf(ErrGraphNil, "graph #%d", i)
		}
		if i > 0 {
			fmt.Fprintln(bw, "---")
		}
		fmt.Fprintln(bw, g.Order())
		for _, e := range g.Edges() {
			fmt.Fprintf(bw, "%d,%d\n", e.U, e.V)
		}
	}

	return bw.Flush()
}

// WriteDOT emits g as an undirected Graphviz graph. Vertex colors are mapped
// onto the color scheme as (color mod NumColors) + 1.
func WriteDOT(w io.Writer, g *core.Graph, opts ...DOTOption) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultDOTOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s {\n", o.Name)
	for v := 0; v < g.Order(); v++ {
		fmt.Fprintf(bw, "%d [penwidth=%d, color=%d, colorscheme=%s]\n",
			v, o.VertexPen, dotColor(g.Color(v)), o.ColorScheme)
	}
	fmt.Fprintln(bw)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d -- %d [penwidth=%d]\n", e.U, e.V, o.EdgePen)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func dotColor(c int) int {
	c %= NumColors
	if c < 0 {
		c += NumColors
	}

	return c + 1
}

// Package graphio reads and writes graph lists in a small text format and
// exports single graphs to Graphviz DOT.
//
// A file holds one or more graphs. Each graph is a vertex count followed by
// one "u,v" edge per line; "u,v:w" carries a weight that is accepted and
// ignored. A line starting with '-' separates graphs and '#' starts a
// comment:
//
//	# two triangles
//	3
//	0,1
//	1,2
//	0,2
//	--- next
//	3
//	0,1
//	1,2
//	2,0
//
// The grammar is parsed with participle. Every structural problem fails with
// the source position: ErrEdgeOutOfRange for endpoints outside 0..n-1,
// core.ErrLoopNotAllowed and core.ErrMultiEdgeNotAllowed from the store,
// ErrSyntax for anything the grammar rejects and ErrNoGraphs for an empty
// input.
//
// WriteDOT paints each vertex with color (c mod 12)+1 of the paired12
// scheme, so refined colorings can be inspected visually:
//
//	_ = graphio.WriteDOT(os.Stdout, g, graphio.WithGraphName("petersen"))
package graphio

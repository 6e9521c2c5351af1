// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors and DOT export options.

package graphio

import "github.com/pkg/errors"

// Sentinel errors for loading graph lists.
var (
	// ErrSyntax wraps every tokenizer or grammar error; the message carries
	// the source position.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrNoGraphs is returned when the input holds no graph at all.
	ErrNoGraphs = errors.New("graphio: no graphs in input")

	// ErrEdgeOutOfRange is returned for an edge endpoint outside 0..n-1.
	ErrEdgeOutOfRange = errors.New("graphio: edge endpoint out of range")

	// ErrGraphNil is returned when Write or WriteDOT receives a nil graph.
	ErrGraphNil = errors.New("graphio: graph is nil")
)

// NumColors is the size of the DOT color scheme; vertex colors wrap around it.
const NumColors = 12

// DefaultColorScheme is the Graphviz Brewer scheme used for vertex colors.
const DefaultColorScheme = "paired12"

// DOTOption configures WriteDOT.
type DOTOption func(*DOTOptions)

// DOTOptions holds the DOT export knobs.
type DOTOptions struct {
	Name        string // graph identifier, "G" by default
	ColorScheme string // Graphviz color scheme
	VertexPen   int    // vertex penwidth
	EdgePen     int    // edge penwidth
}

// DefaultDOTOptions returns name "G", paired12 and pen widths 3 and 2.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		Name:        "G",
		ColorScheme: DefaultColorScheme,
		VertexPen:   3,
		EdgePen:     2,
	}
}

// WithGraphName sets the DOT graph identifier. Panics on an empty name.
func WithGraphName(name string) DOTOption {
	if name == "" {
		panic("graphio: WithGraphName(\"\")")
	}

	return func(o *DOTOptions) { o.Name = name }
}

// WithColorScheme replaces paired12. Panics on an empty scheme.
func WithColorScheme(scheme string) DOTOption {
	if scheme == "" {
		panic("graphio: WithColorScheme(\"\")")
	}

	return func(o *DOTOptions) { o.ColorScheme = scheme }
}

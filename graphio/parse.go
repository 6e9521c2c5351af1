// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Loader for the plain-text graph list format.
//
// Format:
//
//	# comment lines start with '#'
//	4          <- vertex count
//	0,1        <- edge u,v
//	1,2:7      <- edge with a signed weight (accepted, ignored)
//	---        <- a line starting with '-' separates graphs
//	3
//	0,2
//
// Policy:
//   - Structural problems fail with the source position; nothing is
//     silently dropped.

package graphio

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/core"
)

// Weight precedes Separator so that the sign of ":-3" is not read as the
// start of a separator line.
var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Weight", Pattern: `:[ \t]*[-+]?\d+`},
	{Name: "Separator", Pattern: `-[^\n]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type listAST struct {
	Blocks []*blockAST `parser:"Separator* ( @@ Separator* )*"`
}

type blockAST struct {
	Pos   lexer.Position
	Order int        `parser:"@Int"`
	Edges []*edgeAST `parser:"@@*"`
}

type edgeAST struct {
	Pos    lexer.Position
	U      int  `parser:"@Int \",\""`
	V      int  `parser:"@Int"`
	Weight *weight `parser:"@Weight?"`
}

// weight is the value of a ":w" edge suffix.
type weight int

func (w *weight) Capture(values []string) error {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(values[0], ":")))
	if err != nil {
		return err
	}
	*w = weight(n)

	return nil
}

var listParser = participle.MustBuild[listAST](
	participle.Lexer(graphLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a graph list from r. name labels positions in errors.
//
// Errors: ErrSyntax, ErrNoGraphs, ErrEdgeOutOfRange, core.ErrLoopNotAllowed,
// core.ErrMultiEdgeNotAllowed.
func Parse(name string, r io.Reader) ([]*core.Graph, error) {
	ast, err := listParser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	return assemble(ast)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]*core.Graph, error) {
	ast, err := listParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	return assemble(ast)
}

// LoadFile opens path and parses it.
func LoadFile(path string) ([]*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	return Parse(path, f)
}

func assemble(ast *listAST) ([]*core.Graph, error) {
	if len(ast.Blocks) == 0 {
		return nil, ErrNoGraphs
	}
	graphs := make([]*core.Graph, 0, len(ast.Blocks))
	for i, b := range ast.Blocks {
		g := core.NewGraph(b.Order)
		weighted := 0
		for _, e := range b.Edges {
			if e.U >= b.Order || e.V >= b.Order {
				return nil, errors.Wrapf(ErrEdgeOutOfRange, "%s: edge %d,%d in graph #%d with %d vertices",
					e.Pos, e.U, e.V, i, b.Order)
			}
			if err := g.AddEdge(e.U, e.V); err != nil {
				return nil, errors.Wrapf(err, "%s: graph #%d", e.Pos, i)
			}
			if e.Weight != nil {
				weighted++
			}
		}
		if weighted > 0 {
			klog.V(2).Infof("graphio: graph #%d at %s: ignored %d edge weights", i, b.Pos, weighted)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

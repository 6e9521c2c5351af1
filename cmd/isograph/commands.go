// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/graphio"
	"github.com/katalvlaran/isograph/isomorph"
	"github.com/katalvlaran/isograph/refine"
)

// errBadIndex is returned for a --graph index outside the file.
var errBadIndex = errors.New("isograph: graph index out of range")

// selection is a subset of a file's graphs, keyed by their file index.
type selection struct {
	index  []int
	graphs []*core.Graph
}

// load reads path and keeps the graphs named by --graph, in ascending order.
func load(path string, flags *cliFlags) (*selection, error) {
	all, err := graphio.LoadFile(path)
	if err != nil {
		return nil, err
	}
	sel := &selection{}
	if len(flags.graphs) == 0 {
		for i, g := range all {
			sel.index = append(sel.index, i)
			sel.graphs = append(sel.graphs, g)
		}
		return sel, nil
	}

	idx := append([]int(nil), flags.graphs...)
	sort.Ints(idx)
	for k, i := range idx {
		if i < 0 || i >= len(all) {
			return nil, errors.Wrapf(errBadIndex, "%d (file has %d graphs)", i, len(all))
		}
		if k > 0 && idx[k-1] == i {
			continue
		}
		sel.index = append(sel.index, i)
		sel.graphs = append(sel.graphs, all[i])
	}

	return sel, nil
}

// classes runs EquivalenceClasses and maps positions back to file indices.
func (s *selection) classes(opts []isomorph.Option) ([][]int, error) {
	local, err := isomorph.EquivalenceClasses(s.graphs, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(local))
	for c, members := range local {
		for _, m := range members {
			out[c] = append(out[c], s.index[m])
		}
	}

	return out, nil
}

func newIsoCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "iso FILE",
		Short: "Print the isomorphism equivalence classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := load(args[0], flags)
			if err != nil {
				return err
			}
			klog.V(2).Infof("isograph: equivalence classes of graphs %v", sel.index)
			classes, err := sel.classes(flags.searchOptions())
			if err != nil {
				return err
			}
			for _, c := range classes {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}

			return nil
		},
	}
}

func newAutCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "aut FILE",
		Short: "Print the number of automorphisms of each graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := load(args[0], flags)
			if err != nil {
				return err
			}
			for k, g := range sel.graphs {
				n, err := isomorph.CountAutomorphisms(g, flags.searchOptions()...)
				if err != nil {
					return errors.Wrapf(err, "graph %d", sel.index[k])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", sel.index[k], n)
			}

			return nil
		},
	}
}

func newClassesCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "classes FILE",
		Short: "Print the equivalence classes with the automorphism count of each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := load(args[0], flags)
			if err != nil {
				return err
			}
			opts := flags.searchOptions()
			classes, err := sel.classes(opts)
			if err != nil {
				return err
			}
			byIndex := make(map[int]*core.Graph, len(sel.index))
			for k, i := range sel.index {
				byIndex[i] = sel.graphs[k]
			}
			for _, c := range classes {
				var n *big.Int
				if n, err = isomorph.CountAutomorphisms(byIndex[c[0]], opts...); err != nil {
					return errors.Wrapf(err, "graph %d", c[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v %s\n", c, n)
			}

			return nil
		},
	}
}

func newDotCmd(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Export one graph as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(flags.graphs) != 1 {
				return errors.New("isograph: dot needs exactly one --graph index")
			}
			sel, err := load(args[0], flags)
			if err != nil {
				return err
			}
			g := sel.graphs[0]
			if flags.refine {
				if flags.degreeSeed {
					g.ColorByDegree()
				}
				res, err := refine.Refine(g)
				if err != nil {
					return err
				}
				klog.V(2).Infof("isograph: graph %d refined into %d classes", sel.index[0], res.Classes)
			}
			name := flags.name
			if name == "" {
				name = fmt.Sprintf("G%d", sel.index[0])
			}

			return graphio.WriteDOT(cmd.OutOrStdout(), g, graphio.WithGraphName(name))
		},
	}
	cmd.Flags().BoolVar(&flags.refine, "refine", false, "color the graph by its stable refinement first")
	cmd.Flags().StringVar(&flags.name, "name", "", "DOT graph name (default G<index>)")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"flag"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isograph/isomorph"
)

// cliFlags holds the flags shared by the subcommands.
type cliFlags struct {
	graphs     []int
	degreeSeed bool
	refine     bool
	name       string
}

func (f *cliFlags) searchOptions() []isomorph.Option {
	var opts []isomorph.Option
	if f.degreeSeed {
		opts = append(opts, isomorph.WithDegreeSeed())
	}

	return opts
}

// newRootCmd assembles the command tree with klog's flags attached.
func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           "isograph",
		Short:         "Graph isomorphism and automorphism groups by color refinement",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	root.PersistentFlags().AddGoFlagSet(fset)
	root.PersistentFlags().IntSliceVarP(&flags.graphs, "graph", "g", nil,
		"indices of the graphs to use (default: all)")
	root.PersistentFlags().BoolVar(&flags.degreeSeed, "degree-seed", false,
		"start the search from the degree coloring")

	root.AddCommand(
		newIsoCmd(flags),
		newAutCmd(flags),
		newClassesCmd(flags),
		newDotCmd(flags),
	)

	return root
}

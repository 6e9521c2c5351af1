// SPDX-License-Identifier: MIT

// Command isograph decides isomorphism and counts automorphisms of the
// graphs stored in a graph list file.
//
//	isograph iso graphs.grl              # equivalence classes
//	isograph aut graphs.grl --graph 0,3  # |Aut| of selected graphs
//	isograph classes graphs.grl          # classes with |Aut| per class
//	isograph dot graphs.grl --graph 1 --refine > g.dot
//
// Logging goes through klog; raise verbosity with -v 2 (search summaries),
// -v 3 (generators) or -v 4 (every search node).
package main

import (
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

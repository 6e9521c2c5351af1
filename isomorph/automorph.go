// SPDX-License-Identifier: MIT
//
// File: automorph.go
// Role: Automorphism group entry points.

package isomorph

import (
	"math/big"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/group"
)

// Automorphisms returns a generating set of the color-preserving
// automorphism group of g, wrapped in a group.Group. The identity is never
// stored; a graph with only trivial symmetry yields an empty generating set.
//
// Every stored generator is an automorphism of g and was not a member of
// the group generated by its predecessors.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrAlreadyUnion.
func Automorphisms(g *core.Graph, opts ...Option) (*group.Group, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSearcher(g, g, o)
	if err != nil {
		return nil, err
	}
	s.grp = group.New(g.Order())
	if err = s.run(func() { s.automorph(true, 0) }); err != nil {
		return nil, err
	}
	klog.V(2).Infof("isomorph: automorphisms n=%d generators=%d nodes=%d leaves=%d pruned=%d",
		g.Order(), s.grp.Len(), s.stats.Nodes, s.stats.Leaves, s.stats.Pruned)

	return s.grp, nil
}

// CountAutomorphisms returns |Aut(g)|, the order of the group generated by
// Automorphisms(g).
func CountAutomorphisms(g *core.Graph, opts ...Option) (*big.Int, error) {
	grp, err := Automorphisms(g, opts...)
	if err != nil {
		return nil, err
	}

	return grp.Order(), nil
}

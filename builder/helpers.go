// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// helpers.go - vertex allocation and edge emission shared by constructors.
//
// Every constructor works on local indices 0..n-1. allocate maps them to
// fresh graph vertices (base+i, or a shuffled block when WithShuffledLabels
// is set) and connect translates local pairs through that mapping.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// block is the local → global vertex mapping of one component.
type block []int

// allocate appends n vertices to g and returns their mapping.
// Complexity: O(n).
func allocate(method string, g *core.Graph, cfg builderConfig, n int) (block, error) {
	if cfg.relabel {
		if err := requireRand(method, cfg); err != nil {
			return nil, err
		}
	}
	ids := make(block, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	if cfg.relabel {
		cfg.rng.Shuffle(n, func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	}

	return ids, nil
}

// connect adds the edge between local vertices u and v.
func (b block) connect(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(b[u], b[v]); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%d,%d)", method, u, v)
	}

	return nil
}

// connectAll adds every local pair in pairs.
func (b block) connectAll(method string, g *core.Graph, pairs []chord) error {
	for _, ch := range pairs {
		if err := b.connect(method, g, ch.U, ch.V); err != nil {
			return err
		}
	}

	return nil
}

// connectClique adds all pairs among local vertices lo..hi-1.
// Complexity: O((hi-lo)^2).
func (b block) connectClique(method string, g *core.Graph, lo, hi int) error {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			if err := b.connect(method, g, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

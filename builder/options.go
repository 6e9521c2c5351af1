// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate eagerly and panic on nonsense values; the
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand uses r as the shared random stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffledLabels scrambles the vertex numbering of every component with
// the configured RNG. The resulting graph is isomorphic to the unshuffled
// one; constructors fail with ErrNeedRandSource when no RNG is configured.
func WithShuffledLabels() BuilderOption {
	return func(c *builderConfig) {
		c.relabel = true
	}
}

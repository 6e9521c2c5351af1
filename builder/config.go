// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import "math/rand"

// builderConfig holds the options resolved by newBuilderConfig. It is passed
// by value to every Constructor.
type builderConfig struct {
	// rng drives the stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// relabel, when true, shuffles every component's vertex numbering with rng.
	relabel bool
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Search options, statistics and sentinel errors.
// Policy:
//   - Defaults enable every sound pruning (tree fast path, ancestor jump,
//     orbit pruning); the With/Without options exist for testing and diagnosis.
//   - Invalid options are recorded and surfaced as ErrOptionViolation.

package isomorph

import "github.com/pkg/errors"

// Sentinel errors for the search entry points.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("isomorph: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("isomorph: invalid option supplied")
)

// Option configures a search.
type Option func(*Options)

// Options holds the search knobs.
type Options struct {
	// StopAtFirst halts CountIsomorphisms at the first isomorphism found.
	StopAtFirst bool
	// DegreeSeed recolors the union by degree before the first refinement,
	// discarding input colors.
	DegreeSeed bool
	// TreeFastPath lets IsIsomorphic answer tree pairs with AHU labeling.
	TreeFastPath bool
	// AncestorJump abandons siblings of a non-trivial node once an
	// automorphism has been found below it.
	AncestorJump bool
	// OrbitPruning skips candidates of a trivial node that lie in the orbit
	// of the individualized vertex under the generators found so far.
	OrbitPruning bool
	// Stats, if set, receives the counters of the last search.
	Stats *Stats

	err error
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes      int // search nodes refined
	Leaves     int // discrete leaves reached
	Unbalanced int // nodes pruned by per-color counts
	Pruned     int // candidates skipped by orbit pruning
	Generators int // automorphisms recorded as generators
	MaxDepth   int // deepest individualization level
}

// DefaultOptions enables the tree fast path, the ancestor jump and orbit pruning.
func DefaultOptions() Options {
	return Options{
		TreeFastPath: true,
		AncestorJump: true,
		OrbitPruning: true,
	}
}

// WithStopAtFirst makes counting stop at the first isomorphism.
func WithStopAtFirst() Option {
	return func(o *Options) { o.StopAtFirst = true }
}

// WithDegreeSeed starts from the degree coloring instead of the input colors.
func WithDegreeSeed() Option {
	return func(o *Options) { o.DegreeSeed = true }
}

// WithoutTreeFastPath forces the general search for tree pairs.
func WithoutTreeFastPath() Option {
	return func(o *Options) { o.TreeFastPath = false }
}

// WithoutAncestorJump explores every branch below non-trivial nodes.
func WithoutAncestorJump() Option {
	return func(o *Options) { o.AncestorJump = false }
}

// WithoutOrbitPruning tries every candidate at trivial nodes.
func WithoutOrbitPruning() Option {
	return func(o *Options) { o.OrbitPruning = false }
}

// WithStats records search counters into st. A nil st is an ErrOptionViolation.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		if st == nil {
			o.err = errors.Wrap(ErrOptionViolation, "Stats target is nil")
			return
		}
		o.Stats = st
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

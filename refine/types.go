// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Refinement options, sentinel errors and the Result summary.
// Policy:
//   - Options are applied in order; an invalid one is recorded and surfaced
//     as ErrOptionViolation by Refine.

package refine

import "github.com/pkg/errors"

// Sentinel errors for color refinement.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("refine: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("refine: invalid option supplied")
)

// Option configures Refine.
type Option func(*Options)

// Options holds the refinement knobs.
type Options struct {
	// DegreeSeed recolors every vertex by its degree before refining.
	DegreeSeed bool

	// OnSplit, if set, is called once per split with the color that was
	// kept by the largest part and the fresh colors of the other parts.
	OnSplit func(parent int, children []int)

	err error
}

// DefaultOptions refines the current coloring as-is with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithDegreeSeed starts from the degree coloring instead of the current one.
func WithDegreeSeed() Option {
	return func(o *Options) {
		o.DegreeSeed = true
	}
}

// WithOnSplit registers a diagnostics hook invoked on every class split.
// A nil fn is an ErrOptionViolation.
func WithOnSplit(fn func(parent int, children []int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = errors.Wrap(ErrOptionViolation, "OnSplit hook is nil")
			return
		}
		o.OnSplit = fn
	}
}

// Result summarizes one refinement run.
type Result struct {
	// Classes is the number of color classes in the stable coloring.
	Classes int
	// Splits is the number of fresh colors created.
	Splits int
	// Splitters is the number of worklist entries processed.
	Splitters int
}

// Discrete reports whether every vertex ended in its own class.
func (r *Result) Discrete(n int) bool {
	return r.Classes == n
}

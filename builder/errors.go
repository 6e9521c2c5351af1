// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context with errors.Wrapf(ErrX, "<Method>: ...").
//   - Priority when several validations fail: size, then probability, then
//     RNG presence, then construction failure.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size or degree parameter below the allowed
// minimum (n, rows, cols, d).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts (e.g.
// stub-matching retries) or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside its domain that is not a
// size, such as an unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")

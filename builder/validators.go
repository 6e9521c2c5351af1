// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// validators.go - shared parameter checks; each returns a wrapped sentinel.

package builder

import "github.com/pkg/errors"

// validateMin fails with ErrTooFewVertices when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, got, min)
	}

	return nil
}

// validatePartition fails with ErrTooFewVertices unless both sides are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return errors.Wrapf(ErrTooFewVertices, "%s: partition sizes must be ≥ %d, got %d and %d",
			method, MinPartition, n1, n2)
	}

	return nil
}

// validateProbability fails with ErrInvalidProbability unless p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return errors.Wrapf(ErrInvalidProbability, "%s: p=%g not in [%.1f,%.1f]",
			method, p, MinProbability, MaxProbability)
	}

	return nil
}

// requireRand fails with ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return errors.Wrapf(ErrNeedRandSource, "%s", method)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: isograph/builder
//
// impl_grid.go - Grid(rows, cols), the orthogonal 4-neighborhood lattice.
//
// Contract:
//   - rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   - Cell (r, c) is local vertex r*cols + c (row-major).
//   - For each cell, the right neighbor edge is emitted before the bottom one.
//
// Complexity: O(rows·cols).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/core"
)

// Grid returns a Constructor that appends a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				MethodGrid, rows, cols, MinGridDim)
		}
		b, err := allocate(MethodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err = b.connect(MethodGrid, g, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = b.connect(MethodGrid, g, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Canonical model:
//   - Vertex names use the fixed coordinate scheme "r,c" (row-major order),
//     a documented exception to cfg.idFn.
//   - Each cell emits an arc to its right neighbour, then to its bottom
//     neighbour, where they exist. Arcs only point right or down, so the grid
//     is acyclic and safe for any weight distribution.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols right/down lattice.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				declare(b, fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					b.Edge(u, fmt.Sprintf(gridIDFmt, r, c+1), cfg.weight())
				}
				if r+1 < rows {
					b.Edge(u, fmt.Sprintf(gridIDFmt, r+1, c), cfg.weight())
				}
			}
		}
		return finish(methodGrid, b)
	}
}

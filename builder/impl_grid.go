// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Cell (r,c) has index r*cols + c (row-major).
//   - For each cell in row-major order emit Right then Bottom where present.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	minGridCells = 2
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridCells {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least %d cells): %w",
				methodGrid, rows, cols, minGridDim, minGridCells, ErrTooFewVertices)
		}
		base := s.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					s.addEdge(u, u+1, cfg)
				}
				if r+1 < rows {
					s.addEdge(u, u+cols, cfg)
				}
			}
		}

		return nil
	}
}

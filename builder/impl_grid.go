// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_grid.go - rows×cols 4-neighborhood lattice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice. Vertex (r, c) receives idFn(r*cols + c),
// so grids compose with the other constructors' ID schemes.
// Edges are emitted row-major: right neighbor first, then bottom neighbor.
// Errors: ErrTooFewVertices if rows or cols < 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, 0, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					if err := addWeightedEdge(g, cfg, methodGrid, u, cfg.idFn(r*cols+c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeightedEdge(g, cfg, methodGrid, u, cfg.idFn((r+1)*cols+c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

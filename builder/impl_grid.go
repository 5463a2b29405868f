// SPDX-License-Identifier: MIT

// File: impl_grid.go
// Role: Grid(rows, cols) constructor.
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c"; the IDFn option does not apply.
//   - Each cell links to its right and bottom neighbor. Directed graphs get
//     both directions with one shared weight, so the lattice stays symmetric.
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor for the rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addLink(methodGrid, g, u, GridID(r, c+1), cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLink(methodGrid, g, u, GridID(r+1, c), cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// addLink adds u—v with weight w in both directions. On an undirected
// graph core mirrors the first arc and the second call rewrites it.
func addLink(method string, g *core.Graph, u, v string, w float64) error {
	if err := addArc(method, g, u, v, w); err != nil {
		return err
	}
	if g.Directed() {
		return addArc(method, g, v, u, w)
	}

	return nil
}

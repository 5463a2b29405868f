// SPDX-License-Identifier: MIT

// File: impl_star.go
// Role: Star(n) constructor.
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one center plus n-1 leaves.
//   - Center ID is CenterVertexID; leaves are idFn(1..n-1).
//   - Arcs run Center→leaf; undirected graphs mirror them.
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// CenterVertexID names the hub of Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addArc(methodStar, g, CenterVertexID, leaf, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT

// File: impl_path.go
// Role: Path(n) constructor.
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); arcs idFn(i)→idFn(i+1) in ascending i.
//   - Undirected graphs mirror each arc through core.
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addArc(methodPath, g, cfg.idFn(i), cfg.idFn(i+1), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}

// addVertices inserts idFn(0..n-1) in ascending order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

func addArc(method string, g *core.Graph, u, v string, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

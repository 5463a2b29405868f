// SPDX-License-Identifier: MIT

// File: impl_complete.go
// Role: Complete(n) constructor.
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair i<j.
//   - Directed: one arc per ordered pair i≠j, each with its own draw.
//   - No self-loops.
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := addArc(methodComplete, g, cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

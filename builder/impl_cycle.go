// SPDX-License-Identifier: MIT

// File: impl_cycle.go
// Role: Cycle(n) constructor.
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Arcs idFn(i)→idFn((i+1) mod n) in ascending i.
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addArc(methodCycle, g, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT

// File: validate.go
// Role: Structural checks shared by FromAdjacency and the shortest-path engine.

package core

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a directed Graph from a node → neighbor → weight
// mapping. The input is validated with the same rules as Validate and is
// never retained; the graph owns its own copy.
//
// Errors (wrapped with the offending node/edge):
//   - ErrEmptyVertexID, ErrDanglingNeighbor, ErrNegativeWeight, ErrBadWeight.
//
// Complexity: O(V + E log E) because validation walks nodes in sorted order
// so the first reported error is deterministic.
func FromAdjacency(adj map[string]map[string]float64, opts ...GraphOption) (*Graph, error) {
	if err := validateAdjacency(adj); err != nil {
		return nil, err
	}

	g := NewGraph(opts...)
	ids := sortedKeys(adj)
	for _, id := range ids {
		g.adjacency[id] = make(map[string]float64)
	}
	for _, from := range ids {
		for to, w := range adj[from] {
			g.setArc(from, to, w)
			if !g.directed && from != to {
				g.setArc(to, from, w)
			}
		}
	}

	return g, nil
}

// Validate re-checks the structural invariants of g: no empty IDs, every
// neighbor is a vertex, every weight is finite and non-negative. Graphs built
// through AddEdge always pass; the check exists for graphs assembled from
// untrusted adjacency data.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return validateAdjacency(g.adjacency)
}

func validateAdjacency(adj map[string]map[string]float64) error {
	for _, from := range sortedKeys(adj) {
		if from == "" {
			return ErrEmptyVertexID
		}
		nbrs := adj[from]
		for _, to := range sortedKeys(nbrs) {
			if to == "" {
				return fmt.Errorf("%w: neighbor of %q", ErrEmptyVertexID, from)
			}
			if _, ok := adj[to]; !ok {
				return fmt.Errorf("%w: %s→%s", ErrDanglingNeighbor, from, to)
			}
			if err := checkWeight(nbrs[to]); err != nil {
				return fmt.Errorf("%w: edge %s→%s weight=%g", err, from, to, nbrs[to])
			}
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList, Snapshot, Adjacency).
// Determinism:
//   - Neighbors() and AdjacencyList() sort arcs by Edge.To asc.
//   - NeighborIDs() returns IDs sorted lex asc.
// Concurrency:
//   - Read lock only; every result is an independent copy.

package core

import "sort"

// Neighbors returns the outgoing arcs of id sorted by Edge.To asc.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedArcs(id, nbrs), nil
}

// NeighborIDs returns the IDs reachable from id by a single arc, sorted.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList snapshots the whole graph as vertex → outgoing arcs.
// Every vertex has an entry; isolated vertices map to an empty slice.
// Engines take this snapshot once per run so the inner loop never locks.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacencyListLocked()
}

// Snapshot validates g and returns its AdjacencyList under a single read
// lock, so the returned list is exactly the graph that passed validation.
//
// Errors: the first Validate error.
// Complexity: O(V + E log E).
func (g *Graph) Snapshot() (map[string][]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := validateAdjacency(g.adjacency); err != nil {
		return nil, err
	}

	return g.adjacencyListLocked(), nil
}

// adjacencyListLocked must be called under the read lock.
func (g *Graph) adjacencyListLocked() map[string][]Edge {
	out := make(map[string][]Edge, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = sortedArcs(id, nbrs)
	}

	return out
}

// Adjacency returns a deep copy of the mapping node → neighbor → weight,
// the inverse of FromAdjacency.
func (g *Graph) Adjacency() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		cp := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		out[id] = cp
	}

	return out
}

func sortedArcs(from string, nbrs map[string]float64) []Edge {
	edges := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		edges = append(edges, Edge{From: from, To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges
}

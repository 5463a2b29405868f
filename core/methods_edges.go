// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns arcs sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge stores the arc from→to with the given weight, creating missing
// endpoints. On an undirected graph the mirror arc to→from is stored too.
// Re-adding an existing arc replaces its weight.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrNegativeWeight: if weight < 0.
//   - ErrBadWeight: if weight is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("%w: edge %s→%s weight=%g", err, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(to)
	g.setArc(from, to, weight)
	if !g.directed && from != to {
		g.setArc(to, from, weight)
	}

	return nil
}

// RemoveEdge deletes from→to (and its mirror on an undirected graph).
//
// Errors:
//   - ErrEdgeNotFound: if the arc does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	g.edgeCount--

	if !g.directed && from != to {
		if _, ok := g.adjacency[to][from]; ok {
			delete(g.adjacency[to], from)
			g.edgeCount--
		}
	}

	return nil
}

// HasEdge reports whether the arc from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the arc exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns every stored arc sorted by (From, To).
// On an undirected graph both directions are listed.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of stored arcs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// setArc must be called under the write lock.
func (g *Graph) setArc(from, to string, weight float64) {
	nbrs := g.ensureVertex(from)
	if _, ok := nbrs[to]; !ok {
		g.edgeCount++
	}
	nbrs[to] = weight
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

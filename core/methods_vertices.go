// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddVertex inserts id if it is not present yet. Adding an existing vertex
// is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes id together with every arc entering or leaving it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(V) because incoming arcs are found by scanning every bucket.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	g.edgeCount -= len(out)
	delete(g.adjacency, id)

	for _, nbrs := range g.adjacency {
		if _, ok = nbrs[id]; ok {
			delete(nbrs, id)
			g.edgeCount--
		}
	}

	return nil
}

// Vertices returns every vertex ID sorted lex asc.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureVertex must be called under the write lock.
func (g *Graph) ensureVertex(id string) map[string]float64 {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[string]float64)
		g.adjacency[id] = nbrs
	}

	return nbrs
}

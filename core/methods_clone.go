// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of g with the same directedness.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for id, nbrs := range g.adjacency {
		cp := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every vertex and arc but keeps the configuration.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]float64)
	g.edgeCount = 0
}

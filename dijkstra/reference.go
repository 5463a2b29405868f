// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/pathfinder/core"

// runReference is the heap-free engine. Every step scans each arc leaving
// the explored set towards an unexplored vertex and settles the endpoint
// minimising dist(u)+w(u,v) (the greedy criterion). Scan order is settle
// order, then Edge.To asc, so ties resolve deterministically to the first
// candidate seen. When no crossing arc remains the rest of the graph is
// unreachable and the loop ends.
func runReference(adj map[string][]core.Edge, cfg Options) *state {
	st := newState(len(adj))
	st.routes = make(map[string][]string, len(adj))

	st.routes[cfg.Source] = []string{cfg.Source}
	if st.settle(cfg.Source, 0, cfg) {
		return st
	}

	for len(st.order) < len(adj) {
		var (
			found    bool
			best     float64
			from, to string
		)

		for _, u := range st.order {
			du := st.dist[u]
			for _, e := range adj[u] {
				if st.explored[e.To] || e.Weight >= cfg.InfEdgeThreshold {
					continue
				}
				candidate := du + e.Weight
				if candidate > cfg.MaxDistance {
					continue
				}
				if !found || candidate < best {
					found, best, from, to = true, candidate, u, e.To
				}
			}
		}

		if !found {
			break
		}

		route := make([]string, len(st.routes[from]), len(st.routes[from])+1)
		copy(route, st.routes[from])
		st.routes[to] = append(route, to)
		st.prev[to] = from

		if st.settle(to, best, cfg) {
			break
		}
	}

	return st
}

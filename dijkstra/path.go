// SPDX-License-Identifier: MIT

package dijkstra

// buildRoutes expands a predecessor map into full routes. Vertices are
// processed in settle order, so every predecessor's route already exists
// when its successor is reached and each route costs one copy.
func buildRoutes(source string, order []string, prev map[string]string) map[string][]string {
	routes := make(map[string][]string, len(order))
	for _, v := range order {
		if v == source {
			routes[v] = []string{source}
			continue
		}
		parent := routes[prev[v]]
		route := make([]string, len(parent), len(parent)+1)
		copy(route, parent)
		routes[v] = append(route, v)
	}

	return routes
}

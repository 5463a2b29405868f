// SPDX-License-Identifier: MIT

// Package converters moves weighted graphs and shortest-path results in and
// out of pathfinder.
//
// The adjacency text format read by ParseAdjacency looks like this:
//
//	# comment
//	1	2,7	3,9.5
//	2	3,10
//	3
//
// The first field of a line is a vertex; every following field is a
// "neighbor,weight" pair. Fields are separated by any run of spaces or tabs.
// A vertex listed alone is isolated. Neighbors that never get a line of
// their own are still added as vertices.
//
// Other entry points:
//   - ReadJSON reads {"a":{"b":1.5}} adjacency objects.
//   - WriteJSON writes the same JSON shape, keys sorted.
//   - FormatResult prints a dijkstra.Result as an aligned text table.
//
// Errors carry the line number for text input and wrap ErrSyntax or the
// core sentinel that rejected the edge.
package converters

// Package pathfinder computes single-source shortest paths over weighted
// graphs on top of an index-addressable binary min-heap.
//
// Packages:
//
//	core/       — thread-safe weighted adjacency graph with structural validation
//	minheap/    — generic binary min-heap with insert, extract-min, delete and decrease-key
//	dijkstra/   — shortest-path engine: heap mode, reference (no-heap) mode, cross-check
//	builder/    — reproducible graph fixtures (path, cycle, star, grid, complete, random)
//	converters/ — adjacency text/JSON readers, JSON writer, result tables
//	cmd/pathfinder — CLI and HTTP service (POST /shortest-path)
//
// Quick example, in the adjacency text format:
//
//	0	1,8	3,15
//	1	2,14	3,3
//	2	4,12
//	3	2,7	4,17
//	4
//
// From 0 the distances are 1:8, 3:11, 2:18 and 4:28; the route to 2 runs
// 0→1→3→2.
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("0"), dijkstra.WithReturnPath())
package pathfinder

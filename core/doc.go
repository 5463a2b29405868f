// SPDX-License-Identifier: MIT

// Package core defines the weighted adjacency Graph consumed by the
// shortest-path engine, plus the structural validation every run performs
// before exploring a single edge.
//
// The Graph G = (V,E) is a mapping node → neighbor → weight:
//
//   - Directed by default; WithDirected(false) mirrors every AddEdge so an
//     undirected graph is modelled as symmetric directed edges.
//   - Weights are float64, finite and non-negative (ErrNegativeWeight,
//     ErrBadWeight otherwise).
//   - At most one edge per ordered pair; a second AddEdge(from,to) replaces
//     the weight.
//   - Self-loops are stored but never shorten a path.
//   - A single sync.RWMutex guards the catalog, so one graph may be read by
//     several concurrent engine runs.
//
// Deterministic iteration:
//
//	Vertices()         sorted lex asc
//	Neighbors(id)      sorted by Edge.To asc
//	Edges()            sorted by (From, To)
//	AdjacencyList()    per-vertex slices sorted by Edge.To asc
//
// Building from a plain adjacency literal:
//
//	g, err := core.FromAdjacency(map[string]map[string]float64{
//	    "0": {"1": 8, "3": 15},
//	    "1": {"2": 14, "3": 3},
//	    "2": {"4": 12},
//	    "3": {"2": 7, "4": 17},
//	    "4": {},
//	})
//
// FromAdjacency is strict: every neighbor must itself be a key of the outer
// mapping (ErrDanglingNeighbor). AddEdge, in contrast, creates missing
// endpoints on the fly.
package core

// SPDX-License-Identifier: MIT

// Package builder assembles reproducible weighted graphs for tests,
// benchmarks and the pathfinder CLI's synthetic inputs.
//
// A build is a list of Constructor values applied in order to one
// core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 20)},
//		builder.Path(50),
//		builder.RandomSparse(50, 0.1),
//	)
//
// Constructors add vertices through the configured IDFn and draw weights
// through the configured WeightFn. Vertex insertion is idempotent, so later
// constructors extend the vertex set laid down by earlier ones and an arc
// produced twice keeps the weight of the last draw.
//
// Topologies:
//   - Path(n):          0→1→…→n-1.
//   - Cycle(n):         Path(n) plus n-1→0.
//   - Star(n):          "Center" joined to n-1 leaves.
//   - Grid(rows, cols): 4-neighborhood lattice with "r,c" IDs.
//   - Complete(n):      every ordered pair (or unordered pair when undirected).
//   - RandomSparse(n,p): independent Bernoulli(p) trial per admissible pair.
//
// Errors are sentinel values (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the method tag.
// Option constructors panic on meaningless arguments; constructors never do.
//
// Determinism: a fixed seed and option list always yields the same graph.
package builder

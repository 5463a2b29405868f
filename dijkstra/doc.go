// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - Two engines produce the same distances. ModeHeap (default) keeps every
//     unexplored vertex in a position-tracked minheap.Heap keyed by its best
//     known distance and lowers keys in place. ModeReference keeps no heap:
//     each step scans every edge leaving the explored set and settles the
//     endpoint with the smallest dist(u)+w(u,v). It is quadratic and exists to
//     cross-check the heap engine.
//   - ModeCrossCheck runs both (concurrently, each run itself sequential) and
//     fails with ErrModeMismatch if they disagree.
//   - Vertices the source cannot reach are reported in Result.Unreachable and
//     never appear in Result.Distances, so +Inf never leaks into arithmetic.
//
// Heap engine loop:
//
//  1. ExtractMin: the extracted key is the vertex's final distance. A +Inf
//     key means everything left is unreachable and the loop stops.
//  2. Mark the vertex explored.
//  3. For every arc to an unexplored vertex v: if key(u)+w < key(v), lower
//     key(v) with DecreaseKey and record u as v's predecessor.
//  4. Repeat until the heap is empty or the target is settled.
//
// Complexity:
//
//   - ModeHeap:      Time O((V + E) log V), Space O(V).
//   - ModeReference: Time O(V·E),           Space O(V²) for the stored routes.
//
// Options:
//
//   - Source(id):                required, the start vertex.
//   - WithMode(m):               ModeHeap, ModeReference or ModeCrossCheck.
//   - WithReturnPath():          fill Result.Routes.
//   - WithTarget(id):            stop once id is settled (Result.Partial=true).
//   - WithMaxDistance(d):        vertices farther than d are reported unreachable.
//   - WithInfEdgeThreshold(w):   arcs with weight >= w are impassable.
//   - WithLogger(l):             debug logging of run start/finish.
//
// Errors (sentinel):
//
//   - ErrEmptySource     if the source ID is empty.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrInvalidGraph    if core validation fails (wraps the core sentinel,
//     e.g. core.ErrDanglingNeighbor or core.ErrNegativeWeight).
//   - ErrVertexNotFound  if the source is not a vertex of the graph.
//   - ErrTargetNotFound  if the target is not a vertex of the graph.
//   - ErrModeMismatch    if ModeCrossCheck engines disagree.
//   - ErrInternal        if the heap reports a missing vertex mid-run; this
//     is a defect, not an input problem.
//   - ErrBadMaxDistance / ErrBadInfThreshold are raised via panic by the
//     option constructors.
//
// Thread safety:
//
//   - A run snapshots the adjacency once and then owns all its state. Many
//     runs may share one *core.Graph; mutating the graph during a run is not
//     reflected in that run.
package dijkstra

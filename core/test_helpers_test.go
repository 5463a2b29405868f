// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pathfinder/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0  = 0.0
	Weight1  = 1.0
	Weight2  = 2.0
	Weight3  = 3.0
	Weight15 = 1.5
)

// buildTriangle returns the directed triangle A→B(1), B→C(2), A→C(3).
func buildTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(opts...)
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Weight3))

	return g
}

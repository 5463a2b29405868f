// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/stretchr/testify/require"
)

// engines lists the single-engine modes every behavioural test runs under.
var engines = []dijkstra.Mode{dijkstra.ModeHeap, dijkstra.ModeReference}

// knownAdjacency is the fixed regression graph:
//
//	0 →(8) 1 →(14) 2 →(12) 4
//	0 →(15) 3,  1 →(3) 3,  3 →(7) 2,  3 →(17) 4,  4 →(0) 4
var knownAdjacency = map[string]map[string]float64{
	"0": {"1": 8, "3": 15},
	"1": {"2": 14, "3": 3},
	"2": {"4": 12},
	"3": {"2": 7, "4": 17},
	"4": {"4": 0},
}

func knownGraph(t testing.TB) *core.Graph {
	t.Helper()

	g, err := core.FromAdjacency(knownAdjacency)
	require.NoError(t, err)

	return g
}

// mustRun calls Dijkstra and fails the test on error.
func mustRun(t testing.TB, g *core.Graph, opts ...dijkstra.Option) *dijkstra.Result {
	t.Helper()

	res, err := dijkstra.Dijkstra(g, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

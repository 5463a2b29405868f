// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA), "re-adding a vertex is a no-op")

	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexB))
	assert.False(t, g.HasVertex(VertexEmpty))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA), "directed by default")

	w, ok := g.Weight(VertexB, VertexC)
	require.True(t, ok)
	assert.Equal(t, Weight2, w)
}

func TestAddEdge_RejectsBadInput(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge(VertexEmpty, VertexB, Weight1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexEmpty, Weight1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB, -Weight1), core.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB, math.Inf(1)), core.ErrBadWeight)
	assert.Zero(t, g.VertexCount(), "rejected edges must not create vertices")
}

func TestAddEdge_ReplacesWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight3))
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight15))

	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, Weight15, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Undirected(t *testing.T) {
	g := buildTriangle(t, core.WithDirected(false))

	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.True(t, g.HasEdge(VertexC, VertexA))
	assert.Equal(t, 6, g.EdgeCount())

	require.NoError(t, g.RemoveEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddEdge(VertexA, VertexA, Weight0))

	assert.True(t, g.HasEdge(VertexA, VertexA))
	assert.Equal(t, 1, g.EdgeCount(), "a loop is never mirrored")
}

func TestRemoveEdge_NotFound(t *testing.T) {
	g := buildTriangle(t)
	assert.ErrorIs(t, g.RemoveEdge(VertexC, VertexA), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(VertexX, VertexA), core.ErrEdgeNotFound)
}

func TestRemoveVertex(t *testing.T) {
	g := buildTriangle(t)

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, []string{VertexA, VertexC}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(VertexA, VertexB))

	assert.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
}

func TestNeighbors(t *testing.T) {
	g := buildTriangle(t)

	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB, Weight: Weight1},
		{From: VertexA, To: VertexC, Weight: Weight3},
	}, nbrs)

	ids, err := g.NeighborIDs(VertexC)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = g.Neighbors(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexC, VertexA, Weight1))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight3))

	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB, Weight: Weight3},
		{From: VertexA, To: VertexC, Weight: Weight2},
		{From: VertexC, To: VertexA, Weight: Weight1},
	}, g.Edges())
}

func TestAdjacencySnapshots(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddVertex(VertexD))

	list := g.AdjacencyList()
	require.Len(t, list, 4)
	assert.Empty(t, list[VertexD])
	assert.Len(t, list[VertexA], 2)

	adj := g.Adjacency()
	adj[VertexA][VertexD] = Weight1
	assert.False(t, g.HasEdge(VertexA, VertexD), "Adjacency must return a copy")
}

func TestSnapshot_MatchesAdjacencyList(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddVertex(VertexD))

	snap, err := g.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, g.AdjacencyList(), snap)
}

func TestCloneAndClear(t *testing.T) {
	g := buildTriangle(t)
	clone := g.Clone()

	require.NoError(t, clone.RemoveEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.Equal(t, 2, clone.EdgeCount())
	assert.Equal(t, g.Directed(), clone.Directed())

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 3, clone.VertexCount())
}

// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomGraph builds a seeded graph on n vertices: a backbone path plus
// G(n, p) arcs with integer weights in [0, 20].
func randomGraph(t testing.TB, seed int64, n int, p float64, directed bool) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(0, 20)},
		builder.Path(n),
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

// assertRoutesConsistent checks that every route starts at the source,
// ends at its key, follows real arcs and sums to the reported distance.
func assertRoutesConsistent(t *testing.T, g *core.Graph, res *dijkstra.Result) {
	t.Helper()

	for id, route := range res.Routes {
		require.NotEmpty(t, route)
		assert.Equal(t, res.Source, route[0])
		assert.Equal(t, id, route[len(route)-1])

		sum := 0.0
		for i := 0; i+1 < len(route); i++ {
			w, ok := g.Weight(route[i], route[i+1])
			require.True(t, ok, "route to %s uses missing arc %s→%s", id, route[i], route[i+1])
			sum += w
		}
		assert.InDelta(t, res.Distances[id], sum, 1e-9, "route to %s", id)
	}
}

func TestCrossCheck_RandomGraphs(t *testing.T) {
	const trials = 40

	for seed := int64(1); seed <= trials; seed++ {
		directed := seed%2 == 0
		n := 5 + int(seed)%20
		g := randomGraph(t, seed, n, 0.15, directed)

		// Sources at both ends of the backbone: "0" reaches all, the last
		// vertex usually leaves some nodes unreachable on directed graphs.
		for _, src := range []string{"0", fmt.Sprint(n - 1)} {
			t.Run(fmt.Sprintf("seed=%d/src=%s", seed, src), func(t *testing.T) {
				res, err := dijkstra.CrossCheck(context.Background(), g,
					dijkstra.Source(src), dijkstra.WithReturnPath())
				require.NoError(t, err)
				assert.Equal(t, dijkstra.ModeCrossCheck, res.Mode)
				assert.Equal(t, g.VertexCount(), len(res.Distances)+len(res.Unreachable))
				assertRoutesConsistent(t, g, res)
			})
		}
	}
}

// TestCrossCheck_TargetWithTies stops both engines at a target on graphs
// with weights in {1, 2}, where many vertices share the target's distance
// and the engines may settle different tied vertices before stopping.
func TestCrossCheck_TargetWithTies(t *testing.T) {
	const (
		trials = 60
		n      = 12
	)

	for seed := int64(1); seed <= trials; seed++ {
		g, err := builder.BuildGraph(
			nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 2)},
			builder.Path(n),
			builder.RandomSparse(n, 0.3),
		)
		require.NoError(t, err)

		full := mustRun(t, g, dijkstra.Source("0"))
		target := fmt.Sprint(rand.New(rand.NewSource(seed)).Intn(n))

		t.Run(fmt.Sprintf("seed=%d/target=%s", seed, target), func(t *testing.T) {
			res, err := dijkstra.CrossCheck(context.Background(), g,
				dijkstra.Source("0"), dijkstra.WithTarget(target), dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.True(t, res.Partial)
			assert.Equal(t, target, res.Order[len(res.Order)-1])
			assert.Equal(t, full.Distances[target], res.Distances[target])
			assertRoutesConsistent(t, g, res)
		})
	}
}

func TestCrossCheck_ViaMode(t *testing.T) {
	g := knownGraph(t)

	res := mustRun(t, g, dijkstra.Source("0"), dijkstra.WithMode(dijkstra.ModeCrossCheck))
	assert.Equal(t, dijkstra.ModeCrossCheck, res.Mode)
	assert.Equal(t, 18.0, res.Distances["2"])
}

func TestCrossCheck_Errors(t *testing.T) {
	g := knownGraph(t)

	_, err := dijkstra.CrossCheck(context.Background(), g, dijkstra.Source("missing"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.CrossCheck(ctx, g, dijkstra.Source("0"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgree(t *testing.T) {
	base := func() *dijkstra.Result {
		return &dijkstra.Result{
			Source:      "a",
			Distances:   map[string]float64{"a": 0, "b": 0.3},
			Unreachable: []string{"c"},
		}
	}

	a, b := base(), base()
	assert.True(t, dijkstra.Agree(a, b))
	assert.True(t, dijkstra.Agree(nil, nil))
	assert.False(t, dijkstra.Agree(a, nil))

	b.Distances["b"] = 0.1 + 0.2
	assert.True(t, dijkstra.Agree(a, b), "float rounding along another route")

	b = base()
	b.Distances["b"] = 0.4
	assert.False(t, dijkstra.Agree(a, b))

	b = base()
	b.Unreachable = nil
	assert.False(t, dijkstra.Agree(a, b))

	b = base()
	b.Source = "b"
	assert.False(t, dijkstra.Agree(a, b))

	b = base()
	delete(b.Distances, "b")
	b.Distances["c"] = 0.3
	assert.False(t, dijkstra.Agree(a, b))

	b = base()
	b.Partial = true
	assert.False(t, dijkstra.Agree(a, b))
}

func TestAgree_PartialRuns(t *testing.T) {
	// Both runs stop at "t" (distance 2); "x" ties with it and only one
	// engine reached it first.
	a := &dijkstra.Result{
		Source:    "s",
		Partial:   true,
		Distances: map[string]float64{"s": 0, "m": 1, "x": 2, "t": 2},
		Order:     []string{"s", "m", "x", "t"},
	}
	b := &dijkstra.Result{
		Source:    "s",
		Partial:   true,
		Distances: map[string]float64{"s": 0, "m": 1, "t": 2},
		Order:     []string{"s", "m", "t"},
	}
	assert.True(t, dijkstra.Agree(a, b))
	assert.True(t, dijkstra.Agree(b, a))

	closer := *b
	closer.Distances = map[string]float64{"s": 0, "t": 2}
	closer.Order = []string{"s", "t"}
	assert.False(t, dijkstra.Agree(a, &closer), "m is closer than the target and must be settled by both")

	farther := *b
	farther.Distances = map[string]float64{"s": 0, "m": 1, "t": 2.5}
	assert.False(t, dijkstra.Agree(a, &farther), "target distance differs")

	other := *a
	other.Order = []string{"s", "m", "t", "x"}
	assert.False(t, dijkstra.Agree(&other, b), "runs stopped at different vertices")

	empty := *b
	empty.Order = nil
	assert.False(t, dijkstra.Agree(a, &empty))
}

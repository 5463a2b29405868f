// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// ExampleDijkstra runs the heap engine over a small road network and
// prints distances, the settle order and one route.
func ExampleDijkstra() {
	g, _ := core.FromAdjacency(map[string]map[string]float64{
		"0": {"1": 8, "3": 15},
		"1": {"2": 14, "3": 3},
		"2": {"4": 12},
		"3": {"2": 7, "4": 17},
		"4": {},
	})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("0"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances)
	fmt.Println(res.Order)
	route, _ := res.Route("4")
	fmt.Println(route)
	// Output:
	// map[0:0 1:8 2:18 3:11 4:28]
	// [0 1 3 2 4]
	// [0 1 3 4]
}

// ExampleDijkstra_unreachable shows how vertices with no route are reported.
func ExampleDijkstra_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 2)
	_ = g.AddEdge("c", "a", 1)
	_ = g.AddVertex("d")

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithMode(dijkstra.ModeReference))
	fmt.Println(res.Distances, res.Unreachable)
	d, ok := res.Distance("c")
	fmt.Println(d, ok)
	// Output:
	// map[a:0 b:2] [c d]
	// +Inf false
}

// ExampleDijkstra_target stops as soon as the target is settled.
func ExampleDijkstra_target() {
	g, _ := core.FromAdjacency(map[string]map[string]float64{
		"s": {"m": 1, "t": 5},
		"m": {"t": 1},
		"t": {"z": 1},
		"z": {},
	})

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("s"), dijkstra.WithTarget("t"), dijkstra.WithReturnPath())
	fmt.Println(res.Partial, res.Distances["t"], res.Routes["t"])
	// Output:
	// true 2 [s m t]
}

// ExampleWithInfEdgeThreshold finds the fastest drive across six city
// intersections. Closed roads carry a travel time at the threshold and are
// never relaxed, so G, reachable only through a closed road, is cut off.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]---X---[G]
//	  |          \
//	5 |           \10
//	  |            \
//	 [D]---6--[F]--3--[E]
func ExampleWithInfEdgeThreshold() {
	const closed = 1e9

	g := core.NewGraph(core.WithDirected(false))
	roads := []struct {
		u, v    string
		minutes float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "E", 10},
		{"C", "G", closed},
		{"D", "F", 6},
		{"E", "F", 3},
	}
	for _, r := range roads {
		if err := g.AddEdge(r.u, r.v, r.minutes); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.WithReturnPath(),
		dijkstra.WithInfEdgeThreshold(closed),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, _ := res.Route("F")
	for i := 0; i+1 < len(route); i++ {
		u, v := route[i], route[i+1]
		fmt.Printf("%s → %s : %g min\n", u, v, res.Distances[v]-res.Distances[u])
	}
	fmt.Printf("total: %g min\n", res.Distances["F"])
	fmt.Println("cut off:", res.Unreachable)
	// Output:
	// A → C : 2 min
	// C → B : 1 min
	// B → D : 5 min
	// D → F : 6 min
	// total: 14 min
	// cut off: [G]
}

// ExampleDijkstra_grid walks a unit-cost 3×3 lattice corner to corner.
func ExampleDijkstra_grid() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(1)},
		builder.Grid(3, 3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := dijkstra.Dijkstra(g,
		dijkstra.Source(builder.GridID(0, 0)),
		dijkstra.WithTarget(builder.GridID(2, 2)),
	)
	fmt.Println(res.Distances[builder.GridID(2, 2)], len(res.Order), res.Partial)
	// Output:
	// 4 9 true
}

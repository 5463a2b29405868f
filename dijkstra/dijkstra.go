// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/minheap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g using the engine selected by WithMode.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must pass core validation (ErrInvalidGraph wrapping the core error).
//  4. g must contain Source (ErrVertexNotFound).
//  5. g must contain Target, if one is set (ErrTargetNotFound).
//
// Complexity:
//
//   - ModeHeap:      Time O((V + E) log V), Space O(V)
//   - ModeReference: Time O(V·E),           Space O(V²)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Mode == ModeCrossCheck {
		return CrossCheck(context.Background(), g, opts...)
	}

	// 2) Validate inputs and snapshot the adjacency once
	adj, err := prepare(g, cfg)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("dijkstra: run started",
		slog.String("mode", cfg.Mode.String()),
		slog.String("source", cfg.Source),
		slog.Int("vertices", len(adj)),
	)

	// 3) Run the selected engine
	var st *state
	switch cfg.Mode {
	case ModeHeap:
		st, err = runHeap(adj, cfg)
	case ModeReference:
		st = runReference(adj, cfg)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, cfg.Mode)
	}
	if err != nil {
		return nil, err
	}

	res := st.result(adj, cfg)
	cfg.Logger.Debug("dijkstra: run finished",
		slog.String("mode", cfg.Mode.String()),
		slog.Int("settled", len(res.Order)),
		slog.Int("unreachable", len(res.Unreachable)),
		slog.Bool("partial", res.Partial),
	)

	return res, nil
}

// prepare performs the structural checks and returns the adjacency snapshot.
func prepare(g *core.Graph, cfg Options) (map[string][]core.Edge, error) {
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	adj, err := g.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if _, ok := adj[cfg.Source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" {
		if _, ok := adj[cfg.Target]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
		}
	}

	return adj, nil
}

// state is the bookkeeping shared by both engines: explored flags, final
// distances, predecessors and the settle order.
type state struct {
	explored map[string]bool
	dist     map[string]float64
	prev     map[string]string
	routes   map[string][]string // filled by the reference engine only
	order    []string
	partial  bool
}

func newState(n int) *state {
	return &state{
		explored: make(map[string]bool, n),
		dist:     make(map[string]float64, n),
		prev:     make(map[string]string, n),
		order:    make([]string, 0, n),
	}
}

// settle finalizes v at distance d. It reports whether the run must stop
// because v is the target.
func (s *state) settle(v string, d float64, cfg Options) bool {
	s.explored[v] = true
	s.dist[v] = d
	s.order = append(s.order, v)
	if cfg.Target != "" && v == cfg.Target {
		s.partial = true
		return true
	}

	return false
}

// result assembles the public Result from the final state.
func (s *state) result(adj map[string][]core.Edge, cfg Options) *Result {
	res := &Result{
		Source:    cfg.Source,
		Mode:      cfg.Mode,
		Distances: s.dist,
		Order:     s.order,
		Partial:   s.partial,
	}

	if !s.partial {
		for _, id := range sortedIDs(adj) {
			if !s.explored[id] {
				res.Unreachable = append(res.Unreachable, id)
			}
		}
	}

	if cfg.ReturnPath {
		if s.routes != nil {
			res.Routes = s.routes
		} else {
			res.Routes = buildRoutes(cfg.Source, s.order, s.prev)
		}
	}

	return res
}

// heapRunner holds the mutable state for a single heap-accelerated run.
type heapRunner struct {
	adj      map[string][]core.Edge
	options  Options
	frontier *minheap.Heap[string, float64]
	*state
}

// runHeap seeds the frontier with every vertex (source 0, all others +Inf)
// and drains it. Seeding runs in sorted ID order, so equal keys leave the
// heap in the same order on every run.
func runHeap(adj map[string][]core.Edge, cfg Options) (*state, error) {
	entries := make([]minheap.Entry[string, float64], 0, len(adj))
	for _, id := range sortedIDs(adj) {
		key := math.Inf(1)
		if id == cfg.Source {
			key = 0
		}
		entries = append(entries, minheap.Entry[string, float64]{Node: id, Key: key})
	}
	frontier, err := minheap.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	r := &heapRunner{
		adj:      adj,
		options:  cfg,
		frontier: frontier,
		state:    newState(len(adj)),
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.state, nil
}

// process is the core loop. It stops when the frontier is empty, when the
// smallest key is +Inf or beyond MaxDistance, or when the target is settled.
func (r *heapRunner) process() error {
	for !r.frontier.IsEmpty() {
		item, err := r.frontier.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}

		// everything still in the frontier is at least this far
		if math.IsInf(item.Key, 1) || item.Key > r.options.MaxDistance {
			return nil
		}

		if r.settle(item.Node, item.Key, r.options) {
			return nil
		}

		if err = r.relax(item.Node, item.Key); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the frontier key of every unexplored neighbor of u that is
// strictly closer through u.
func (r *heapRunner) relax(u string, du float64) error {
	for _, e := range r.adj[u] {
		if r.explored[e.To] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		candidate := du + e.Weight
		if candidate > r.options.MaxDistance {
			continue
		}

		current, ok := r.frontier.Key(e.To)
		if !ok {
			return fmt.Errorf("%w: %q is neither explored nor in the frontier", ErrInternal, e.To)
		}
		// strict: equal paths keep the first predecessor found
		if candidate >= current {
			continue
		}

		if err := r.frontier.DecreaseKey(e.To, candidate); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		r.prev[e.To] = u
	}

	return nil
}

func sortedIDs(adj map[string][]core.Edge) []string {
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathfinder/internal/lib/logger/handlers/slogdiscard"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidGraph indicates a structural problem found before the run.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target vertex does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrUnknownMode indicates an unrecognised mode name.
	ErrUnknownMode = errors.New("dijkstra: unknown mode")

	// ErrModeMismatch indicates that the heap and reference engines disagree.
	ErrModeMismatch = errors.New("dijkstra: heap and reference results differ")

	// ErrInternal indicates a broken invariant between the run and its heap.
	ErrInternal = errors.New("dijkstra: internal invariant violated")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable returns the distance of a vertex the source cannot reach
// (+Inf). It is never stored in Result.Distances; use Result.Distance to
// tell the cases apart.
func Unreachable() float64 { return math.Inf(1) }

// Mode selects the engine.
type Mode int

const (
	// ModeHeap runs the heap-accelerated engine.
	ModeHeap Mode = iota

	// ModeReference runs the quadratic engine without a heap.
	ModeReference

	// ModeCrossCheck runs both engines and compares them.
	ModeCrossCheck
)

var modeNames = [...]string{
	ModeHeap:       "heap",
	ModeReference:  "reference",
	ModeCrossCheck: "crosscheck",
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "heap", "reference" or "crosscheck" to a Mode. The empty
// string selects ModeHeap.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeHeap, nil
	}
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}

	return ModeHeap, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options configures a run.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – optional vertex ID; the run stops once it is settled.
// Mode             – engine selection.
// ReturnPath       – if true, Result.Routes is filled.
// MaxDistance      – vertices farther than this are reported unreachable. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ this are skipped. Default +Inf.
type Options struct {
	Source           string
	Target           string
	Mode             Mode
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start vertex. Must be called.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the run as soon as id is settled. Vertices not settled by
// then are absent from both Distances and Unreachable, and Result.Partial is set.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMode selects the engine.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithReturnPath enables route reconstruction in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: a vertex whose shortest distance would
// exceed max is reported unreachable. Panics with ErrBadMaxDistance if max is
// negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as impassable.
// Panics with ErrBadInfThreshold if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes run diagnostics to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options for source with every knob at its default:
// ModeHeap, no routes, no target, no distance cap, no impassable arcs.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Mode:             ModeHeap,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slogdiscard.NewDiscardLogger(),
	}
}

// Result is the outcome of one run.
type Result struct {
	// Source is the start vertex.
	Source string

	// Mode is the engine that produced the result.
	Mode Mode

	// Distances holds the final distance of every settled vertex.
	Distances map[string]float64

	// Unreachable lists, sorted, every vertex proven unreachable from Source
	// (within MaxDistance). Empty when Partial is set.
	Unreachable []string

	// Routes maps each settled vertex to one shortest route starting at
	// Source. Nil unless WithReturnPath was given.
	Routes map[string][]string

	// Order lists vertices in the order they were settled.
	Order []string

	// Partial reports that the run stopped at the target before exhausting
	// the graph.
	Partial bool
}

// Distance returns the shortest distance to id and whether id was settled.
// For a vertex that was not settled it returns Unreachable(), false.
func (r *Result) Distance(id string) (float64, bool) {
	d, ok := r.Distances[id]
	if !ok {
		return Unreachable(), false
	}

	return d, true
}

// Reachable reports whether id was settled.
func (r *Result) Reachable(id string) bool {
	_, ok := r.Distances[id]
	return ok
}

// Route returns a copy of one shortest route from Source to id.
func (r *Result) Route(id string) ([]string, bool) {
	route, ok := r.Routes[id]
	if !ok {
		return nil, false
	}
	out := make([]string, len(route))
	copy(out, route)

	return out, true
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
	"golang.org/x/sync/errgroup"
)

// distanceTolerance bounds the relative difference Agree accepts between
// two distances that were summed along different, equally short routes.
const distanceTolerance = 1e-9

// CrossCheck runs the heap and reference engines on g and returns the heap
// result if both agree. The two runs execute concurrently; each is itself
// sequential and owns its state. ctx is checked before either run starts.
//
// Errors:
//   - any validation error of Dijkstra.
//   - ErrModeMismatch (with the heap result) if the engines disagree.
func CrossCheck(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	modes := [2]Mode{ModeHeap, ModeReference}
	var results [2]*Result

	eg, ctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		i, m := i, m // per-iteration copies (go directive lowered to 1.21 for the local toolchain)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Dijkstra(g, withMode(opts, m)...)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	heapRes, refRes := results[0], results[1]
	if !Agree(heapRes, refRes) {
		return heapRes, fmt.Errorf("%w: source %q", ErrModeMismatch, heapRes.Source)
	}
	heapRes.Mode = ModeCrossCheck

	return heapRes, nil
}

// Agree reports whether a and b describe the same shortest-path tree up to
// route choice: same source, same partial flag, equal distances on every
// vertex both settled and the same unreachable set.
//
// Two partial runs must have stopped at the same target with the same
// distance. Their settled sets may differ only in vertices tied with the
// target, since either engine may pop those before or after it.
func Agree(a, b *Result) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Source != b.Source || a.Partial != b.Partial {
		return false
	}
	if !slices.Equal(a.Unreachable, b.Unreachable) {
		return false
	}
	if a.Partial {
		return agreePartial(a, b)
	}
	if len(a.Distances) != len(b.Distances) {
		return false
	}
	for id, da := range a.Distances {
		db, ok := b.Distances[id]
		if !ok || !closeEnough(da, db) {
			return false
		}
	}

	return true
}

// agreePartial compares two runs that stopped early at their last settled
// vertex.
func agreePartial(a, b *Result) bool {
	if len(a.Order) == 0 || len(b.Order) == 0 {
		return false
	}
	target := a.Order[len(a.Order)-1]
	if b.Order[len(b.Order)-1] != target {
		return false
	}
	limit, ok := b.Distances[target]
	if !ok || !closeEnough(a.Distances[target], limit) {
		return false
	}

	return tiedOrEqual(a.Distances, b.Distances, limit) &&
		tiedOrEqual(b.Distances, a.Distances, limit)
}

// tiedOrEqual reports whether every vertex in x is either settled in y at a
// matching distance or missing from y while tied with limit.
func tiedOrEqual(x, y map[string]float64, limit float64) bool {
	for id, dx := range x {
		dy, ok := y[id]
		switch {
		case ok && !closeEnough(dx, dy):
			return false
		case !ok && !closeEnough(dx, limit):
			return false
		}
	}

	return true
}

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= distanceTolerance*scale
}

// withMode returns a fresh option slice ending with WithMode(m), so
// concurrent callers never append into a shared backing array.
func withMode(opts []Option, m Mode) []Option {
	out := make([]Option, len(opts), len(opts)+1)
	copy(out, opts)

	return append(out, WithMode(m))
}

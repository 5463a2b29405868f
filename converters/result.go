// SPDX-License-Identifier: MIT

// File: result.go
// Role: text rendering of a shortest-path result.

package converters

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/pathfinder/dijkstra"
)

const (
	unreachableMark = "unreachable"
	noRouteMark     = "-"
	routeSeparator  = "→"
)

// FormatResult writes res as a table with one row per vertex, sorted by ID:
//
//	node  distance     route
//	a     0            a
//	b     2.5          a→b
//	c     unreachable  -
//
// The route column is "-" when routes were not requested. Vertices that a
// partial run neither settled nor ruled out are omitted.
func FormatResult(w io.Writer, res *dijkstra.Result) error {
	ids := make([]string, 0, len(res.Distances)+len(res.Unreachable))
	for id := range res.Distances {
		ids = append(ids, id)
	}
	ids = append(ids, res.Unreachable...)
	sort.Strings(ids)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tdistance\troute")
	for _, id := range ids {
		dist := unreachableMark
		if d, ok := res.Distance(id); ok {
			dist = strconv.FormatFloat(d, 'g', -1, 64)
		}
		route := noRouteMark
		if r, ok := res.Route(id); ok {
			route = strings.Join(r, routeSeparator)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, dist, route)
	}

	return tw.Flush()
}

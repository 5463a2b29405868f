// SPDX-License-Identifier: MIT

// File: text.go
// Role: adjacency text format reader.

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
)

// ErrSyntax reports a malformed line in the adjacency text format.
var ErrSyntax = errors.New("converters: syntax error")

const (
	commentPrefix = "#"
	pairSeparator = ","
)

// ParseAdjacency reads the adjacency text format from r into a new graph.
// directed=false mirrors every pair, so each undirected edge may be listed
// once or twice; a second listing overwrites the weight.
//
// Errors:
//   - ErrSyntax: a pair without exactly one comma or with a bad number.
//   - core.ErrNegativeWeight / core.ErrBadWeight: a rejected weight.
//   - any read error of r.
//
// Every line error is prefixed with "line N:".
func ParseAdjacency(r io.Reader, directed bool) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(directed))

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if err := parseLine(g, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: read adjacency: %w", err)
	}

	return g, nil
}

func parseLine(g *core.Graph, line string) error {
	fields := strings.Fields(line)
	from := fields[0]
	if strings.Contains(from, pairSeparator) {
		return fmt.Errorf("%w: vertex %q contains %q", ErrSyntax, from, pairSeparator)
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}

	for _, f := range fields[1:] {
		to, weight, err := parsePair(f)
		if err != nil {
			return err
		}
		if err = g.AddEdge(from, to, weight); err != nil {
			return err
		}
	}

	return nil
}

// parsePair splits "neighbor,weight".
func parsePair(field string) (string, float64, error) {
	to, ws, ok := strings.Cut(field, pairSeparator)
	if !ok || to == "" || strings.Contains(ws, pairSeparator) {
		return "", 0, fmt.Errorf("%w: want neighbor,weight, got %q", ErrSyntax, field)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: weight %q: %w", ErrSyntax, ws, err)
	}

	return to, w, nil
}

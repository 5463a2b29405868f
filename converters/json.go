// SPDX-License-Identifier: MIT

// File: json.go
// Role: JSON adjacency reader/writer.

package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/pathfinder/core"
)

// ReadJSON decodes a {"node":{"neighbor":weight}} object from r and builds
// a graph with core.FromAdjacency, so dangling neighbors are rejected.
func ReadJSON(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var adj map[string]map[string]float64
	if err := json.NewDecoder(r).Decode(&adj); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrSyntax, err)
	}

	return core.FromAdjacency(adj, opts...)
}

// WriteJSON encodes g as an indented adjacency object. encoding/json sorts
// map keys, so the output is deterministic.
func WriteJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Adjacency()); err != nil {
		return fmt.Errorf("converters: write json: %w", err)
	}

	return nil
}

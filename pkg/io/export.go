package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// WriteJSON encodes g as an indented JSON graph document and writes it to w.
// Endpoints are written as bare IDs. The output can be re-read with
// [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	return WriteParts(g.Nodes(), g.Links(), w)
}

// WriteParts encodes a node list and a link list as a graph document without
// checking that the links reference the nodes. Use it for derived structures
// such as the domain meta-graph, whose membership links point outside its
// own node set.
func WriteParts(nodes []graph.Node, links []graph.Link, w io.Writer) error {
	out := document{
		Nodes: make([]node, len(nodes)),
		Links: make([]link, len(links)),
	}
	for i, n := range nodes {
		out.Nodes[i] = node{
			ID:    n.ID,
			Name:  n.Name,
			Type:  string(n.Type),
			Color: n.Color,
			Data:  n.Data,
		}
	}
	for i, l := range links {
		out.Links[i] = link{
			Source:        endpoint(l.Source),
			Target:        endpoint(l.Target),
			Type:          string(l.Type),
			Weight:        l.Weight,
			Strength:      l.Strength,
			StrengthDelta: l.StrengthDelta,
			Curvature:     l.Curvature,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

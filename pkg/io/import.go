package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// ErrMissingLinks is returned by [ReadLinks] when the input is neither an
// array of links nor an object with a "links" array.
var ErrMissingLinks = errors.New("no links array")

type document struct {
	Nodes []node `json:"nodes"`
	Links []link `json:"links"`
}

type node struct {
	ID    string         `json:"id"`
	Name  string         `json:"name,omitempty"`
	Type  string         `json:"type,omitempty"`
	Color string         `json:"color,omitempty"`
	Data  graph.Metadata `json:"data,omitempty"`
}

type link struct {
	Source        endpoint `json:"source"`
	Target        endpoint `json:"target"`
	Type          string   `json:"type,omitempty"`
	Weight        float64  `json:"weight,omitempty"`
	Strength      float64  `json:"strength,omitempty"`
	StrengthDelta float64  `json:"strengthDelta,omitempty"`
	Curvature     float64  `json:"curvature,omitempty"`
}

func (l link) toGraph() graph.Link {
	return graph.Link{
		Source:        string(l.Source),
		Target:        string(l.Target),
		Type:          graph.LinkType(l.Type),
		Weight:        l.Weight,
		Strength:      l.Strength,
		StrengthDelta: l.StrengthDelta,
		Curvature:     l.Curvature,
	}
}

// ReadJSON decodes a JSON graph from r.
//
// The input must be an object with "nodes" and "links" arrays:
//
//	{
//	  "nodes": [{"id": "a", "type": "tool"}, {"id": "b"}],
//	  "links": [{"source": "a", "target": {"id": "b"}, "type": "tag"}]
//	}
//
// Link endpoints may be bare IDs or objects carrying an "id"; both decode to
// the plain ID. A weight of 0 or a missing weight leaves the type default in
// effect.
//
// ReadJSON returns an error if the JSON is malformed, a node ID is empty or
// duplicated, or a link references an unknown node. Errors wrap the graph
// sentinels, so errors.Is works against them. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	for _, n := range doc.Nodes {
		nd := graph.Node{
			ID:    n.ID,
			Name:  n.Name,
			Type:  graph.NodeType(n.Type),
			Color: n.Color,
			Data:  n.Data,
		}
		if err := g.AddNode(nd); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
	}
	for i, l := range doc.Links {
		if err := g.AddLink(l.toGraph()); err != nil {
			return nil, fmt.Errorf("link %d (%s-%s): %w", i, l.Source, l.Target, err)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON graph file at path. See [ReadJSON].
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadLinks decodes a bare link list from r. It accepts either a JSON array
// of links or a graph document, in which case only "links" is read. Endpoints
// are not checked against any node set.
//
// This is the format for MST subtrees and saved link selections.
func ReadLinks(r io.Reader) ([]graph.Link, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimSpace(data)

	var raw []link
	switch {
	case len(data) > 0 && data[0] == '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case len(data) > 0 && data[0] == '{':
		var doc struct {
			Links *[]link `json:"links"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		if doc.Links == nil {
			return nil, ErrMissingLinks
		}
		raw = *doc.Links
	default:
		return nil, ErrMissingLinks
	}

	links := make([]graph.Link, len(raw))
	for i, l := range raw {
		links[i] = l.toGraph()
	}
	return links, nil
}

// ImportLinks reads a link list file at path. See [ReadLinks].
func ImportLinks(path string) ([]graph.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLinks(f)
}

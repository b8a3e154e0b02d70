package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ccmap/pkg/graph"
)

var (
	// ErrInvalidSet is returned when a set definition has no name.
	ErrInvalidSet = errors.New("invalid set")

	// ErrDuplicateSet is returned when two sets share a name. Set names
	// become domain node IDs, so they must be unique.
	ErrDuplicateSet = errors.New("duplicate set name")

	// ErrUnsupportedFormat is returned for an unknown set file format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format is an input encoding for set files.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .toml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

type setFile struct {
	Sets []setDef `json:"sets" toml:"sets"`
}

type setDef struct {
	Name  string     `json:"name" toml:"name"`
	Color string     `json:"color" toml:"color"`
	Nodes []endpoint `json:"nodes" toml:"nodes"`
}

// ReadSets decodes set definitions from r.
//
// JSON input:
//
//	{"sets": [{"name": "web", "color": "#f0db4f", "nodes": ["p5", {"id": "three"}]}]}
//
// TOML input:
//
//	[[sets]]
//	name = "web"
//	color = "#f0db4f"
//	nodes = ["p5", "three"]
//
// Members may be bare IDs or id-bearing objects (inline tables in TOML).
// Member order is preserved. Set names must be non-empty and unique.
func ReadSets(r io.Reader, format Format) ([]graph.Set, error) {
	var file setFile
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	seen := make(map[string]bool, len(file.Sets))
	sets := make([]graph.Set, len(file.Sets))
	for i, s := range file.Sets {
		if s.Name == "" {
			return nil, fmt.Errorf("set %d: %w: empty name", i, ErrInvalidSet)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("set %q: %w", s.Name, ErrDuplicateSet)
		}
		seen[s.Name] = true
		sets[i] = graph.Set{Name: s.Name, Color: s.Color, Members: ids(s.Nodes)}
	}
	return sets, nil
}

// LoadSets reads a set file at path, choosing the format by extension.
func LoadSets(path string) ([]graph.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSets(f, FormatFromPath(path))
}

// WriteSets encodes sets as JSON in the format read by [ReadSets].
func WriteSets(sets []graph.Set, w io.Writer) error {
	file := setFile{Sets: make([]setDef, len(sets))}
	for i, s := range sets {
		nodes := make([]endpoint, len(s.Members))
		for j, m := range s.Members {
			nodes[j] = endpoint(m)
		}
		file.Sets[i] = setDef{Name: s.Name, Color: s.Color, Nodes: nodes}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MissingMembers returns the member IDs of sets that are not nodes of g, in
// set order. Callers use it to warn about stale set files.
func MissingMembers(g *graph.Graph, sets []graph.Set) []string {
	var out []string
	for _, id := range graph.MemberIDs(sets) {
		if !g.HasNode(id) {
			out = append(out, id)
		}
	}
	return out
}

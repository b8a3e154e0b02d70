package ccm

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Tool is a record of tools.json.
type Tool struct {
	Tags      []string          `json:"tags,omitempty"`
	DependsOn []string          `json:"dependsOn,omitempty"`
	Supports  []string          `json:"supports,omitempty"`
	Actions   map[string]Action `json:"actions,omitempty"`
}

// Action is something a tool does, with the techniques it applies.
type Action struct {
	Techniques []string `json:"techniques,omitempty"`
}

// Technique is a record of techniques.json.
type Technique struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// ToolEntry is a tool with its key.
type ToolEntry struct {
	Key string
	Tool
}

// TechniqueEntry is a technique with its key.
type TechniqueEntry struct {
	Key string
	Technique
}

// Dataset is the normalized map data: tools and techniques sorted by key and
// the sorted union of their tags.
type Dataset struct {
	Tools      []ToolEntry
	Techniques []TechniqueEntry
	Tags       []string
}

// NewDataset sorts the records by key and collects the tag union.
func NewDataset(tools map[string]Tool, techniques map[string]Technique) Dataset {
	var ds Dataset
	tags := make(map[string]bool)

	for _, k := range slices.Sorted(maps.Keys(tools)) {
		t := tools[k]
		ds.Tools = append(ds.Tools, ToolEntry{Key: k, Tool: t})
		for _, tag := range t.Tags {
			tags[tag] = true
		}
	}
	for _, k := range slices.Sorted(maps.Keys(techniques)) {
		t := techniques[k]
		ds.Techniques = append(ds.Techniques, TechniqueEntry{Key: k, Technique: t})
		for _, tag := range t.Tags {
			tags[tag] = true
		}
	}
	ds.Tags = slices.Sorted(maps.Keys(tags))
	return ds
}

// ActionNames returns the tool's action names in sorted order.
func (t Tool) ActionNames() []string {
	return slices.Sorted(maps.Keys(t.Actions))
}

// ReadTools decodes a tools.json document ({"tools": {key: record}}).
func ReadTools(r io.Reader) (map[string]Tool, error) {
	var doc struct {
		Tools map[string]Tool `json:"tools"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}
	return doc.Tools, nil
}

// ReadTechniques decodes a techniques.json document
// ({"techniques": {key: record}}).
func ReadTechniques(r io.Reader) (map[string]Technique, error) {
	var doc struct {
		Techniques map[string]Technique `json:"techniques"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode techniques: %w", err)
	}
	return doc.Techniques, nil
}

// Load reads tools.json and, if techniquesPath is not empty, techniques.json
// from local files and returns the normalized dataset.
func Load(toolsPath, techniquesPath string) (Dataset, error) {
	tools, err := readFile(toolsPath, ReadTools)
	if err != nil {
		return Dataset{}, err
	}
	var techniques map[string]Technique
	if techniquesPath != "" {
		if techniques, err = readFile(techniquesPath, ReadTechniques); err != nil {
			return Dataset{}, err
		}
	}
	return NewDataset(tools, techniques), nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

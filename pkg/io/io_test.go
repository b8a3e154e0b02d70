package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ccmap/pkg/graph"
)

const sample = `{
  "nodes": [
    {"id": "p5", "name": "p5.js", "type": "tool", "data": {"url": "https://p5js.org"}},
    {"id": "js", "name": "JavaScript", "type": "tag"},
    {"id": "canvas", "type": "technique"}
  ],
  "links": [
    {"source": "p5", "target": {"id": "js", "x": 12.5}, "type": "tag"},
    {"source": {"id": "p5"}, "target": "canvas", "type": "tool-technique", "weight": 2, "strengthDelta": 1}
  ]
}`

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"p5", "js", "canvas"}, g.NodeIDs())
	p5, ok := g.Node("p5")
	require.True(t, ok)
	assert.Equal(t, "p5.js", p5.Name)
	assert.Equal(t, graph.NodeTypeTool, p5.Type)
	assert.Equal(t, "https://p5js.org", p5.Data["url"])

	links := g.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "js", links[0].Target)
	assert.Equal(t, graph.LinkTypeTag, links[0].Type)
	assert.Equal(t, 10.0, links[0].EffectiveWeight())
	assert.Equal(t, "p5", links[1].Source)
	assert.Equal(t, 2.0, links[1].EffectiveWeight())
	assert.Equal(t, 1.0, links[1].StrengthDelta)
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"duplicate node", `{"nodes":[{"id":"a"},{"id":"a"}],"links":[]}`, graph.ErrDuplicateNodeID},
		{"empty id", `{"nodes":[{"id":""}],"links":[]}`, graph.ErrInvalidNodeID},
		{"unknown target", `{"nodes":[{"id":"a"}],"links":[{"source":"a","target":"b"}]}`, graph.ErrUnknownTargetNode},
		{"object without id", `{"nodes":[{"id":"a"}],"links":[{"source":"a","target":{"name":"a"}}]}`, ErrInvalidEndpoint},
		{"numeric endpoint", `{"nodes":[{"id":"a"}],"links":[{"source":"a","target":3}]}`, ErrInvalidEndpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ReadJSON(strings.NewReader(`{"nodes":`))
	assert.Error(t, err)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(sample))
	require.NoError(t, err)
	require.True(t, g.SetNodeColor("js", "#f0db4f"))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(g, &buf))
	assert.Contains(t, buf.String(), `"target": "js"`)

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
	assert.Equal(t, g.Links(), back.Links())
	js, _ := back.Node("js")
	assert.Equal(t, "#f0db4f", js.Color)
}

func TestExportImportJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, ExportJSON(g, path))

	back, err := ImportJSON(path)
	require.NoError(t, err)
	assert.Equal(t, g.LinkCount(), back.LinkCount())

	_, err = ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteParts_Dangling(t *testing.T) {
	nodes := []graph.Node{{ID: "domain:web", Type: graph.NodeTypeDomain}}
	links := []graph.Link{{Source: "p5", Target: "domain:web", Type: graph.LinkTypeDomain, StrengthDelta: 1}}

	var buf bytes.Buffer
	require.NoError(t, WriteParts(nodes, links, &buf))

	got, err := ReadLinks(&buf)
	require.NoError(t, err)
	assert.Equal(t, links, got)
}

func TestReadLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"array", `[{"source":"a","target":"b"},{"source":{"id":"b"},"target":"c","weight":2}]`, 2},
		{"document", sample, 2},
		{"empty array", `[]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links, err := ReadLinks(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Len(t, links, tt.want)
		})
	}

	_, err := ReadLinks(strings.NewReader(`{"nodes":[]}`))
	assert.ErrorIs(t, err, ErrMissingLinks)
	_, err = ReadLinks(strings.NewReader(`"links"`))
	assert.ErrorIs(t, err, ErrMissingLinks)
}

func TestReadSets_JSON(t *testing.T) {
	input := `{"sets": [
		{"name": "web", "color": "#f0db4f", "nodes": ["p5", {"id": "three"}]},
		{"name": "gpu", "color": "#5586a4", "nodes": []}
	]}`

	sets, err := ReadSets(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, graph.Set{Name: "web", Color: "#f0db4f", Members: []string{"p5", "three"}}, sets[0])
	assert.Empty(t, sets[1].Members)
}

func TestReadSets_TOML(t *testing.T) {
	input := `
[[sets]]
name = "web"
color = "#f0db4f"
nodes = ["p5", { id = "three" }]

[[sets]]
name = "gpu"
color = "#5586a4"
nodes = ["glsl"]
`
	sets, err := ReadSets(strings.NewReader(input), FormatTOML)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []string{"p5", "three"}, sets[0].Members)
	assert.Equal(t, "gpu", sets[1].Name)
}

func TestReadSets_Errors(t *testing.T) {
	_, err := ReadSets(strings.NewReader(`{"sets":[{"name":""}]}`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidSet)

	_, err = ReadSets(strings.NewReader(`{"sets":[{"name":"a"},{"name":"a"}]}`), FormatJSON)
	assert.ErrorIs(t, err, ErrDuplicateSet)

	_, err = ReadSets(strings.NewReader(`{}`), Format("yaml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadSets_ByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "sets.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[sets]]\nname = \"a\"\nnodes = [\"x\"]\n"), 0o644))

	sets, err := LoadSets(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sets[0].Members)

	var buf bytes.Buffer
	require.NoError(t, WriteSets(sets, &buf))
	jsonPath := filepath.Join(dir, "sets.json")
	require.NoError(t, os.WriteFile(jsonPath, buf.Bytes(), 0o644))

	back, err := LoadSets(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, sets, back)
}

func TestMissingMembers(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(sample))
	require.NoError(t, err)

	sets := []graph.Set{{Name: "a", Members: []string{"p5", "ghost", "js", "ghost"}}}
	assert.Equal(t, []string{"ghost"}, MissingMembers(g, sets))
}

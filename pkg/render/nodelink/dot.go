package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/render"
)

// Graphviz layout engines suited to undirected maps.
const (
	LayoutNeato = "neato"
	LayoutFDP   = "fdp"
	LayoutSFDP  = "sfdp"
	LayoutCirco = "circo"
	LayoutDot   = "dot"
)

// DefaultLayout is used when Options.Layout is empty.
const DefaultLayout = LayoutNeato

// Layouts lists the accepted layout engines.
var Layouts = []string{LayoutNeato, LayoutFDP, LayoutSFDP, LayoutCirco, LayoutDot}

// Options configures map rendering.
type Options struct {
	// Detailed includes node type and metadata in labels and the effective
	// weight on links.
	Detailed bool
	// Layout is the Graphviz engine (see [Layouts]). Empty means [DefaultLayout].
	Layout string
}

func (o Options) layout() string {
	if o.Layout == "" {
		return DefaultLayout
	}
	return o.Layout
}

// ToDOT converts a graph to undirected Graphviz DOT.
//
// Nodes are filled with their Color (white if unset) and shaped by type.
// Link pen width follows Strength, so a blended graph shows retained links by
// their inverse-degree weight; fading links (negative StrengthDelta) are
// dashed.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", opts.layout())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [color=\"#888888\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, l := range g.Links() {
		attrs := linkAttrs(l, opts.Detailed)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", l.Source, l.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", l.Source, l.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

var shapes = map[graph.NodeType]string{
	graph.NodeTypeTool:      "box",
	graph.NodeTypeTechnique: "ellipse",
	graph.NodeTypeTag:       "note",
	graph.NodeTypeDomain:    "doubleoctagon",
	graph.NodeTypeRoot:      "point",
}

func nodeAttrs(n graph.Node, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	if shape, ok := shapes[n.Type]; ok {
		attrs = append(attrs, "shape="+shape)
	}
	if n.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Color))
		if isDark(n.Color) {
			attrs = append(attrs, "fontcolor=white")
		}
	}
	return attrs
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.Label()
	}

	var parts []string
	if n.Type != "" {
		parts = append(parts, fmt.Sprintf("type: %s", n.Type))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Data)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Data[k]))
	}
	if len(parts) == 0 {
		return n.Label()
	}
	return n.Label() + "\n" + strings.Join(parts, "\n")
}

func linkAttrs(l graph.Link, detailed bool) []string {
	var attrs []string
	if l.Strength > 0 {
		attrs = append(attrs, fmt.Sprintf("penwidth=%.2f", 0.5+2.5*min(l.Strength, 1)))
	}
	if l.StrengthDelta < 0 {
		attrs = append(attrs, "style=dashed")
	}
	if l.Type == graph.LinkTypeTag {
		attrs = append(attrs, "color=\"#cccccc\"")
	}
	if detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(l.EffectiveWeight(), 'g', -1, 64)))
	}
	return attrs
}

// isDark reports whether a #rrggbb color needs light text. Other color forms
// are treated as light.
func isDark(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	v, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return false
	}
	r, g, b := float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)
	return 0.299*r+0.587*g+0.114*b < 128
}

// RenderSVG renders DOT source to SVG using Graphviz with the given layout
// engine (empty means [DefaultLayout]).
// Returns the SVG bytes ready for display or conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot, layout string) ([]byte, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(layout))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot, layout string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, layout)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot, layout string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, layout)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// Package nodelink renders the map as an undirected node-link diagram.
//
// # Overview
//
// This package turns a [graph.Graph] into Graphviz DOT and renders it with a
// force-directed engine. The analytics results show up directly in the
// picture: classification colors fill the nodes, and blended strengths set
// link widths.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot, "")
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot, "")
//	png, err := nodelink.RenderPNG(ctx, dot, "", 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: node labels include type and metadata, links show their
//     effective weight.
//   - Layout: Graphviz engine, one of [Layouts]. The default is neato.
//
// # Styling
//
// Tools are boxes, techniques ellipses, tags notes, domains double octagons
// and the domain root a point. Dark fill colors get white text.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink

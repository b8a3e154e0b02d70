// Package render provides output conversion for map visualizations.
//
// # Overview
//
// Map diagrams are produced as SVG by the [nodelink] subpackage. This package
// converts SVG to other formats using the external rsvg-convert tool (from
// librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot, "")
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/ccmap/pkg/render/nodelink
package render

package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/render/nodelink"
)

// Render generates output artifacts for g in the requested formats. The DOT
// source is built once and shared by every Graphviz format.
func Render(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(g, opts.NodelinkOptions())
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, g, dot, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(ctx context.Context, g *graph.Graph, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot, opts.Layout)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Layout, DefaultPNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot, opts.Layout)
	case FormatJSON:
		return marshalGraph(g)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

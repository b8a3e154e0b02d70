package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/pipeline"
	"github.com/matzehuels/ccmap/pkg/render/nodelink"
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	analysisFlags
	output   string
	formats  string
	layout   string
	detailed bool
	sets     string
}

// renderCommand creates the render command, which draws a graph with
// Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph to DOT, SVG, PNG, PDF or JSON",
		Long: `Render a graph to DOT, SVG, PNG, PDF or JSON.

Node fill follows the node color. Link width follows link strength. With
--sets the graph is colored by its closest reference sets first.

A single format is written to -o as given. Several formats share the base of
-o (or of the input file) and take the format as extension.`,
		Example: `  ccmap render map.json -f svg,png
  ccmap render map.json --sets domains.toml --layout sfdp -o map.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), dot, png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.layout, "layout", nodelink.DefaultLayout, "Graphviz layout engine")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with their type")
	cmd.Flags().StringVar(&opts.sets, "sets", "", "color nodes by these reference sets before rendering")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	if err := pipeline.ValidateLayout(opts.layout); err != nil {
		return err
	}

	g, err := pipeline.LoadGraph(ctx, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.sets != "" {
		sets, err := pipeline.LoadSets(opts.sets, g, c.Logger)
		if err != nil {
			return err
		}
		report, err := runner.Color(ctx, g, sets, opts.options(c.Logger))
		if err != nil {
			return err
		}
		if err := report.Result.Apply(g); err != nil {
			return err
		}
		c.Logger.Debug("colored graph", "classified", report.Result.Classified())
	}

	popts := opts.options(c.Logger)
	popts.Formats = formats
	popts.Layout = opts.layout
	popts.Detailed = opts.detailed

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()
	artifacts, cached, err := runner.RenderWithCacheInfo(ctx, g, popts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", input))
	printStats(g.NodeCount(), g.LinkCount(), cached)

	// Write in flag order.
	base := basePath(opts.output, input)
	for _, format := range slices.Compact(formats) {
		path := base + "." + format
		if len(formats) == 1 && opts.output != "" {
			path = opts.output
		}
		data := artifacts[format]
		if err := writeOutput(cmd, path, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/ccm"
	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// buildOpts holds the flags for the build command.
type buildOpts struct {
	output            string
	mst               string
	skipToolTags      bool
	skipTechniqueTags bool
	skipDependencies  bool
	skipSupports      bool
	skipTechniques    bool
}

// buildCommand creates the build command, which turns a Creative Coding Map
// dataset into a graph document.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <tools.json> [techniques.json]",
		Short: "Build a graph from a Creative Coding Map dataset",
		Long: `Build a graph from a Creative Coding Map dataset.

Tools, techniques and tags become nodes. Tags, dependencies, supported tools
and techniques become links. References to unknown tools or techniques are
skipped with a warning.`,
		Example: `  ccmap build tools.json techniques.json -o map.json
  ccmap build tools.json --skip-tags -o tools-only.json
  ccmap build tools.json techniques.json --mst tree.json -o tree-map.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			techniques := ""
			if len(args) == 2 {
				techniques = args[1]
			}
			return c.runBuild(cmd, args[0], techniques, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.mst, "mst", "", "replace generated links with the links of a saved tree")
	cmd.Flags().BoolVar(&opts.skipToolTags, "skip-tags", false, "omit tag links to tools")
	cmd.Flags().BoolVar(&opts.skipTechniqueTags, "skip-technique-tags", false, "omit tag links to techniques")
	cmd.Flags().BoolVar(&opts.skipDependencies, "skip-dependencies", false, "omit dependency links")
	cmd.Flags().BoolVar(&opts.skipSupports, "skip-supports", false, "omit support links")
	cmd.Flags().BoolVar(&opts.skipTechniques, "skip-techniques", false, "omit tool to technique links")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, tools, techniques string, opts buildOpts) error {
	prog := newProgress(c.Logger)

	var tree []graph.Link
	if opts.mst != "" {
		links, err := pipeline.LoadSubtree(opts.mst)
		if err != nil {
			return err
		}
		tree = links
	}

	g, err := pipeline.BuildGraph(cmd.Context(), tools, techniques, ccm.BuildOptions{
		SkipToolTags:      opts.skipToolTags,
		SkipTechniqueTags: opts.skipTechniqueTags,
		SkipDependencies:  opts.skipDependencies,
		SkipSupports:      opts.skipSupports,
		SkipTechniques:    opts.skipTechniques,
		MST:               tree,
		Logger:            c.Logger.Warnf,
	})
	if err != nil {
		return err
	}
	prog.done("Built graph from " + tools)

	if err := writeGraph(cmd, opts.output, g); err != nil {
		return err
	}
	printStats(g.NodeCount(), g.LinkCount(), false)
	if opts.output != "" {
		printNextStep("Render it", "ccmap render "+opts.output)
	}
	return nil
}

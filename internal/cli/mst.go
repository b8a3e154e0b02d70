package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// mstOpts holds the flags for the mst command.
type mstOpts struct {
	output  string
	edges   string
	seed    string
	subtree string
	refresh bool
}

// mstCommand creates the mst command for minimum spanning trees.
func (c *CLI) mstCommand() *cobra.Command {
	var opts mstOpts

	cmd := &cobra.Command{
		Use:   "mst <graph.json>",
		Short: "Build a minimum spanning tree",
		Long: `Build a minimum spanning tree of the graph.

The tree grows from --seed, or from the first link's source. With --subtree
a previously saved tree is extended instead, keeping its links in place.
--edges saves the tree links as a graph document that --subtree and
"ccmap build --mst" accept.`,
		Example: `  ccmap mst map.json --seed p5.js --edges tree.json
  ccmap mst next.json --subtree tree.json --edges next-tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed != "" && opts.subtree != "" {
				return fmt.Errorf("--seed and --subtree are mutually exclusive")
			}
			return c.runMST(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file (default: stdout)")
	cmd.Flags().StringVar(&opts.edges, "edges", "", "save the tree links to this file")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "node to grow the tree from")
	cmd.Flags().StringVar(&opts.subtree, "subtree", "", "saved tree to extend")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")

	return cmd
}

func (c *CLI) runMST(cmd *cobra.Command, input string, opts mstOpts) error {
	ctx := cmd.Context()
	g, err := pipeline.LoadGraph(ctx, input)
	if err != nil {
		return err
	}

	var subtree []graph.Link
	if opts.subtree != "" {
		if subtree, err = pipeline.LoadSubtree(opts.subtree); err != nil {
			return err
		}
		c.Logger.Debug("loaded subtree", "links", len(subtree))
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.SpanningTree(ctx, g, opts.seed, subtree, pipeline.Options{Refresh: opts.refresh, Logger: c.Logger})
	if err != nil {
		return err
	}

	res := report.Result
	printKeyValue("seed", res.Seed)
	printKeyValue("weight", fmt.Sprintf("%g", res.TotalWeight))
	if !res.Complete {
		printWarning("tree spans %d of %d nodes", len(res.Included), g.NodeCount())
	}
	printStats(len(res.Included), len(res.Edges), report.CacheHit)

	if opts.edges != "" {
		if err := writeParts(cmd, opts.edges, nil, res.Edges); err != nil {
			return err
		}
	}
	return writeJSON(cmd, opts.output, report)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// pathOpts holds the flags for the path command.
type pathOpts struct {
	output   string
	all      bool
	maxPaths int
	refresh  bool
}

// pathCommand creates the path command for shortest route queries.
func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path <graph.json> <from> <to>",
		Short: "Find the shortest route between two nodes",
		Long: `Find the shortest route between two nodes.

Links are undirected. Their weight is the explicit weight when set, otherwise
the default for the link type. Unreachable targets report a null distance.`,
		Example: `  ccmap path map.json p5.js three.js
  ccmap path map.json p5.js three.js --all --max-paths 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPath(cmd, args[0], args[1], args[2], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "list every shortest route")
	cmd.Flags().IntVar(&opts.maxPaths, "max-paths", pipeline.DefaultMaxPaths, "route cap for --all (negative: unlimited)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")

	return cmd
}

func (c *CLI) runPath(cmd *cobra.Command, input, from, to string, opts pathOpts) error {
	ctx := cmd.Context()
	g, err := pipeline.LoadGraph(ctx, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.Path(ctx, g, from, to, pipeline.Options{
		All:      opts.all,
		MaxPaths: opts.maxPaths,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		return err
	}

	res := report.Result
	if res.Distance.Reachable() {
		printKeyValue("distance", fmt.Sprintf("%g", float64(res.Distance)))
		for _, route := range res.Routes {
			printDetail("%s", strings.Join(route, " → "))
		}
	} else {
		printWarning("%s is not reachable from %s", to, from)
	}
	printStats(g.NodeCount(), g.LinkCount(), report.CacheHit)

	return writeJSON(cmd, opts.output, report)
}

// separationCommand creates the separation command, which reports the
// distance from one node to every other.
func (c *CLI) separationCommand() *cobra.Command {
	var (
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:     "separation <graph.json> <seed>",
		Short:   "Report the distance from a node to every other node",
		Example: `  ccmap separation map.json p5.js -o p5-distances.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := pipeline.LoadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			report, err := runner.Separation(ctx, g, args[1], pipeline.Options{Refresh: refresh, Logger: c.Logger})
			if err != nil {
				return err
			}

			reachable := 0
			for _, d := range report.Result.Distances {
				if d.Reachable() {
					reachable++
				}
			}
			printKeyValue("reachable", fmt.Sprintf("%d of %d", reachable, g.NodeCount()))
			printStats(g.NodeCount(), g.LinkCount(), report.CacheHit)

			return writeJSON(cmd, output, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

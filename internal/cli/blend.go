package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// blendOpts holds the flags for the blend command.
type blendOpts struct {
	output  string
	patch   bool
	refresh bool
}

// blendCommand creates the blend command, which computes the transition
// between a rendered graph and its next snapshot.
func (c *CLI) blendCommand() *cobra.Command {
	var opts blendOpts

	cmd := &cobra.Command{
		Use:   "blend <view.json> <next.json>",
		Short: "Blend a rendered graph into its next snapshot",
		Long: `Blend a rendered graph into its next snapshot.

Links present in both graphs are kept with strength 1/min(degree) of their
endpoints in the next snapshot. Links only in the view fade out. Links only in the next snapshot are added and fade in. The output
is the blended graph, or with --patch the analysis report.`,
		Example: `  ccmap blend view.json next.json -o blended.json
  ccmap blend view.json next.json --patch`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBlend(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.patch, "patch", false, "write the analysis report instead of the blended graph")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")

	return cmd
}

func (c *CLI) runBlend(cmd *cobra.Command, viewPath, nextPath string, opts blendOpts) error {
	ctx := cmd.Context()
	view, err := pipeline.LoadGraph(ctx, viewPath)
	if err != nil {
		return err
	}
	next, err := pipeline.LoadGraph(ctx, nextPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.Blend(ctx, view, next, pipeline.Options{Refresh: opts.refresh, Logger: c.Logger})
	if err != nil {
		return err
	}

	res := report.Result
	printKeyValue("retained", fmt.Sprintf("%d", res.Patch.Retained()))
	printKeyValue("removed", fmt.Sprintf("%d", res.Patch.Removed()))
	printKeyValue("appearing", fmt.Sprintf("%d", len(res.Appearing)))
	printStats(next.NodeCount(), next.LinkCount(), report.CacheHit)

	if opts.patch {
		return writeJSON(cmd, opts.output, report)
	}
	out, err := pipeline.Blended(view, next, res)
	if err != nil {
		return err
	}
	return writeGraph(cmd, opts.output, out)
}

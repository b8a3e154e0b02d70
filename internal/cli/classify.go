package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/classify"
	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// colorOpts holds the flags for the color command.
type colorOpts struct {
	analysisFlags
	sets   string
	output string
	patch  bool
}

// colorCommand creates the color command, which classifies every node
// against a set of reference sets.
func (c *CLI) colorCommand() *cobra.Command {
	var opts colorOpts

	cmd := &cobra.Command{
		Use:   "color <graph.json>",
		Short: "Color nodes by their closest reference set",
		Long: `Color nodes by their closest reference set.

Each node takes the color of the set it scores highest against. Ties go to
the set listed first. Nodes that reach no set keep their color. Sets are read
from JSON or TOML (by extension).`,
		Example: `  ccmap color map.json --sets domains.toml -o colored.json
  ccmap color map.json --sets domains.json --scorer nearest --patch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColor(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.sets, "sets", "", "reference set file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.patch, "patch", false, "write the analysis report instead of the colored graph")
	_ = cmd.MarkFlagRequired("sets")

	return cmd
}

func (c *CLI) runColor(cmd *cobra.Command, input string, opts colorOpts) error {
	ctx := cmd.Context()
	g, err := pipeline.LoadGraph(ctx, input)
	if err != nil {
		return err
	}
	sets, err := pipeline.LoadSets(opts.sets, g, c.Logger)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.Color(ctx, g, sets, opts.options(c.Logger))
	if err != nil {
		return err
	}

	patch := report.Result
	printKeyValue("classified", fmt.Sprintf("%d of %d", patch.Classified(), g.NodeCount()))
	printStats(g.NodeCount(), g.LinkCount(), report.CacheHit)

	if opts.patch {
		return writeJSON(cmd, opts.output, report)
	}
	if err := patch.Apply(g); err != nil {
		return err
	}
	return writeGraph(cmd, opts.output, g)
}

// domainsOpts holds the flags for the domains command.
type domainsOpts struct {
	analysisFlags
	sets        string
	nodes       string
	output      string
	withMembers bool
}

// domainsCommand creates the domains command, which builds the domain
// meta-graph.
func (c *CLI) domainsCommand() *cobra.Command {
	var opts domainsOpts

	cmd := &cobra.Command{
		Use:   "domains <graph.json>",
		Short: "Build a domain graph linking nodes to their closest sets",
		Long: `Build a domain graph linking nodes to their closest sets.

The output has a root node, one node per set linked to the root, and a
membership link from every classified node to its set. --with-members adds
the member nodes so the output is a self-contained graph.`,
		Example: `  ccmap domains map.json --sets domains.toml --with-members -o domains.json
  ccmap domains map.json --sets domains.toml --nodes p5.js,three.js`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDomains(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.sets, "sets", "", "reference set file (required)")
	cmd.Flags().StringVar(&opts.nodes, "nodes", "", "comma-separated nodes to classify (default: all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.withMembers, "with-members", false, "include the member nodes")
	_ = cmd.MarkFlagRequired("sets")

	return cmd
}

func (c *CLI) runDomains(cmd *cobra.Command, input string, opts domainsOpts) error {
	ctx := cmd.Context()
	g, err := pipeline.LoadGraph(ctx, input)
	if err != nil {
		return err
	}
	sets, err := pipeline.LoadSets(opts.sets, g, c.Logger)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.Domains(ctx, g, parseIDs(opts.nodes), sets, opts.options(c.Logger))
	if err != nil {
		return err
	}

	d := report.Result
	printKeyValue("domains", fmt.Sprintf("%d", len(sets)))
	printKeyValue("matches", fmt.Sprintf("%d", d.Matches()))
	printStats(len(d.Nodes), len(d.Links), report.CacheHit)

	if opts.withMembers {
		out, err := d.WithMembers(g)
		if err != nil {
			return err
		}
		return writeGraph(cmd, opts.output, out)
	}
	return writeDomains(cmd, opts.output, d)
}

// writeDomains writes the bare domain graph. Its membership links reference
// nodes outside its own node list.
func writeDomains(cmd *cobra.Command, path string, d classify.DomainGraph) error {
	return writeParts(cmd, path, d.Nodes, d.Links)
}

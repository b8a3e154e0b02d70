// Package cli implements the ccmap command-line interface.
//
// The CLI loads graphs and set files, runs analyses through a
// [pipeline.Runner] and writes JSON reports, derived graphs and rendered
// artifacts. It is built on cobra and logs with charmbracelet/log.
//
// # Commands
//
//   - build: Build a graph from a Creative Coding Map dataset
//   - path, separation: Shortest routes and distances
//   - mst: Minimum spanning tree, optionally extending a saved tree
//   - color, domains: Proximity classification against reference sets
//   - blend: Transition between two graph snapshots
//   - render: DOT, SVG, PDF, PNG or JSON output
//   - cache: Manage the analysis cache
//
// # Caching
//
// Results are cached under $XDG_CACHE_HOME/ccmap (default ~/.cache/ccmap).
// --redis (or CCMAP_REDIS_ADDR) selects a shared Redis instance instead, and
// --no-cache disables caching.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ccmap/pkg/buildinfo"
	"github.com/matzehuels/ccmap/pkg/cache"
	"github.com/matzehuels/ccmap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ccmap"

	// envRedisAddr selects the Redis cache when --redis is not given.
	envRedisAddr = "CCMAP_REDIS_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags
	noCache   bool
	redisAddr string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ccmap analyzes and renders knowledge-graph maps",
		Long: `ccmap analyzes knowledge graphs of tools, techniques and tags: shortest
paths, spanning trees, proximity classification against reference sets and
smooth transitions between graph snapshots.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable caching")
	root.PersistentFlags().StringVar(&c.redisAddr, "redis", os.Getenv(envRedisAddr), "Redis address or URL for a shared cache (env "+envRedisAddr+")")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.separationCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.domainsCommand())
	root.AddCommand(c.blendCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Tag()+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache picks the backend from the persistent flags: null with
// --no-cache, Redis when an address is set, the XDG file cache otherwise.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		c.Logger.Debug("using redis cache", "addr", c.redisAddr)
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/ccmap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// analysisFlags are shared by the classification commands.
type analysisFlags struct {
	scorer  string
	cutoff  float64
	refresh bool
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scorer, "scorer", pipeline.DefaultScorer, "proximity scorer: mean (default), nearest")
	cmd.Flags().Float64Var(&f.cutoff, "cutoff", 0, "ignore reference nodes farther than this distance (0: no cutoff)")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if cached")
}

func (f *analysisFlags) options(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Scorer:  f.scorer,
		Cutoff:  f.cutoff,
		Refresh: f.refresh,
		Logger:  logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// parseIDs parses a comma-separated node id list. Empty input gives nil.
func parseIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

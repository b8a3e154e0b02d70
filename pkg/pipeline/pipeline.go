// Package pipeline runs ccmap analyses with caching and instrumentation.
//
// The analytics packages (pathfind, mst, classify, blend) are pure and know
// nothing about files, caches or logging. This package is the layer the CLI
// (and any other front end) goes through: it loads inputs, validates options,
// keys results by a content hash of their inputs, stores them in a
// [cache.Cache] and emits [observability] hooks.
//
// # Usage
//
// Create a Runner and run analyses on a loaded graph:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	g, err := pipeline.LoadGraph(ctx, "graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := runner.Path(ctx, g, "p5", "three", pipeline.Options{All: true})
//	fmt.Println(report.Result.Distance, report.CacheHit)
//
// Render a graph:
//
//	artifacts, err := runner.Render(ctx, g, pipeline.Options{Formats: []string{"svg", "dot"}})
//	svg := artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ccmap/pkg/cache"
	"github.com/matzehuels/ccmap/pkg/classify"
	"github.com/matzehuels/ccmap/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultMaxPaths caps AllShortestPaths route reconstruction. A negative
	// MaxPaths in Options lifts the cap.
	DefaultMaxPaths = 64

	// DefaultScorer is the proximity scorer used by color and domains.
	DefaultScorer = classify.ScorerMean

	// DefaultPNGScale is the rasterization scale for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for analyses and rendering.
type Options struct {
	// Path options
	All      bool `json:"all,omitempty"`       // Return every shortest route, not just one
	MaxPaths int  `json:"max_paths,omitempty"` // Route cap for All (negative: unlimited)

	// Classification options
	Scorer string  `json:"scorer,omitempty"`
	Cutoff float64 `json:"cutoff,omitempty"` // Distances beyond the cutoff count as unreachable

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Layout   string   `json:"layout,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh skips cache lookups. Fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLayout checks that a Graphviz layout engine is supported.
func ValidateLayout(layout string) error {
	if !slices.Contains(nodelink.Layouts, layout) {
		return fmt.Errorf("invalid layout: %q (must be one of: %s)", layout, strings.Join(nodelink.Layouts, ", "))
	}
	return nil
}

// ValidateScorer checks that a scorer name and cutoff are usable.
func ValidateScorer(name string, cutoff float64) error {
	if cutoff < 0 {
		return fmt.Errorf("invalid cutoff: %v (must be >= 0)", cutoff)
	}
	_, err := classify.ParseScorer(name, cutoff)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// SetAnalysisDefaults sets default values for analyses.
func (o *Options) SetAnalysisDefaults() {
	if o.MaxPaths == 0 {
		o.MaxPaths = DefaultMaxPaths
	}
	if o.Scorer == "" {
		o.Scorer = DefaultScorer
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForAnalysis validates and sets defaults for analyses.
func (o *Options) ValidateForAnalysis() error {
	o.SetAnalysisDefaults()
	return ValidateScorer(o.Scorer, o.Cutoff)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Layout == "" {
		o.Layout = nodelink.DefaultLayout
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateLayout(o.Layout)
}

// ScorerFunc returns the configured scorer. Call ValidateForAnalysis first.
func (o *Options) ScorerFunc() classify.Scorer {
	s, err := classify.ParseScorer(o.Scorer, o.Cutoff)
	if err != nil {
		return classify.MeanAffinity{Cutoff: o.Cutoff}
	}
	return s
}

// AnalysisKeyOpts returns cache key options for an analysis.
func (o *Options) AnalysisKeyOpts(op string, args ...string) cache.AnalysisKeyOpts {
	k := cache.AnalysisKeyOpts{Op: op, Args: slices.Clone(args)}
	switch op {
	case OpPath:
		k.MaxPaths = o.MaxPaths
		if o.All {
			k.Args = append(k.Args, "all")
		}
	case OpColor, OpDomains:
		k.Scorer = strings.ToLower(o.Scorer)
		k.Cutoff = o.Cutoff
	}
	return k
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Layout:   o.Layout,
		Detailed: o.Detailed,
	}
}

// NodelinkOptions returns the DOT generation options.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{Detailed: o.Detailed, Layout: o.Layout}
}

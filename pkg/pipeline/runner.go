package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ccmap/pkg/cache"
	"github.com/matzehuels/ccmap/pkg/classify"
	errs "github.com/matzehuels/ccmap/pkg/errors"
	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/mst"
	"github.com/matzehuels/ccmap/pkg/observability"
)

// Runner encapsulates analysis execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different inputs; the graphs passed in must not be mutated concurrently.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Path finds the shortest route (or all shortest routes) between two nodes.
func (r *Runner) Path(ctx context.Context, g *graph.Graph, from, to string, opts Options) (*Report[PathResult], error) {
	if err := r.prepare(&opts, from, to); err != nil {
		return nil, err
	}
	r.warnUnknown(opts.Logger, g, from, to)

	hash, err := GraphHash(g)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, OpPath, g.NodeCount(), hash, opts.AnalysisKeyOpts(OpPath, from, to), opts, func() (PathResult, error) {
		return FindPath(g, from, to, opts), nil
	})
}

// Separation computes degrees of separation from seed.
func (r *Runner) Separation(ctx context.Context, g *graph.Graph, seed string, opts Options) (*Report[SeparationResult], error) {
	if err := r.prepare(&opts, seed); err != nil {
		return nil, err
	}
	r.warnUnknown(opts.Logger, g, seed)

	hash, err := GraphHash(g)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, OpSeparation, g.NodeCount(), hash, opts.AnalysisKeyOpts(OpSeparation, seed), opts, func() (SeparationResult, error) {
		return Separation(g, seed), nil
	})
}

// SpanningTree builds a minimum spanning tree from seed, or extends subtree
// when it is non-empty. An invalid subtree yields an INVALID_SUBTREE error.
func (r *Runner) SpanningTree(ctx context.Context, g *graph.Graph, seed string, subtree []graph.Link, opts Options) (*Report[TreeResult], error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	if seed != "" {
		if err := errs.ValidateNodeID(seed); err != nil {
			return nil, err
		}
		r.warnUnknown(opts.Logger, g, seed)
	}

	graphData, err := marshalGraph(g)
	if err != nil {
		return nil, err
	}
	subtreeData, err := json.Marshal(subtree)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "serialize subtree")
	}
	hash := cache.HashAll(graphData, subtreeData)

	return run(ctx, r, OpMST, g.NodeCount(), hash, opts.AnalysisKeyOpts(OpMST, seed), opts, func() (TreeResult, error) {
		res, err := SpanningTree(g, seed, subtree)
		if err != nil {
			return TreeResult{}, errs.Wrap(errs.ErrCodeInvalidSubtree, err, "extend subtree")
		}
		return res, nil
	})
}

// Color classifies every node of g against sets.
func (r *Runner) Color(ctx context.Context, g *graph.Graph, sets []graph.Set, opts Options) (*Report[classify.ColorPatch], error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	hash, err := setsHash(g, sets)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, OpColor, g.NodeCount(), hash, opts.AnalysisKeyOpts(OpColor), opts, func() (classify.ColorPatch, error) {
		return Color(g, sets, opts), nil
	})
}

// Domains builds the domain meta-graph for nodeIDs (all nodes when nil).
func (r *Runner) Domains(ctx context.Context, g *graph.Graph, nodeIDs []string, sets []graph.Set, opts Options) (*Report[classify.DomainGraph], error) {
	if err := r.prepare(&opts, nodeIDs...); err != nil {
		return nil, err
	}
	r.warnUnknown(opts.Logger, g, nodeIDs...)

	hash, err := setsHash(g, sets)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, OpDomains, g.NodeCount(), hash, opts.AnalysisKeyOpts(OpDomains, nodeIDs...), opts, func() (classify.DomainGraph, error) {
		return Domains(g, nodeIDs, sets, opts), nil
	})
}

// Blend computes the transition patch from the rendered view to next.
func (r *Runner) Blend(ctx context.Context, view, next *graph.Graph, opts Options) (*Report[BlendResult], error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	viewData, err := marshalGraph(view)
	if err != nil {
		return nil, err
	}
	nextData, err := marshalGraph(next)
	if err != nil {
		return nil, err
	}
	hash := cache.HashAll(viewData, nextData)

	return run(ctx, r, OpBlend, view.NodeCount(), hash, opts.AnalysisKeyOpts(OpBlend), opts, func() (BlendResult, error) {
		return BlendGraphs(view, next), nil
	})
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid options")
	}

	hash, err := GraphHash(g)
	if err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			data, hit := r.lookup(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), "artifact", opts.Logger)
			if !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Analysis()
	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
	}
	start := time.Now()
	rendered, err := Render(ctx, g, opts)
	for _, format := range opts.Formats {
		hooks.OnRenderComplete(ctx, format, len(rendered[format]), time.Since(start), err)
	}
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.store(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), "artifact", data, cache.TTLArtifact, opts.Logger)
	}
	opts.Logger.Debug("rendered", "formats", opts.Formats, "layout", opts.Layout, "duration", time.Since(start))

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// =============================================================================
// Internals
// =============================================================================

// run serves an analysis from the cache or computes and stores it.
func run[T any](ctx context.Context, r *Runner, op string, nodeCount int, inputHash string, keyOpts cache.AnalysisKeyOpts, opts Options, compute func() (T, error)) (*Report[T], error) {
	start := time.Now()
	report := &Report[T]{
		RunID:     uuid.NewString(),
		Op:        op,
		InputHash: inputHash,
	}
	key := r.Keyer.AnalysisKey(inputHash, keyOpts)
	logger := opts.Logger.With("op", op, "run", report.RunID)

	if !opts.Refresh {
		if data, hit := r.lookup(ctx, key, "analysis", logger); hit {
			if err := json.Unmarshal(data, &report.Result); err == nil {
				report.CacheHit = true
				report.Duration = time.Since(start)
				logger.Debug("cache hit", "key", key)
				return report, nil
			}
			logger.Debug("discarding undecodable cache entry", "key", key)
		}
	}

	hooks := observability.Analysis()
	hooks.OnAnalysisStart(ctx, op, nodeCount)
	result, err := compute()
	hooks.OnAnalysisComplete(ctx, op, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	report.Result = result
	report.Duration = time.Since(start)

	if data, err := json.Marshal(result); err == nil {
		r.store(ctx, key, "analysis", data, cache.TTLAnalysis, logger)
	} else {
		logger.Warn("result not cacheable", "error", err)
	}
	logger.Debug("computed", "nodes", nodeCount, "duration", report.Duration)
	return report, nil
}

// lookup reads a cache entry. Backend failures are logged and treated as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, logger *log.Logger) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

// store writes a cache entry. Backend failures are logged, never returned.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration, logger *log.Logger) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// prepare validates options and node id arguments.
func (r *Runner) prepare(opts *Options, ids ...string) error {
	r.applyLogger(opts)
	if err := opts.ValidateForAnalysis(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid options")
	}
	for _, id := range ids {
		if err := errs.ValidateNodeID(id); err != nil {
			return err
		}
	}
	return nil
}

// warnUnknown logs ids that are not nodes of g. Unknown ids are not an error:
// they are simply unreachable.
func (r *Runner) warnUnknown(logger *log.Logger, g *graph.Graph, ids ...string) {
	for _, id := range ids {
		if !g.HasNode(id) {
			logger.Warn("node not in graph", "id", id)
		}
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// setsHash hashes a graph together with the set definitions scored against it.
func setsHash(g *graph.Graph, sets []graph.Set) (string, error) {
	graphData, err := marshalGraph(g)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(sets); err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "serialize sets")
	}
	return cache.HashAll(graphData, buf.Bytes()), nil
}

// IsInvalidSubtree reports whether err came from an invalid MST subtree.
func IsInvalidSubtree(err error) bool {
	return errs.Is(err, errs.ErrCodeInvalidSubtree) || errors.Is(err, mst.ErrInvalidSubtree)
}

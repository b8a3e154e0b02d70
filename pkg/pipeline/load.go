package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ccmap/pkg/cache"
	"github.com/matzehuels/ccmap/pkg/ccm"
	errs "github.com/matzehuels/ccmap/pkg/errors"
	"github.com/matzehuels/ccmap/pkg/graph"
	pkgio "github.com/matzehuels/ccmap/pkg/io"
	"github.com/matzehuels/ccmap/pkg/observability"
)

// LoadGraph reads a JSON graph document.
func LoadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	hooks := observability.Analysis()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	g, err := pkgio.ImportJSON(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, fileError(errs.ErrCodeInvalidGraph, err, "load graph %s", path)
	}
	hooks.OnLoadComplete(ctx, path, g.NodeCount(), g.LinkCount(), time.Since(start), nil)
	return g, nil
}

// LoadSets reads a set file (JSON or TOML by extension) and validates names
// and colors. Members missing from g are reported through logger; they are
// kept, since they simply never match.
func LoadSets(path string, g *graph.Graph, logger *log.Logger) ([]graph.Set, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	sets, err := pkgio.LoadSets(path)
	if err != nil {
		return nil, fileError(errs.ErrCodeInvalidSets, err, "load sets %s", path)
	}
	for _, s := range sets {
		if err := errs.ValidateSetName(s.Name); err != nil {
			return nil, err
		}
		if err := errs.ValidateColor(s.Color); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidSets, err, "set %q", s.Name)
		}
	}
	if g != nil && logger != nil {
		if missing := pkgio.MissingMembers(g, sets); len(missing) > 0 {
			logger.Warn("set members not in graph", "count", len(missing), "ids", missing)
		}
	}
	return sets, nil
}

// LoadSubtree reads the links of a previously computed spanning tree.
func LoadSubtree(path string) ([]graph.Link, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	links, err := pkgio.ImportLinks(path)
	if err != nil {
		return nil, fileError(errs.ErrCodeInvalidSubtree, err, "load subtree %s", path)
	}
	return links, nil
}

// BuildGraph loads a Creative Coding Map dataset and builds its graph.
// techniquesPath may be empty.
func BuildGraph(ctx context.Context, toolsPath, techniquesPath string, opts ccm.BuildOptions) (*graph.Graph, error) {
	hooks := observability.Analysis()
	hooks.OnLoadStart(ctx, toolsPath)
	start := time.Now()

	ds, err := ccm.Load(toolsPath, techniquesPath)
	if err != nil {
		hooks.OnLoadComplete(ctx, toolsPath, 0, 0, time.Since(start), err)
		return nil, fileError(errs.ErrCodeInvalidInput, err, "load dataset")
	}
	g, err := ccm.Build(ds, opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, toolsPath, 0, 0, time.Since(start), err)
		return nil, errs.Wrap(errs.ErrCodeInvalidGraph, err, "build graph")
	}
	hooks.OnLoadComplete(ctx, toolsPath, g.NodeCount(), g.LinkCount(), time.Since(start), nil)
	return g, nil
}

// GraphHash returns the content hash of g's canonical JSON encoding.
func GraphHash(g *graph.Graph) (string, error) {
	data, err := marshalGraph(g)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func marshalGraph(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(g, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "serialize graph")
	}
	return buf.Bytes(), nil
}

// fileError maps a missing file to FILE_NOT_FOUND and anything else to code.
func fileError(code errs.Code, err error, format string, args ...any) error {
	if errors.Is(err, fs.ErrNotExist) {
		code = errs.ErrCodeFileNotFound
	}
	return errs.Wrap(code, err, format, args...)
}

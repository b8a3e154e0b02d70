// Package pkg provides the core libraries for ccmap knowledge-graph analytics.
//
// # Overview
//
// ccmap works on maps of tools, techniques and tags: an undirected graph whose
// links carry a type and an optional weight. The pkg directory is organized
// into four areas:
//
//  1. Model - [graph] types and the [ccm] dataset builder
//  2. Analytics - [pathfind], [mst], [classify] and [blend]
//  3. Infrastructure - [io], [cache], [errors], [observability]
//  4. Orchestration - [pipeline] (load, analyze, cache, render)
//
// # Architecture
//
// The typical data flow:
//
//	tools.json / techniques.json or a graph document
//	         ↓
//	    [ccm] or [io] (build or import the graph)
//	         ↓
//	    [pathfind], [mst], [classify], [blend] (analyses)
//	         ↓
//	    [render/nodelink] (DOT, then SVG/PNG/PDF via Graphviz)
//
// [pipeline.Runner] wraps each analysis with content-addressed caching and
// returns a [pipeline.Report] carrying the result and run metadata.
//
// # Quick Start
//
// Find the shortest route between two tools and color the map by domain:
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/ccmap/pkg/classify"
//	    "github.com/matzehuels/ccmap/pkg/io"
//	    "github.com/matzehuels/ccmap/pkg/pathfind"
//	)
//
//	g, _ := io.ImportJSON("map.json")
//	p := pathfind.ShortestPath(g.Links(), "p5.js", "three.js")
//	fmt.Println(p.Distance, p.Nodes)
//
//	sets, _ := io.LoadSets("domains.toml")
//	patch := classify.ColorGraph(g, sets, classify.MeanAffinity{})
//	_ = patch.Apply(g)
//
// # Link Weights
//
// A link's explicit weight wins when non-zero. Otherwise the link type picks
// it: dependency 3, support 1, tag 10, tool-technique 1, anything else 1. See
// [graph.Link.EffectiveWeight].
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/graph
// [ccm]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/ccm
// [pathfind]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/pathfind
// [mst]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/mst
// [classify]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/classify
// [blend]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/blend
// [io]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/pipeline
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/render/nodelink
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/pipeline#Runner
// [pipeline.Report]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/pipeline#Report
// [graph.Link.EffectiveWeight]: https://pkg.go.dev/github.com/matzehuels/ccmap/pkg/graph#Link.EffectiveWeight
package pkg

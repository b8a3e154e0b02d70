package pipeline

import (
	"github.com/matzehuels/ccmap/pkg/blend"
	"github.com/matzehuels/ccmap/pkg/classify"
	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/mst"
	"github.com/matzehuels/ccmap/pkg/pathfind"
)

// FindPath computes the shortest route (or every shortest route when
// opts.All is set) between two nodes of g. Unknown or unreachable endpoints
// give an Unreachable distance and no routes.
func FindPath(g *graph.Graph, from, to string, opts Options) PathResult {
	res := PathResult{From: from, To: to, Routes: [][]string{}}
	links := g.Links()

	if opts.All {
		paths := pathfind.AllShortestPaths(links, from, to, pathfind.WithMaxPaths(opts.MaxPaths))
		res.Distance = Distance(paths.Distance)
		if paths.Found() {
			res.Routes = paths.Routes
		}
		return res
	}

	p := pathfind.ShortestPath(links, from, to)
	res.Distance = Distance(p.Distance)
	if p.Found() {
		res.Routes = [][]string{p.Nodes}
	}
	return res
}

// Separation computes the distance from seed to every node touched by the
// links of g.
func Separation(g *graph.Graph, seed string) SeparationResult {
	dist := pathfind.DegreesOfSeparation(g.Links(), seed)
	out := SeparationResult{Seed: seed, Distances: make(map[string]Distance, len(dist))}
	for id, d := range dist {
		out.Distances[id] = Distance(d)
	}
	return out
}

// SpanningTree builds a minimum spanning tree of g. A non-empty subtree is
// extended; otherwise the tree grows from seed, or from the first link's
// source when seed is empty.
func SpanningTree(g *graph.Graph, seed string, subtree []graph.Link) (TreeResult, error) {
	links := g.Links()

	var (
		r   mst.Result
		err error
	)
	if len(subtree) > 0 {
		r, err = mst.FromSubtree(links, subtree)
		if err != nil {
			return TreeResult{}, err
		}
		seed = ""
		if len(r.Included) > 0 {
			seed = r.Included[0]
		}
	} else {
		if seed == "" {
			seed = mst.FirstNode(links)
		}
		r = mst.MinimumSpanningTree(links, seed)
	}

	edges := r.Edges
	if edges == nil {
		edges = []graph.Link{}
	}
	included := r.Included
	if included == nil {
		included = []string{}
	}
	return TreeResult{
		Seed:        seed,
		TotalWeight: r.TotalWeight,
		Complete:    r.Complete(g.NodeCount()),
		Included:    included,
		Edges:       edges,
	}, nil
}

// Color classifies every node of g against sets.
func Color(g *graph.Graph, sets []graph.Set, opts Options) classify.ColorPatch {
	return classify.ColorGraph(g, sets, opts.ScorerFunc())
}

// Domains builds the domain meta-graph for nodeIDs (all nodes when nil).
func Domains(g *graph.Graph, nodeIDs []string, sets []graph.Set, opts Options) classify.DomainGraph {
	return classify.BuildDomainGraph(g, nodeIDs, sets, opts.ScorerFunc())
}

// BlendGraphs computes the transition from the rendered view to next.
func BlendGraphs(view, next *graph.Graph) BlendResult {
	appearing := blend.Appearing(view, next)
	if appearing == nil {
		appearing = []graph.Link{}
	}
	return BlendResult{
		Patch:     blend.Blend(view, next),
		Appearing: appearing,
	}
}

// Blended returns a copy of view with res applied: strengths patched, the
// nodes of next that view lacks appended, and the appearing links inserted.
// Removed links stay in place so they can fade out.
func Blended(view, next *graph.Graph, res BlendResult) (*graph.Graph, error) {
	out := view.Clone()
	if err := res.Patch.Apply(out); err != nil {
		return nil, err
	}
	for _, n := range next.Nodes() {
		if out.HasNode(n.ID) {
			continue
		}
		if err := out.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, l := range res.Appearing {
		if err := out.AddLink(l); err != nil {
			return nil, err
		}
	}
	return out, nil
}

package pathfind

import (
	"slices"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// Path is a single shortest route.
type Path struct {
	Distance float64  // Sum of effective weights, Inf if unreachable
	Nodes    []string // Node IDs from start to end, empty if unreachable
}

// Found reports whether a route exists.
func (p Path) Found() bool { return p.Distance != Inf }

// Paths holds every route achieving the minimum distance.
type Paths struct {
	Distance float64    // Minimum distance, Inf if unreachable
	Routes   [][]string // Node ID sequences from start to end
}

// Found reports whether at least one route exists.
func (p Paths) Found() bool { return p.Distance != Inf }

// Option configures [AllShortestPaths].
type Option func(*options)

type options struct {
	maxPaths int
}

// WithMaxPaths caps the number of routes reconstructed. Zero or negative
// means unlimited. Reconstruction is exponential in the number of tied
// alternatives, so interactive callers should set a cap.
func WithMaxPaths(n int) Option {
	return func(o *options) { o.maxPaths = n }
}

// ShortestPath returns one minimum-weight route between start and end over
// the undirected links.
//
// The search stops as soon as end is settled. A neighbor's predecessor is
// only replaced on a strictly smaller distance, so among equal-weight routes
// the one discovered first wins. If end is unreachable, or either endpoint
// does not appear in links, the result has Distance Inf and no nodes.
func ShortestPath(links []graph.Link, start, end string) Path {
	adj := newAdjacency(links)
	if !adj.has(start) || !adj.has(end) {
		return Path{Distance: Inf}
	}

	f := newFrontier(adj, start)
	prev := make(map[string]string)
	settled := make(map[string]bool)

	for !f.empty() {
		cur, d := f.pop()
		if cur == end || d == Inf {
			break
		}
		settled[cur] = true
		for _, nb := range adj.nbrs[cur] {
			if settled[nb.id] {
				continue
			}
			if nd := d + nb.weight; nd < f.dist[nb.id] {
				f.dist[nb.id] = nd
				prev[nb.id] = cur
			}
		}
	}

	if _, ok := prev[end]; !ok && end != start {
		return Path{Distance: Inf}
	}

	var nodes []string
	for cur := end; ; {
		nodes = append(nodes, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	slices.Reverse(nodes)
	return Path{Distance: f.dist[end], Nodes: nodes}
}

// AllShortestPaths returns every minimum-weight route between start and end.
//
// Every predecessor reaching a node at its minimum distance is recorded.
// Routes are rebuilt backwards from end; a predecessor already on the route
// under construction is skipped, which guards against zero-weight cycles.
// Structurally identical routes are not deduplicated.
func AllShortestPaths(links []graph.Link, start, end string, opts ...Option) Paths {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	adj := newAdjacency(links)
	if !adj.has(start) || !adj.has(end) {
		return Paths{Distance: Inf}
	}

	f := newFrontier(adj, start)
	prev := make(map[string][]string)
	settled := make(map[string]bool)

	for !f.empty() {
		cur, d := f.pop()
		if d == Inf {
			break
		}
		settled[cur] = true
		for _, nb := range adj.nbrs[cur] {
			if settled[nb.id] {
				continue
			}
			nd := d + nb.weight
			switch {
			case nd < f.dist[nb.id]:
				f.dist[nb.id] = nd
				prev[nb.id] = []string{cur}
			case nd == f.dist[nb.id]:
				prev[nb.id] = append(prev[nb.id], cur)
			}
		}
	}

	if f.dist[end] == Inf {
		return Paths{Distance: Inf}
	}

	var routes [][]string
	full := func() bool { return o.maxPaths > 0 && len(routes) >= o.maxPaths }

	// build walks from node back toward start; path holds the nodes after it.
	var build func(node string, path []string)
	build = func(node string, path []string) {
		if full() {
			return
		}
		if node == start {
			route := append(slices.Clone(path), node)
			slices.Reverse(route)
			routes = append(routes, route)
			return
		}
		for _, p := range prev[node] {
			if full() {
				return
			}
			if !slices.Contains(path, p) {
				build(p, append(slices.Clone(path), node))
			}
		}
	}
	build(end, nil)

	return Paths{Distance: f.dist[end], Routes: routes}
}

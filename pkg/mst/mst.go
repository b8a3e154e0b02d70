package mst

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// ErrInvalidSubtree is returned by [FromSubtree] when the initial subtree is
// not a tree: wrong edge count for its node count, or not connected.
var ErrInvalidSubtree = errors.New("invalid subtree")

// Result is a spanning tree, or a spanning forest of the seed's component
// when the graph is disconnected.
type Result struct {
	TotalWeight float64      `json:"totalWeight"` // Sum of effective weights of Edges
	Edges       []graph.Link `json:"edges"`       // Tree links in the order they were added
	Included    []string     `json:"included"`    // Node IDs in the order they joined the tree
}

// Complete reports whether the tree covers nodeCount nodes. A partial result
// is valid; callers that need full coverage compare against their node count.
func (r Result) Complete(nodeCount int) bool { return len(r.Included) == nodeCount }

// FirstNode returns the source of the first link, or "" if links is empty.
func FirstNode(links []graph.Link) string {
	if len(links) == 0 {
		return ""
	}
	return links[0].Source
}

// MinimumSpanningTree grows a minimum spanning tree from start using Prim's
// algorithm.
//
// Each step scans links in input order and takes the first link of strictly
// minimum effective weight with exactly one endpoint in the tree. If start
// does not appear in links the result is empty. If the graph is disconnected
// the tree stops at the start's component.
func MinimumSpanningTree(links []graph.Link, start string) Result {
	if !slices.ContainsFunc(links, func(l graph.Link) bool {
		return l.Source == start || l.Target == start
	}) {
		return Result{}
	}
	t := newTree([]string{start})
	t.grow(links)
	return t.result
}

// FromSubtree extends an existing tree to a minimum spanning tree of links.
//
// The subtree must have exactly nodes-1 links and be connected; otherwise
// FromSubtree returns an error wrapping ErrInvalidSubtree and a zero Result.
// An empty subtree starts from [FirstNode] of links, which makes
// FromSubtree(links, nil) equal to MinimumSpanningTree(links, FirstNode(links)).
// The subtree's links and weight are kept at the front of the result.
func FromSubtree(links, subtree []graph.Link) (Result, error) {
	if len(subtree) == 0 {
		return MinimumSpanningTree(links, FirstNode(links)), nil
	}
	if err := validateTree(subtree); err != nil {
		return Result{}, err
	}

	t := newTree(graph.LinkNodeIDs(subtree))
	for _, l := range subtree {
		t.result.Edges = append(t.result.Edges, l)
		t.result.TotalWeight += l.EffectiveWeight()
	}
	t.grow(links)
	return t.result, nil
}

func validateTree(links []graph.Link) error {
	nodes := graph.LinkNodeIDs(links)
	if len(links) != len(nodes)-1 {
		return fmt.Errorf("%w: %d links for %d nodes", ErrInvalidSubtree, len(links), len(nodes))
	}

	adj := make(map[string][]string, len(nodes))
	for _, l := range links {
		adj[l.Source] = append(adj[l.Source], l.Target)
		adj[l.Target] = append(adj[l.Target], l.Source)
	}

	visited := map[string]bool{nodes[0]: true}
	queue := []string{nodes[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	if len(visited) != len(nodes) {
		return fmt.Errorf("%w: %d of %d nodes connected", ErrInvalidSubtree, len(visited), len(nodes))
	}
	return nil
}

type tree struct {
	in     map[string]bool
	result Result
}

func newTree(seed []string) *tree {
	t := &tree{in: make(map[string]bool, len(seed))}
	for _, id := range seed {
		t.in[id] = true
		t.result.Included = append(t.result.Included, id)
	}
	return t
}

// grow adds the cheapest crossing link until none is left. O(V·E).
func (t *tree) grow(links []graph.Link) {
	for {
		best := -1
		var bestW float64
		for i, l := range links {
			if t.in[l.Source] == t.in[l.Target] {
				continue
			}
			if w := l.EffectiveWeight(); best < 0 || w < bestW {
				best, bestW = i, w
			}
		}
		if best < 0 {
			return
		}

		l := links[best]
		next := l.Target
		if t.in[l.Target] {
			next = l.Source
		}
		t.in[next] = true
		t.result.Included = append(t.result.Included, next)
		t.result.Edges = append(t.result.Edges, l)
		t.result.TotalWeight += bestW
	}
}

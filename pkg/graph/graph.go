package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs are unique across the whole graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddLink] when the Source node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddLink] when the Target node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidLinkEndpoint is returned by [Graph.Validate] when a link
	// references a node that doesn't exist.
	ErrInvalidLinkEndpoint = errors.New("invalid link endpoint")

	// ErrLinkIndexOutOfRange is returned by [Graph.UpdateLink] for an index
	// outside the link collection.
	ErrLinkIndexOutOfRange = errors.New("link index out of range")
)

// Graph is an ordered collection of nodes plus an ordered collection of
// undirected links. Insertion order is preserved for both and is the order
// every algorithm iterates in, which keeps tie-breaking reproducible.
//
// Parallel links between the same pair are kept as-is; uniqueness is the
// caller's concern.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes []Node
	index map[string]int // nodeID -> position in nodes
	links []Link
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddNode appends a node. Returns ErrInvalidNodeID if the ID is empty, or
// ErrDuplicateNodeID if the ID is already present.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.index[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// AddLink appends a link between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is missing.
func (g *Graph) AddLink(l Link) error {
	if _, ok := g.index[l.Source]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[l.Target]; !ok {
		return ErrUnknownTargetNode
	}
	g.links = append(g.links, l)
	return nil
}

// Node returns the node with the given ID and true, or the zero Node and
// false if not found.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Links returns a copy of all links in insertion order.
func (g *Graph) Links() []Link { return slices.Clone(g.links) }

// Link returns the link at index i.
func (g *Graph) Link(i int) (Link, bool) {
	if i < 0 || i >= len(g.links) {
		return Link{}, false
	}
	return g.links[i], true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.links) }

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// SetNodeColor assigns a color to an existing node. It reports false if the
// node does not exist.
func (g *Graph) SetNodeColor(id, color string) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	g.nodes[i].Color = color
	return true
}

// UpdateLink applies fn to the link stored at index i. Endpoint changes made
// by fn are not re-validated; use Validate afterwards if fn touches them.
func (g *Graph) UpdateLink(i int, fn func(*Link)) error {
	if i < 0 || i >= len(g.links) {
		return ErrLinkIndexOutOfRange
	}
	fn(&g.links[i])
	return nil
}

// Degrees returns the number of incident links per node ID. Self-loops count
// twice. Nodes without links are absent from the map.
func (g *Graph) Degrees() map[string]int {
	return LinkDegrees(g.links)
}

// LinkDegrees counts incident links per endpoint over an arbitrary link list.
func LinkDegrees(links []Link) map[string]int {
	deg := make(map[string]int)
	for _, l := range links {
		deg[l.Source]++
		deg[l.Target]++
	}
	return deg
}

// Validate checks that every link endpoint refers to an existing node.
// Returns ErrInvalidLinkEndpoint otherwise.
func (g *Graph) Validate() error {
	for _, l := range g.links {
		if !g.HasNode(l.Source) || !g.HasNode(l.Target) {
			return ErrInvalidLinkEndpoint
		}
	}
	return nil
}

// Clone returns a deep copy of the graph. Node metadata maps are copied
// shallowly.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes: make([]Node, len(g.nodes)),
		index: maps.Clone(g.index),
		links: slices.Clone(g.links),
	}
	for i, n := range g.nodes {
		if n.Data != nil {
			n.Data = maps.Clone(n.Data)
		}
		out.nodes[i] = n
	}
	return out
}

// Subgraph returns a new graph containing only the nodes whose IDs are in
// keep, and the links with both endpoints kept. Order is preserved.
func (g *Graph) Subgraph(keep []string) *Graph {
	want := make(map[string]bool, len(keep))
	for _, id := range keep {
		want[id] = true
	}
	out := New()
	for _, n := range g.nodes {
		if want[n.ID] {
			_ = out.AddNode(n)
		}
	}
	for _, l := range g.links {
		if want[l.Source] && want[l.Target] {
			out.links = append(out.links, l)
		}
	}
	return out
}

// LinkNodeIDs returns the distinct endpoint IDs of links in first-appearance
// order (source before target).
func LinkNodeIDs(links []Link) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, l := range links {
		for _, id := range [2]string{l.Source, l.Target} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

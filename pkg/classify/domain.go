package classify

import (
	"fmt"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// Synthetic node identity of the domain meta-graph.
const (
	RootNodeID     = "___root"
	RootNodeName   = "root"
	DomainIDPrefix = "domain:"
	// DomainColor fills both domain and root nodes.
	DomainColor = "#ffffff"
)

// DomainNodeID returns the meta-graph node ID for a domain set name.
func DomainNodeID(name string) string { return DomainIDPrefix + name }

// DomainGraph is the meta-graph built by [BuildDomainGraph].
//
// Nodes holds one domain node per set followed by the root. Links holds the
// membership links (original node to domain) followed by one root link per
// domain. Membership links reference node IDs of the source graph, which are
// not part of Nodes; use [DomainGraph.WithMembers] for a self-contained graph.
type DomainGraph struct {
	Nodes []graph.Node `json:"nodes"`
	Links []graph.Link `json:"links"`
}

// Matches returns the number of membership links.
func (d DomainGraph) Matches() int {
	n := 0
	for _, l := range d.Links {
		if l.Type == graph.LinkTypeDomain {
			n++
		}
	}
	return n
}

// WithMembers returns a graph holding the domain nodes, the root, every
// source node referenced by a membership link (copied from src, in link
// order) and all links.
func (d DomainGraph) WithMembers(src *graph.Graph) (*graph.Graph, error) {
	out := graph.New()
	for _, n := range d.Nodes {
		if err := out.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, l := range d.Links {
		if out.HasNode(l.Source) {
			continue
		}
		n, ok := src.Node(l.Source)
		if !ok {
			return nil, fmt.Errorf("domain member %s: %w", l.Source, ErrUnknownNode)
		}
		if err := out.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, l := range d.Links {
		if err := out.AddLink(l); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BuildDomainGraph scores nodes of g against every domain set and builds the
// domain meta-graph.
//
// The result has len(sets)+1 nodes: one domain node per set (ID
// [DomainNodeID], type domain) and the root ([RootNodeID], type root). For
// every node in nodeIDs and every set with a positive score it emits a
// membership link node -> domain of type domain. It always emits one root ->
// domain link per set, of type none, whether or not anything matched. All
// links carry StrengthDelta 1.
//
// nodeIDs selects which nodes to score; nil scores every node of g. IDs not in
// g are skipped, even when a set lists them. A nil scorer means [MeanAffinity] without cutoff.
func BuildDomainGraph(g *graph.Graph, nodeIDs []string, sets []graph.Set, scorer Scorer) DomainGraph {
	if scorer == nil {
		scorer = MeanAffinity{}
	}
	if nodeIDs == nil {
		nodeIDs = g.NodeIDs()
	}
	table := Tables(g, sets)

	d := DomainGraph{Nodes: make([]graph.Node, 0, len(sets)+1)}
	for _, s := range sets {
		d.Nodes = append(d.Nodes, graph.Node{
			ID:    DomainNodeID(s.Name),
			Name:  s.Name,
			Type:  graph.NodeTypeDomain,
			Color: DomainColor,
		})
	}
	d.Nodes = append(d.Nodes, graph.Node{
		ID:    RootNodeID,
		Name:  RootNodeName,
		Type:  graph.NodeTypeRoot,
		Color: DomainColor,
	})

	for _, id := range nodeIDs {
		if !g.HasNode(id) {
			continue
		}
		for _, s := range sets {
			if scorer.Score(id, s, table) <= 0 {
				continue
			}
			d.Links = append(d.Links, graph.Link{
				Source:        id,
				Target:        DomainNodeID(s.Name),
				Type:          graph.LinkTypeDomain,
				StrengthDelta: 1,
			})
		}
	}
	for _, s := range sets {
		d.Links = append(d.Links, graph.Link{
			Source:        RootNodeID,
			Target:        DomainNodeID(s.Name),
			Type:          graph.LinkTypeNone,
			StrengthDelta: 1,
		})
	}
	return d
}

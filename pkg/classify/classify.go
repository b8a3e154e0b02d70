package classify

import (
	"errors"
	"fmt"

	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/pathfind"
)

// DefaultColor is assigned to nodes that score 0 against every set.
const DefaultColor = "#000000"

// ErrUnknownNode is returned by [ColorPatch.Apply] when the target graph has
// no node with a patched ID.
var ErrUnknownNode = errors.New("unknown node")

// Tables builds the distance table for every member of sets over g's links.
// Scoring requires it; [ColorGraph] and [BuildDomainGraph] call it
// themselves.
func Tables(g *graph.Graph, sets []graph.Set) pathfind.DistanceTable {
	return pathfind.BuildDistanceTable(g.Links(), graph.MemberIDs(sets))
}

// Assignment is the classification of one node.
type Assignment struct {
	NodeID string `json:"node"`
	Color  string `json:"color"`
	// Set is the index of the winning set, or -1 if the node is unclassified.
	Set   int     `json:"set"`
	Score float64 `json:"score"`
}

// ColorPatch holds one [Assignment] per node, in graph order.
type ColorPatch struct {
	Assignments []Assignment `json:"assignments"`
}

// Classified returns the number of nodes that got a set color.
func (p ColorPatch) Classified() int {
	n := 0
	for _, a := range p.Assignments {
		if a.Set >= 0 {
			n++
		}
	}
	return n
}

// Colors returns the assigned color per node ID.
func (p ColorPatch) Colors() map[string]string {
	out := make(map[string]string, len(p.Assignments))
	for _, a := range p.Assignments {
		out[a.NodeID] = a.Color
	}
	return out
}

// Apply writes the colors into g. It requires exclusive access to g.
func (p ColorPatch) Apply(g *graph.Graph) error {
	for _, a := range p.Assignments {
		if !g.SetNodeColor(a.NodeID, a.Color) {
			return fmt.Errorf("apply color %s: %w: %s", a.Color, ErrUnknownNode, a.NodeID)
		}
	}
	return nil
}

// ColorGraph classifies every node of g against sets.
//
// For each node the set with the strictly highest score wins; on ties the
// earlier set keeps the win. A positive winning score assigns the set's
// color, anything else assigns [DefaultColor]. Every node gets exactly one
// assignment. A nil scorer means [MeanAffinity] without cutoff.
//
// g is not modified; call [ColorPatch.Apply] to write the result.
func ColorGraph(g *graph.Graph, sets []graph.Set, scorer Scorer) ColorPatch {
	if scorer == nil {
		scorer = MeanAffinity{}
	}
	table := Tables(g, sets)

	nodes := g.Nodes()
	p := ColorPatch{Assignments: make([]Assignment, len(nodes))}
	for i, n := range nodes {
		best, bestScore := -1, 0.0
		for j, s := range sets {
			sc := scorer.Score(n.ID, s, table)
			if best < 0 || sc > bestScore {
				best, bestScore = j, sc
			}
		}

		a := Assignment{NodeID: n.ID, Color: DefaultColor, Set: -1, Score: bestScore}
		if best >= 0 && bestScore > 0 {
			a.Color = sets[best].Color
			a.Set = best
		}
		p.Assignments[i] = a
	}
	return p
}

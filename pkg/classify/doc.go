// Package classify ranks nodes against reference sets by graph proximity.
//
// # Scoring
//
// A [Scorer] rates how close a node is to a [graph.Set]. Every scorer follows
// the same contract:
//
//   - a member of the set scores [MaxScore];
//   - a non-member scores less, and less again the farther it is;
//   - a node with no reachable member scores 0.
//
// Distances come from a [pathfind.DistanceTable] seeded with every set
// member. [Tables] builds one. [MeanAffinity] is the default; [NearestAffinity]
// only looks at the closest member. Both accept a Cutoff beyond which members
// count as unreachable.
//
// # Coloring
//
// [ColorGraph] picks, per node, the best scoring set and returns a
// [ColorPatch]. Ties go to the earlier set. Nodes with nothing reachable get
// [DefaultColor].
//
//	p := classify.ColorGraph(g, sets, nil)
//	if err := p.Apply(g); err != nil {
//	    return err
//	}
//
// # Domains
//
// [BuildDomainGraph] turns the same scores into a small overview graph: one
// node per domain set, a root, a membership link for every positive score and
// a link from the root to every domain.
package classify

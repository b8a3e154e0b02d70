// Package pathfind computes weighted shortest paths over undirected links.
//
// # Overview
//
// Three queries share one relaxation routine:
//
//   - [ShortestPath]: one minimum-weight route between two nodes
//   - [AllShortestPaths]: every route achieving the minimum
//   - [DegreesOfSeparation]: distances from one seed to every node
//
// [BuildDistanceTable] runs the last one for a list of seeds; the classify
// package scores nodes against sets using the resulting [DistanceTable].
//
// Link weights follow [graph.Link.EffectiveWeight]: explicit weight, else the
// type default.
//
// # Frontier
//
// The frontier is a plain slice scanned in full on every pop, which is
// O(V²) and fine for maps of a few hundred nodes. Ties between equal
// tentative distances go to the node that first appeared in the link list.
// Tests pin this order; a heap replacement must keep it.
//
//	p := pathfind.ShortestPath(links, "A", "C")
//	if p.Found() {
//	    fmt.Println(p.Distance, p.Nodes)
//	}
//
// # Unreachable Nodes
//
// An unreachable target is not an error: the result carries Distance [Inf]
// and no nodes or routes.
//
// # Limitations
//
// Negative weights are not checked and give undefined results.
// [AllShortestPaths] enumerates routes recursively; graphs with many
// equal-weight alternatives can produce exponentially many. Use
// [WithMaxPaths] to bound the output.
package pathfind

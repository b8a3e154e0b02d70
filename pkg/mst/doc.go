// Package mst builds minimum spanning trees over undirected weighted links.
//
// The map uses a spanning tree as a low-clutter skeleton: it keeps every
// reachable entity connected with the fewest, lightest links.
//
// [MinimumSpanningTree] runs Prim's algorithm from a seed node.
// [FromSubtree] continues Prim from a tree the caller already has (a previous
// result or a hand-picked skeleton), so refining a tree does not recompute it.
//
// Both use [graph.Link.EffectiveWeight] and break weight ties by link order,
// which makes results reproducible for identical input.
//
// A seed that does not appear in the links yields an empty [Result], and a
// disconnected graph yields the tree of the seed's component. Neither is an
// error; use [Result.Complete] to check coverage.
package mst

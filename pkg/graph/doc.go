// Package graph provides the node/link model shared by every analytics
// package in ccmap.
//
// # Overview
//
// A knowledge map is a set of entities (tools, techniques, tags) joined by
// weighted undirected links. [Graph] keeps both collections in insertion
// order; the path, spanning tree and classification algorithms iterate in
// that order, so ties are always broken the same way for the same input.
//
//	g := graph.New()
//	g.AddNode(graph.Node{ID: "p5", Type: graph.NodeTypeTool})
//	g.AddNode(graph.Node{ID: "generative", Type: graph.NodeTypeTag})
//	g.AddLink(graph.Link{Source: "generative", Target: "p5", Type: graph.LinkTypeTag})
//
// # Weights
//
// A link's traversal cost is its explicit Weight, or the default for its
// [LinkType] when Weight is zero:
//
//   - dependency: 3
//   - support: 1
//   - tag: 10
//   - tool-technique: 1
//   - anything else: 1
//
// Use [Link.EffectiveWeight] rather than reading Weight directly. Negative
// weights are not validated and give undefined results in every algorithm.
//
// # Link Identity
//
// Links are undirected. [Link.Key] returns a [LinkKey] that is the same for
// (a, b) and (b, a); the blend package compares snapshots by this key.
//
// # Sets
//
// A [Set] names a group of reference nodes with a color. Coloring and domain
// grouping both rank every node against a list of sets.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Analyses read a graph and
// return new values or patches; applying a patch is the only mutation and
// requires exclusive access for its duration.
package graph

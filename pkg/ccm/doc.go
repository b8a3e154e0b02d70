// Package ccm builds the map graph from Creative Coding Map dataset files.
//
// The dataset comes as two JSON documents: tools.json, keyed by tool name,
// and techniques.json, keyed by technique ID. [Load] reads local copies and
// [NewDataset] normalizes them: records are sorted by key and tags are the
// sorted union of all tool and technique tags. Sorting makes the node and
// link order, and therefore every tie-break downstream, independent of map
// iteration.
//
// [Build] turns a [Dataset] into a [graph.Graph] with tool, technique and tag
// nodes and the tag, dependency, support and tool-technique link families.
// Each family can be switched off through [BuildOptions]; supplying
// BuildOptions.MST draws only a previously computed spanning tree.
//
// Fetching the dataset from its published location is not part of this
// package.
package ccm

// Package io reads and writes graphs, link lists and set definitions.
//
// # Overview
//
// This package is the ingestion boundary of the map. Everything past it works
// with plain node IDs; everything before it may hand us endpoints in whatever
// shape a force-layout library left them in.
//
// # Graph Format
//
// A graph is an object with "nodes" and "links" arrays:
//
//	{
//	  "nodes": [
//	    {"id": "p5", "name": "p5.js", "type": "tool"},
//	    {"id": "js", "name": "JavaScript", "type": "tag"}
//	  ],
//	  "links": [
//	    {"source": "p5", "target": {"id": "js"}, "type": "tag"}
//	  ]
//	}
//
// Node fields other than id are optional. "data" holds free-form metadata
// and is carried through untouched.
//
// Link endpoints may be bare IDs or objects with an "id" field (the shape a
// simulation leaves behind after resolving references). Both normalize to
// the bare ID. Optional link fields are type, weight, strength,
// strengthDelta and curvature. A weight of 0 means the type default applies.
//
// # Link Lists
//
// [ReadLinks] accepts either a JSON array of links or a full graph document
// and returns only the links. It is used for MST subtrees.
//
// # Set Files
//
// [ReadSets] decodes coloring and domain sets from JSON or TOML; [LoadSets]
// picks the format from the file extension. See [ReadSets] for both layouts.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write a graph in the format read by
// [ReadJSON]. Endpoints are always written as bare IDs. [WriteParts] writes
// an unchecked node and link list, used for the domain meta-graph.
package io

package ccm

import (
	"fmt"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// TagIDPrefix is prepended to a tag's node ID when the tag name collides with
// a tool or technique key.
const TagIDPrefix = "tag:"

// BuildOptions selects which link families [Build] emits.
//
// The zero value emits every family.
type BuildOptions struct {
	SkipToolTags      bool // tag -> tool
	SkipTechniqueTags bool // tag -> technique
	SkipDependencies  bool // dependency -> tool
	SkipSupports      bool // supported tool -> tool
	SkipTechniques    bool // tool -> technique

	// MST, when non-nil, replaces every generated link family with these
	// links. Used to redraw the map from a saved spanning tree.
	MST []graph.Link

	Logger func(string, ...any) // Skipped reference callback (optional)
}

// WithDefaults returns a copy of BuildOptions with a no-op Logger if none was
// set.
func (o BuildOptions) WithDefaults() BuildOptions {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Build creates the map graph from ds.
//
// Nodes come in three groups, each in dataset order: tools (ID and name are
// the key), techniques (ID is the key, name the technique name) and tags (ID
// and name are the tag, or [TagIDPrefix]+tag on collision).
//
// Links are emitted per tool (tags, dependencies, supports, techniques), then
// the MST links if any, then per technique (tags). Dependency and support
// links point from the referenced tool to the referencing one. References to
// unknown tools or techniques are skipped and reported through the Logger.
// Every link gets StrengthDelta 1 so a renderer fades it in.
func Build(ds Dataset, opts BuildOptions) (*graph.Graph, error) {
	opts = opts.WithDefaults()
	g := graph.New()

	for _, t := range ds.Tools {
		if err := g.AddNode(graph.Node{
			ID:   t.Key,
			Name: t.Key,
			Type: graph.NodeTypeTool,
			Data: graph.Metadata{"tags": t.Tags, "dependsOn": t.DependsOn, "supports": t.Supports},
		}); err != nil {
			return nil, fmt.Errorf("tool %q: %w", t.Key, err)
		}
	}
	for _, t := range ds.Techniques {
		if err := g.AddNode(graph.Node{
			ID:   t.Key,
			Name: t.Name,
			Type: graph.NodeTypeTechnique,
			Data: graph.Metadata{"tags": t.Tags},
		}); err != nil {
			return nil, fmt.Errorf("technique %q: %w", t.Key, err)
		}
	}
	tagIDs := make(map[string]string, len(ds.Tags))
	for _, tag := range ds.Tags {
		id := tag
		if g.HasNode(id) {
			id = TagIDPrefix + tag
		}
		if err := g.AddNode(graph.Node{ID: id, Name: tag, Type: graph.NodeTypeTag}); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		tagIDs[tag] = id
	}

	b := builder{g: g, logger: opts.Logger}
	mstMode := opts.MST != nil

	if !mstMode {
		for _, t := range ds.Tools {
			b.toolLinks(t, tagIDs, opts)
		}
	}

	for _, l := range opts.MST {
		l.StrengthDelta = 1
		if err := g.AddLink(l); err != nil {
			return nil, fmt.Errorf("mst link %s: %w", l.Key(), err)
		}
	}

	if !mstMode && !opts.SkipTechniqueTags {
		for _, t := range ds.Techniques {
			for _, tag := range t.Tags {
				b.add(tagIDs[tag], t.Key, graph.LinkTypeTag)
			}
		}
	}
	return g, nil
}

type builder struct {
	g      *graph.Graph
	logger func(string, ...any)
}

func (b builder) toolLinks(t ToolEntry, tagIDs map[string]string, opts BuildOptions) {
	if !opts.SkipToolTags {
		for _, tag := range t.Tags {
			b.add(tagIDs[tag], t.Key, graph.LinkTypeTag)
		}
	}
	if !opts.SkipDependencies {
		for _, dep := range t.DependsOn {
			b.addTool(dep, t.Key, graph.LinkTypeDependency)
		}
	}
	if !opts.SkipSupports {
		for _, sup := range t.Supports {
			b.addTool(sup, t.Key, graph.LinkTypeSupport)
		}
	}
	if !opts.SkipTechniques {
		for _, action := range t.ActionNames() {
			for _, tech := range t.Actions[action].Techniques {
				b.addTechnique(t.Key, tech)
			}
		}
	}
}

func (b builder) add(source, target string, typ graph.LinkType) {
	// Both endpoints are known nodes here.
	_ = b.g.AddLink(graph.Link{Source: source, Target: target, Type: typ, StrengthDelta: 1})
}

func (b builder) addTool(ref, tool string, typ graph.LinkType) {
	if n, ok := b.g.Node(ref); !ok || n.Type != graph.NodeTypeTool {
		b.logger("skip %s link %s -> %s: unknown tool", typ, ref, tool)
		return
	}
	b.add(ref, tool, typ)
}

func (b builder) addTechnique(tool, ref string) {
	if n, ok := b.g.Node(ref); !ok || n.Type != graph.NodeTypeTechnique {
		b.logger("skip technique link %s -> %s: unknown technique", tool, ref)
		return
	}
	b.add(tool, ref, graph.LinkTypeToolTechnique)
}

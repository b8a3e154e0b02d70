package graph

import "slices"

// Metadata stores opaque key-value data attached to nodes by the ingestion
// layer. The analytics packages never read it.
type Metadata map[string]any

// NodeType classifies an entity on the map.
type NodeType string

const (
	NodeTypeTool      NodeType = "tool"
	NodeTypeTechnique NodeType = "technique"
	NodeTypeTag       NodeType = "tag"
	// NodeTypeDomain marks synthetic nodes of a domain meta-graph.
	NodeTypeDomain NodeType = "domain"
	// NodeTypeRoot marks the synthetic root of a domain meta-graph.
	NodeTypeRoot NodeType = "root"
)

// LinkType classifies the relation a link represents. It also selects the
// default weight used when a link carries no explicit weight.
type LinkType string

const (
	LinkTypeTag           LinkType = "tag"
	LinkTypeDependency    LinkType = "dependency"
	LinkTypeSupport       LinkType = "support"
	LinkTypeToolTechnique LinkType = "tool-technique"
	LinkTypeDomain        LinkType = "domain"
	LinkTypeNone          LinkType = "none"
)

// Default weights per link type. Any type not listed weighs DefaultWeight.
const (
	WeightDependency    = 3.0
	WeightSupport       = 1.0
	WeightTag           = 10.0
	WeightToolTechnique = 1.0
	DefaultWeight       = 1.0
)

// DefaultWeightFor returns the weight implied by a link type.
func DefaultWeightFor(t LinkType) float64 {
	switch t {
	case LinkTypeDependency:
		return WeightDependency
	case LinkTypeSupport:
		return WeightSupport
	case LinkTypeTag:
		return WeightTag
	case LinkTypeToolTechnique:
		return WeightToolTechnique
	default:
		return DefaultWeight
	}
}

// Node is an entity on the map.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Node struct {
	ID    string   `json:"id"`              // Unique identifier
	Name  string   `json:"name,omitempty"`  // Display name
	Type  NodeType `json:"type,omitempty"`  // Entity kind
	Color string   `json:"color,omitempty"` // Fill color assigned by classification (may be empty)
	Data  Metadata `json:"data,omitempty"`  // Opaque backing data owned by ingestion
}

// Label returns the node name, falling back to the ID.
func (n Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Link is an undirected weighted relation between two nodes.
//
// Source and Target are plain node IDs. Callers that receive id-bearing
// structures as endpoints must normalize them before building links (see the
// io package).
type Link struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   LinkType `json:"type,omitempty"`

	// Weight is the explicit traversal cost. Zero means "not set" and the
	// type default applies, see EffectiveWeight.
	Weight float64 `json:"weight,omitempty"`

	// Strength is the currently rendered intensity in [0, 1].
	Strength float64 `json:"strength,omitempty"`
	// StrengthDelta is the per-tick increment driving Strength toward its target.
	StrengthDelta float64 `json:"strengthDelta,omitempty"`
	// Curvature is passed through to renderers untouched.
	Curvature float64 `json:"curvature,omitempty"`
}

// EffectiveWeight returns the explicit weight if set, otherwise the default
// for the link type. Every algorithm in this module uses this rule.
func (l Link) EffectiveWeight() float64 {
	if l.Weight != 0 {
		return l.Weight
	}
	return DefaultWeightFor(l.Type)
}

// Key returns the undirected identity of the link.
func (l Link) Key() LinkKey { return NewLinkKey(l.Source, l.Target) }

// Other returns the endpoint opposite to id, and false if id is not an endpoint.
func (l Link) Other(id string) (string, bool) {
	switch id {
	case l.Source:
		return l.Target, true
	case l.Target:
		return l.Source, true
	}
	return "", false
}

// LinkKey is the unordered pair of endpoint IDs identifying a link regardless
// of direction. A is always lexically <= B.
type LinkKey struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewLinkKey builds the canonical key for the pair (u, v).
func NewLinkKey(u, v string) LinkKey {
	if v < u {
		u, v = v, u
	}
	return LinkKey{A: u, B: v}
}

// String renders the key as "a-b".
func (k LinkKey) String() string { return k.A + "-" + k.B }

// Set is a named, colored group of reference nodes. It is used both for
// coloring sets and for domain sets. Membership is by node ID.
type Set struct {
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Members []string `json:"nodes"`
}

// Contains reports whether id is a member of the set.
func (s Set) Contains(id string) bool { return slices.Contains(s.Members, id) }

// MemberIDs returns the distinct member IDs of all sets in first-seen order.
func MemberIDs(sets []Set) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, s := range sets {
		for _, m := range s.Members {
			if !seen[m] {
				seen[m] = true
				ids = append(ids, m)
			}
		}
	}
	return ids
}

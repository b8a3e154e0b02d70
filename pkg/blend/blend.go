package blend

import (
	"fmt"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// Transition deltas assigned to links.
const (
	// FadeOut drives a removed link toward zero strength.
	FadeOut = -0.01
	// FadeIn drives an appearing link toward its target strength.
	FadeIn = 0.01
	// Hold stops animating a retained link.
	Hold = 0.0
)

// Status classifies a view link against the next graph.
type Status int

const (
	// Retained links exist in both graphs (by undirected identity).
	Retained Status = iota
	// Removed links exist only in the view graph.
	Removed
)

// String returns "retained" or "removed".
func (s Status) String() string {
	if s == Removed {
		return "removed"
	}
	return "retained"
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "retained":
		*s = Retained
	case "removed":
		*s = Removed
	default:
		return fmt.Errorf("unknown link status %q", text)
	}
	return nil
}

// LinkUpdate is the new strength state for one view link.
type LinkUpdate struct {
	// Index is the position of the link in the view graph.
	Index int `json:"index"`
	// Key is the link identity, kept for logging and sanity checks.
	Key           graph.LinkKey `json:"key"`
	Status        Status        `json:"status"`
	Strength      float64       `json:"strength"`
	StrengthDelta float64       `json:"strengthDelta"`
}

// Patch is the set of link updates produced by [Blend]. It holds one update
// per view link, in view order.
type Patch struct {
	Updates []LinkUpdate `json:"updates"`
}

// Removed returns the number of links classified as removed.
func (p Patch) Removed() int {
	n := 0
	for _, u := range p.Updates {
		if u.Status == Removed {
			n++
		}
	}
	return n
}

// Retained returns the number of links classified as retained.
func (p Patch) Retained() int { return len(p.Updates) - p.Removed() }

// Apply writes the updates into g. g must be the view graph the patch was
// computed from, or a clone of it; a link whose identity no longer matches
// the update's key is rejected.
//
// Every update is checked before any is written, so a failed Apply leaves g
// unchanged. Apply requires exclusive access to g for the duration of the
// call.
func (p Patch) Apply(g *graph.Graph) error {
	for _, u := range p.Updates {
		l, ok := g.Link(u.Index)
		if !ok {
			return fmt.Errorf("apply link %d: %w", u.Index, graph.ErrLinkIndexOutOfRange)
		}
		if l.Key() != u.Key {
			return fmt.Errorf("apply link %d: %w: have %s, patch has %s", u.Index, ErrStalePatch, l.Key(), u.Key)
		}
	}
	for _, u := range p.Updates {
		_ = g.UpdateLink(u.Index, func(l *graph.Link) {
			l.Strength = u.Strength
			l.StrengthDelta = u.StrengthDelta
		})
	}
	return nil
}

// Blend reconciles the rendered view graph against a candidate next graph.
//
// Degrees are counted on next's links. For every view link (by index):
//   - identity absent from next: removed, Strength 0 and StrengthDelta [FadeOut].
//   - identity present in next: retained, Strength 1/min(deg(source), deg(target))
//     and StrengthDelta [Hold].
//
// Links that exist only in next are not part of the patch because they have no
// view index yet. Inserting them is the caller's job; [Appearing] lists them.
//
// Neither graph is modified.
func Blend(view, next *graph.Graph) Patch {
	nextLinks := next.Links()
	deg := graph.LinkDegrees(nextLinks)
	inNext := identities(nextLinks)

	viewLinks := view.Links()
	p := Patch{Updates: make([]LinkUpdate, len(viewLinks))}
	for i, l := range viewLinks {
		u := LinkUpdate{Index: i, Key: l.Key()}
		if inNext[u.Key] {
			u.Status = Retained
			u.Strength = 1.0 / float64(min(deg[l.Source], deg[l.Target]))
			u.StrengthDelta = Hold
		} else {
			u.Status = Removed
			u.Strength = 0
			u.StrengthDelta = FadeOut
		}
		p.Updates[i] = u
	}
	return p
}

// Appearing returns copies of next's links whose identity is absent from
// view, in next order, with Strength 0 and StrengthDelta [FadeIn]. Parallel
// links in next are all returned.
func Appearing(view, next *graph.Graph) []graph.Link {
	inView := identities(view.Links())
	var out []graph.Link
	for _, l := range next.Links() {
		if inView[l.Key()] {
			continue
		}
		l.Strength = 0
		l.StrengthDelta = FadeIn
		out = append(out, l)
	}
	return out
}

// BlendInPlace computes the patch and applies it to view immediately.
// The caller must hold exclusive access to view.
func BlendInPlace(view, next *graph.Graph) Patch {
	p := Blend(view, next)
	_ = p.Apply(view) // computed from view itself, cannot be stale
	return p
}

func identities(links []graph.Link) map[graph.LinkKey]bool {
	set := make(map[graph.LinkKey]bool, len(links))
	for _, l := range links {
		set[l.Key()] = true
	}
	return set
}

package blend

import (
	"errors"
	"testing"

	"github.com/matzehuels/ccmap/pkg/graph"
)

func build(t *testing.T, pairs ...[2]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, p := range pairs {
		for _, id := range p {
			if !g.HasNode(id) {
				if err := g.AddNode(graph.Node{ID: id}); err != nil {
					t.Fatalf("AddNode(%s): %v", id, err)
				}
			}
		}
		if err := g.AddLink(graph.Link{Source: p[0], Target: p[1], Strength: 0.5, StrengthDelta: 0.01}); err != nil {
			t.Fatalf("AddLink(%v): %v", p, err)
		}
	}
	return g
}

func TestBlend(t *testing.T) {
	view := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	// B-C is reversed in next and must still match.
	next := build(t, [2]string{"A", "B"}, [2]string{"C", "B"}, [2]string{"B", "E"})

	p := Blend(view, next)
	if len(p.Updates) != 3 {
		t.Fatalf("len(Updates) = %d, want 3", len(p.Updates))
	}

	tests := []struct {
		idx       int
		status    Status
		strength  float64
		strengthD float64
	}{
		{0, Retained, 1.0, Hold},   // deg(A)=1, deg(B)=3
		{1, Retained, 1.0, Hold},   // deg(C)=1
		{2, Removed, 0.0, FadeOut}, // C-D gone
	}
	for _, tt := range tests {
		u := p.Updates[tt.idx]
		if u.Index != tt.idx || u.Status != tt.status || u.Strength != tt.strength || u.StrengthDelta != tt.strengthD {
			t.Errorf("Updates[%d] = %+v, want status %v strength %v delta %v",
				tt.idx, u, tt.status, tt.strength, tt.strengthD)
		}
	}
	if p.Removed() != 1 || p.Retained() != 2 {
		t.Errorf("Removed/Retained = %d/%d, want 1/2", p.Removed(), p.Retained())
	}
}

func TestBlend_InverseDegree(t *testing.T) {
	view := build(t, [2]string{"H", "A"}, [2]string{"H", "B"})
	next := build(t,
		[2]string{"H", "A"}, [2]string{"H", "B"},
		[2]string{"A", "X"}, [2]string{"B", "X"}, [2]string{"B", "Y"},
	)

	p := Blend(view, next)
	// deg(H)=2, deg(A)=2, deg(B)=3
	if got := p.Updates[0].Strength; got != 0.5 {
		t.Errorf("H-A strength = %v, want 0.5", got)
	}
	if got := p.Updates[1].Strength; got != 0.5 {
		t.Errorf("H-B strength = %v, want 0.5", got)
	}
}

func TestBlend_DoesNotMutate(t *testing.T) {
	view := build(t, [2]string{"A", "B"})
	next := build(t, [2]string{"C", "D"})

	_ = Blend(view, next)
	l, _ := view.Link(0)
	if l.Strength != 0.5 || l.StrengthDelta != 0.01 {
		t.Errorf("view link mutated: %+v", l)
	}
}

func TestBlend_Bounds(t *testing.T) {
	view := build(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"},
		[2]string{"C", "D"}, [2]string{"D", "E"},
	)
	next := build(t, [2]string{"A", "B"}, [2]string{"C", "B"}, [2]string{"D", "E"}, [2]string{"E", "F"})

	p := BlendInPlace(view, next)
	for i, l := range view.Links() {
		if l.Strength < 0 || l.Strength > 1 {
			t.Errorf("link %d strength %v out of [0,1]", i, l.Strength)
		}
		switch l.StrengthDelta {
		case FadeOut, Hold, FadeIn:
		default:
			t.Errorf("link %d delta %v", i, l.StrengthDelta)
		}
		if p.Updates[i].Status == Removed && l.Strength != 0 {
			t.Errorf("removed link %d strength %v, want 0", i, l.Strength)
		}
	}
}

func TestPatch_Apply(t *testing.T) {
	view := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	next := build(t, [2]string{"B", "A"})

	p := Blend(view, next)
	target := view.Clone()
	if err := p.Apply(target); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	ab, _ := target.Link(0)
	if ab.Strength != 1 || ab.StrengthDelta != Hold {
		t.Errorf("A-B = %+v, want strength 1 delta 0", ab)
	}
	bc, _ := target.Link(1)
	if bc.Strength != 0 || bc.StrengthDelta != FadeOut {
		t.Errorf("B-C = %+v, want strength 0 delta -0.01", bc)
	}
}

func TestPatch_ApplyStale(t *testing.T) {
	view := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	next := build(t, [2]string{"A", "B"})
	p := Blend(view, next)

	other := build(t, [2]string{"A", "B"}, [2]string{"C", "D"})
	if err := p.Apply(other); !errors.Is(err, ErrStalePatch) {
		t.Errorf("Apply(other) = %v, want ErrStalePatch", err)
	}

	short := build(t, [2]string{"A", "B"})
	if err := p.Apply(short); !errors.Is(err, graph.ErrLinkIndexOutOfRange) {
		t.Errorf("Apply(short) = %v, want ErrLinkIndexOutOfRange", err)
	}
}

func TestPatch_ApplyStaleLeavesGraphUnchanged(t *testing.T) {
	view := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	next := build(t, [2]string{"A", "B"})
	p := Blend(view, next)

	// Link 0 matches the patch, link 1 does not.
	target := build(t, [2]string{"A", "B"}, [2]string{"C", "D"})
	before := target.Links()
	if err := p.Apply(target); !errors.Is(err, ErrStalePatch) {
		t.Fatalf("Apply = %v, want ErrStalePatch", err)
	}
	after := target.Links()
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("link %d changed by failed Apply: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestAppearing(t *testing.T) {
	view := build(t, [2]string{"A", "B"})
	next := build(t, [2]string{"B", "A"}, [2]string{"B", "C"}, [2]string{"C", "B"})

	got := Appearing(view, next)
	if len(got) != 2 {
		t.Fatalf("len(Appearing) = %d, want 2 (parallel links kept)", len(got))
	}
	for _, l := range got {
		if l.Key() != graph.NewLinkKey("B", "C") {
			t.Errorf("unexpected appearing link %v", l.Key())
		}
		if l.Strength != 0 || l.StrengthDelta != FadeIn {
			t.Errorf("appearing link = %+v, want strength 0 delta %v", l, FadeIn)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if Retained.String() != "retained" || Removed.String() != "removed" {
		t.Errorf("String() = %q, %q", Retained, Removed)
	}
}

func TestStatus_Text(t *testing.T) {
	for _, s := range []Status{Retained, Removed} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var got Status
		if err := got.UnmarshalText(text); err != nil || got != s {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, got, err)
		}
	}

	var s Status
	if err := s.UnmarshalText([]byte("faded")); err == nil {
		t.Error("expected error for unknown status")
	}
}

package pathfind

import (
	"testing"

	"github.com/matzehuels/ccmap/pkg/graph"
)

func TestDegreesOfSeparation(t *testing.T) {
	links := []graph.Link{
		{Source: "A", Target: "B", Type: graph.LinkTypeDependency},
		{Source: "B", Target: "C", Type: graph.LinkTypeTag},
		{Source: "D", Target: "E"},
	}

	d := DegreesOfSeparation(links, "A")
	want := map[string]float64{"A": 0, "B": 3, "C": 13, "D": Inf, "E": Inf}
	if len(d) != len(want) {
		t.Errorf("len = %d, want %d (%v)", len(d), len(want), d)
	}
	for id, w := range want {
		if d[id] != w {
			t.Errorf("d[%s] = %v, want %v", id, d[id], w)
		}
	}
}

func TestDegreesOfSeparation_UnknownSeed(t *testing.T) {
	links := []graph.Link{{Source: "A", Target: "B"}}
	d := DegreesOfSeparation(links, "Z")
	if d["Z"] != 0 {
		t.Errorf("d[Z] = %v, want 0", d["Z"])
	}
	if d["A"] != Inf || d["B"] != Inf {
		t.Errorf("d = %v, want A and B unreachable", d)
	}
}

func TestDegreesOfSeparation_MatchesShortestPath(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("B", "C", 1), link("A", "C", 4), link("C", "D", 2)}
	d := DegreesOfSeparation(links, "A")
	for _, id := range []string{"B", "C", "D"} {
		if sp := ShortestPath(links, "A", id).Distance; d[id] != sp {
			t.Errorf("d[%s] = %v, ShortestPath = %v", id, d[id], sp)
		}
	}
}

func TestDistances_To(t *testing.T) {
	d := Distances{"a": 2}
	if d.To("a") != 2 {
		t.Errorf("To(a) = %v", d.To("a"))
	}
	if d.To("missing") != Inf {
		t.Errorf("To(missing) = %v, want Inf", d.To("missing"))
	}
}

func TestBuildDistanceTable(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("B", "C", 2)}
	table := BuildDistanceTable(links, []string{"A", "C", "A"})

	if len(table) != 2 {
		t.Errorf("len(table) = %d, want 2", len(table))
	}
	if got := table.Lookup("A", "C"); got != 3 {
		t.Errorf("Lookup(A, C) = %v, want 3", got)
	}
	if got := table.Lookup("C", "A"); got != 3 {
		t.Errorf("Lookup(C, A) = %v, want 3", got)
	}
	if got := table.Lookup("Z", "A"); got != Inf {
		t.Errorf("Lookup(Z, A) = %v, want Inf", got)
	}
}

package pathfind

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/ccmap/pkg/graph"
)

func link(s, t string, w float64) graph.Link {
	return graph.Link{Source: s, Target: t, Weight: w}
}

func TestShortestPath_Triangle(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("B", "C", 1), link("A", "C", 4)}

	p := ShortestPath(links, "A", "C")
	if p.Distance != 2 {
		t.Errorf("Distance = %v, want 2", p.Distance)
	}
	if !slices.Equal(p.Nodes, []string{"A", "B", "C"}) {
		t.Errorf("Nodes = %v, want [A B C]", p.Nodes)
	}
}

func TestShortestPath_Reverse(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("B", "C", 1), link("A", "C", 4)}

	p := ShortestPath(links, "C", "A")
	if p.Distance != 2 || !slices.Equal(p.Nodes, []string{"C", "B", "A"}) {
		t.Errorf("ShortestPath(C, A) = %v %v, want 2 [C B A]", p.Distance, p.Nodes)
	}
}

func TestShortestPath_TieBreak(t *testing.T) {
	// Two equal routes A-B-D and A-C-D; B is first in link order.
	links := []graph.Link{link("A", "B", 1), link("A", "C", 1), link("B", "D", 1), link("C", "D", 1)}

	p := ShortestPath(links, "A", "D")
	if !slices.Equal(p.Nodes, []string{"A", "B", "D"}) {
		t.Errorf("Nodes = %v, want [A B D]", p.Nodes)
	}

	// Swapping link order flips the winner.
	links = []graph.Link{link("A", "C", 1), link("A", "B", 1), link("C", "D", 1), link("B", "D", 1)}
	p = ShortestPath(links, "A", "D")
	if !slices.Equal(p.Nodes, []string{"A", "C", "D"}) {
		t.Errorf("Nodes = %v, want [A C D]", p.Nodes)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("C", "D", 1)}

	tests := []struct {
		name       string
		start, end string
	}{
		{"disconnected", "A", "D"},
		{"unknown end", "A", "Z"},
		{"unknown start", "Z", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ShortestPath(links, tt.start, tt.end)
			if p.Found() {
				t.Errorf("Found() = true, want false")
			}
			if p.Distance != Inf {
				t.Errorf("Distance = %v, want Inf", p.Distance)
			}
			if len(p.Nodes) != 0 {
				t.Errorf("Nodes = %v, want empty", p.Nodes)
			}
		})
	}
}

func TestShortestPath_SameNode(t *testing.T) {
	links := []graph.Link{link("A", "B", 1)}
	p := ShortestPath(links, "A", "A")
	if p.Distance != 0 || !slices.Equal(p.Nodes, []string{"A"}) {
		t.Errorf("ShortestPath(A, A) = %v %v, want 0 [A]", p.Distance, p.Nodes)
	}
}

func TestShortestPath_TypeWeights(t *testing.T) {
	// tag=10 direct, dependency=3 + support=1 around.
	links := []graph.Link{
		{Source: "A", Target: "C", Type: graph.LinkTypeTag},
		{Source: "A", Target: "B", Type: graph.LinkTypeDependency},
		{Source: "B", Target: "C", Type: graph.LinkTypeSupport},
	}
	p := ShortestPath(links, "A", "C")
	if p.Distance != 4 || !slices.Equal(p.Nodes, []string{"A", "B", "C"}) {
		t.Errorf("ShortestPath = %v %v, want 4 [A B C]", p.Distance, p.Nodes)
	}
}

func TestShortestPath_ParallelLinksLaterWins(t *testing.T) {
	tests := []struct {
		links []graph.Link
		want  float64
	}{
		{[]graph.Link{link("A", "B", 5), link("B", "A", 2)}, 2},
		{[]graph.Link{link("A", "B", 2), link("A", "B", 5)}, 5},
	}

	for _, tt := range tests {
		if got := ShortestPath(tt.links, "A", "B").Distance; got != tt.want {
			t.Errorf("Distance = %v, want %v", got, tt.want)
		}
	}
}

func TestAllShortestPaths_Square(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("A", "C", 1), link("B", "D", 1), link("C", "D", 1)}

	p := AllShortestPaths(links, "A", "D")
	if p.Distance != 2 {
		t.Errorf("Distance = %v, want 2", p.Distance)
	}
	want := [][]string{{"A", "B", "D"}, {"A", "C", "D"}}
	if !slices.EqualFunc(p.Routes, want, slices.Equal) {
		t.Errorf("Routes = %v, want %v", p.Routes, want)
	}
}

func TestAllShortestPaths_MaxPaths(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("A", "C", 1), link("B", "D", 1), link("C", "D", 1)}

	p := AllShortestPaths(links, "A", "D", WithMaxPaths(1))
	if len(p.Routes) != 1 {
		t.Fatalf("len(Routes) = %d, want 1", len(p.Routes))
	}
	if !slices.Equal(p.Routes[0], []string{"A", "B", "D"}) {
		t.Errorf("Routes[0] = %v, want [A B D]", p.Routes[0])
	}
}

func TestAllShortestPaths_Unreachable(t *testing.T) {
	links := []graph.Link{link("A", "B", 1), link("C", "D", 1)}
	p := AllShortestPaths(links, "A", "D")
	if p.Found() || len(p.Routes) != 0 {
		t.Errorf("AllShortestPaths = %v %v, want Inf and no routes", p.Distance, p.Routes)
	}
}

func TestAllShortestPaths_SameNode(t *testing.T) {
	links := []graph.Link{link("A", "B", 1)}
	p := AllShortestPaths(links, "A", "A")
	if p.Distance != 0 || len(p.Routes) != 1 || !slices.Equal(p.Routes[0], []string{"A"}) {
		t.Errorf("AllShortestPaths(A, A) = %v %v", p.Distance, p.Routes)
	}
}

func TestAllShortestPaths_Ladder(t *testing.T) {
	// Three diamonds in a row: 2^3 equal routes.
	var links []graph.Link
	prev := "n0"
	for i := 1; i <= 3; i++ {
		top, bottom, next := fmt.Sprintf("t%d", i), fmt.Sprintf("b%d", i), fmt.Sprintf("n%d", i)
		links = append(links,
			link(prev, top, 1), link(prev, bottom, 1),
			link(top, next, 1), link(bottom, next, 1))
		prev = next
	}

	p := AllShortestPaths(links, "n0", "n3")
	if p.Distance != 6 {
		t.Errorf("Distance = %v, want 6", p.Distance)
	}
	if len(p.Routes) != 8 {
		t.Errorf("len(Routes) = %d, want 8", len(p.Routes))
	}
}

// routeWeight sums the effective weights along route using the same
// later-link-wins rule as the adjacency list.
func routeWeight(t *testing.T, links []graph.Link, route []string) float64 {
	t.Helper()
	w := make(map[graph.LinkKey]float64)
	for _, l := range links {
		w[l.Key()] = l.EffectiveWeight()
	}
	var sum float64
	for i := 1; i < len(route); i++ {
		lw, ok := w[graph.NewLinkKey(route[i-1], route[i])]
		if !ok {
			t.Fatalf("route %v uses missing link %s-%s", route, route[i-1], route[i])
		}
		sum += lw
	}
	return sum
}

func randomLinks(r *rand.Rand, nodes, edges int) []graph.Link {
	var links []graph.Link
	for i := 0; i < edges; i++ {
		a, b := r.Intn(nodes), r.Intn(nodes)
		if a == b {
			continue
		}
		links = append(links, link(fmt.Sprintf("v%d", a), fmt.Sprintf("v%d", b), float64(1+r.Intn(3))))
	}
	return links
}

func TestShortestPathsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		links := randomLinks(r, 8, 14)
		ids := graph.LinkNodeIDs(links)
		if len(ids) < 2 {
			continue
		}
		start, end := ids[0], ids[len(ids)-1]

		single := ShortestPath(links, start, end)
		all := AllShortestPaths(links, start, end)

		if single.Distance != all.Distance {
			t.Fatalf("iter %d: ShortestPath = %v, AllShortestPaths = %v", iter, single.Distance, all.Distance)
		}
		if !single.Found() {
			continue
		}
		if got := routeWeight(t, links, single.Nodes); got != single.Distance {
			t.Errorf("iter %d: path %v weighs %v, want %v", iter, single.Nodes, got, single.Distance)
		}
		if len(all.Routes) == 0 {
			t.Fatalf("iter %d: no routes for reachable pair", iter)
		}
		for _, route := range all.Routes {
			if got := routeWeight(t, links, route); got != all.Distance {
				t.Errorf("iter %d: route %v weighs %v, want %v", iter, route, got, all.Distance)
			}
			if route[0] != start || route[len(route)-1] != end {
				t.Errorf("iter %d: route %v does not run %s -> %s", iter, route, start, end)
			}
		}
	}
}

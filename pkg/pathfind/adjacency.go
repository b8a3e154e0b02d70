package pathfind

import (
	"math"
	"slices"

	"github.com/matzehuels/ccmap/pkg/graph"
)

// Inf is the distance reported for unreachable nodes.
var Inf = math.Inf(1)

type neighbor struct {
	id     string
	weight float64
}

// adjacency is an undirected weighted adjacency list that remembers the order
// in which nodes and neighbors were first seen.
type adjacency struct {
	order []string
	nbrs  map[string][]neighbor
}

// newAdjacency builds the adjacency list for links. A later parallel link
// between the same pair overwrites the earlier weight but keeps the
// neighbor's original position.
func newAdjacency(links []graph.Link) *adjacency {
	a := &adjacency{nbrs: make(map[string][]neighbor)}
	for _, l := range links {
		a.addNode(l.Source)
		a.addNode(l.Target)
	}
	for _, l := range links {
		w := l.EffectiveWeight()
		a.setWeight(l.Source, l.Target, w)
		a.setWeight(l.Target, l.Source, w)
	}
	return a
}

func (a *adjacency) addNode(id string) {
	if _, ok := a.nbrs[id]; ok {
		return
	}
	a.nbrs[id] = nil
	a.order = append(a.order, id)
}

func (a *adjacency) setWeight(from, to string, w float64) {
	list := a.nbrs[from]
	for i := range list {
		if list[i].id == to {
			list[i].weight = w
			return
		}
	}
	a.nbrs[from] = append(list, neighbor{id: to, weight: w})
}

func (a *adjacency) has(id string) bool {
	_, ok := a.nbrs[id]
	return ok
}

// frontier is the linear-scan priority structure: every pop scans the whole
// queue for the smallest tentative distance. Among equal distances the node
// first inserted into the adjacency wins. O(V) per pop, O(V²) overall.
type frontier struct {
	queue []string
	dist  map[string]float64
}

func newFrontier(a *adjacency, start string) *frontier {
	f := &frontier{
		queue: slices.Clone(a.order),
		dist:  make(map[string]float64, len(a.order)),
	}
	for _, id := range a.order {
		f.dist[id] = Inf
	}
	if a.has(start) {
		f.dist[start] = 0
	}
	return f
}

func (f *frontier) empty() bool { return len(f.queue) == 0 }

// pop removes and returns the node with the smallest tentative distance.
func (f *frontier) pop() (string, float64) {
	best := 0
	for i := 1; i < len(f.queue); i++ {
		if f.dist[f.queue[i]] < f.dist[f.queue[best]] {
			best = i
		}
	}
	id := f.queue[best]
	f.queue = slices.Delete(f.queue, best, best+1)
	return id, f.dist[id]
}

package pathfind

import "github.com/matzehuels/ccmap/pkg/graph"

// Distances maps node IDs to their shortest distance from a seed.
type Distances map[string]float64

// To returns the distance to id, or Inf if id is not in the map.
func (d Distances) To(id string) float64 {
	if v, ok := d[id]; ok {
		return v
	}
	return Inf
}

// DistanceTable maps seed IDs to their distance maps. It is built once per
// reference-set member before scoring and is read-only afterwards.
type DistanceTable map[string]Distances

// Lookup returns the distance from seed to id, or Inf if either is unknown.
func (t DistanceTable) Lookup(seed, id string) float64 {
	return t[seed].To(id)
}

// DegreesOfSeparation returns the shortest distance from seed to every node
// that appears in links, with Inf for unreachable nodes. The seed always maps
// to 0, even if no link touches it.
func DegreesOfSeparation(links []graph.Link, seed string) Distances {
	return newAdjacency(links).separation(seed)
}

// BuildDistanceTable runs [DegreesOfSeparation] once for each distinct seed,
// sharing a single adjacency list.
func BuildDistanceTable(links []graph.Link, seeds []string) DistanceTable {
	adj := newAdjacency(links)
	table := make(DistanceTable, len(seeds))
	for _, s := range seeds {
		if _, done := table[s]; done {
			continue
		}
		table[s] = adj.separation(s)
	}
	return table
}

func (a *adjacency) separation(seed string) Distances {
	f := newFrontier(a, seed)
	settled := make(map[string]bool)

	for !f.empty() {
		cur, d := f.pop()
		if d == Inf {
			break
		}
		settled[cur] = true
		for _, nb := range a.nbrs[cur] {
			if settled[nb.id] {
				continue
			}
			if nd := d + nb.weight; nd < f.dist[nb.id] {
				f.dist[nb.id] = nd
			}
		}
	}

	out := Distances(f.dist)
	out[seed] = 0
	return out
}

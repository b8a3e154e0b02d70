package classify

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/ccmap/pkg/graph"
	"github.com/matzehuels/ccmap/pkg/pathfind"
)

// MaxScore is the score a member of a set receives against that set. No
// non-member scores this high.
const MaxScore = 1.0

// ErrUnknownScorer is returned by [ParseScorer] for an unrecognized name.
var ErrUnknownScorer = errors.New("unknown scorer")

// Scorer rates the affinity of a node to a set.
//
// Implementations must return [MaxScore] for members of the set, a value in
// [0, MaxScore) otherwise that does not increase as distances grow, and 0 when
// no member is reachable. table must hold an entry for every member of set.
type Scorer interface {
	Score(nodeID string, set graph.Set, table pathfind.DistanceTable) float64
}

// MeanAffinity averages 1/(1+d) over all members of the set, where d is the
// distance from the member to the node. Unreachable members contribute 0, so a
// node close to many members beats a node close to one.
//
// Cutoff, if positive, treats members farther than Cutoff as unreachable.
type MeanAffinity struct {
	Cutoff float64
}

// Score implements [Scorer].
func (m MeanAffinity) Score(nodeID string, set graph.Set, table pathfind.DistanceTable) float64 {
	if set.Contains(nodeID) {
		return MaxScore
	}
	if len(set.Members) == 0 {
		return 0
	}
	var sum float64
	for _, member := range set.Members {
		sum += affinity(table.Lookup(member, nodeID), m.Cutoff)
	}
	return sum / float64(len(set.Members))
}

// NearestAffinity scores 1/(1+d) for the closest member only.
//
// Cutoff, if positive, treats members farther than Cutoff as unreachable.
type NearestAffinity struct {
	Cutoff float64
}

// Score implements [Scorer].
func (n NearestAffinity) Score(nodeID string, set graph.Set, table pathfind.DistanceTable) float64 {
	if set.Contains(nodeID) {
		return MaxScore
	}
	nearest := math.Inf(1)
	for _, member := range set.Members {
		nearest = min(nearest, table.Lookup(member, nodeID))
	}
	return affinity(nearest, n.Cutoff)
}

// maxNonMember is the highest score a non-member can reach. 1/(1+d) rounds
// to MaxScore for tiny positive d.
var maxNonMember = math.Nextafter(MaxScore, 0)

func affinity(d, cutoff float64) float64 {
	if math.IsInf(d, 1) || (cutoff > 0 && d > cutoff) {
		return 0
	}
	return min(1/(1+d), maxNonMember)
}

// Scorer names accepted by [ParseScorer].
const (
	ScorerMean    = "mean"
	ScorerNearest = "nearest"
)

// ParseScorer returns the scorer registered under name with the given cutoff.
// An empty name selects [MeanAffinity].
func ParseScorer(name string, cutoff float64) (Scorer, error) {
	switch strings.ToLower(name) {
	case "", ScorerMean:
		return MeanAffinity{Cutoff: cutoff}, nil
	case ScorerNearest:
		return NearestAffinity{Cutoff: cutoff}, nil
	}
	return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownScorer, name, ScorerMean, ScorerNearest)
}

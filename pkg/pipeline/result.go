package pipeline

import (
	"encoding/json"
	"math"
	"time"

	"github.com/matzehuels/ccmap/pkg/blend"
	"github.com/matzehuels/ccmap/pkg/graph"
)

// Operation names used in reports, cache keys and hooks.
const (
	OpPath       = "path"
	OpSeparation = "separation"
	OpMST        = "mst"
	OpColor      = "color"
	OpDomains    = "domains"
	OpBlend      = "blend"
)

// Report wraps an analysis result with run metadata.
type Report[T any] struct {
	// RunID identifies this invocation in logs, even when served from cache.
	RunID string `json:"run_id"`
	Op    string `json:"op"`
	// InputHash is the content hash of every input the result depends on.
	InputHash string        `json:"input_hash"`
	CacheHit  bool          `json:"cache_hit"`
	Duration  time.Duration `json:"duration_ns"`
	Result    T             `json:"result"`
}

// Distance is a path length that encodes +Inf (unreachable) as JSON null.
type Distance float64

// Unreachable is the distance of a node that cannot be reached.
var Unreachable = Distance(math.Inf(1))

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool { return !math.IsInf(float64(d), 1) }

// MarshalJSON writes null for unreachable distances.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Reachable() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

// UnmarshalJSON reads null as unreachable.
func (d *Distance) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Unreachable
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Distance(f)
	return nil
}

// PathResult is the output of a path query.
type PathResult struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Distance Distance   `json:"distance"`
	Routes   [][]string `json:"routes"`
}

// SeparationResult is the output of a degrees-of-separation query.
type SeparationResult struct {
	Seed      string              `json:"seed"`
	Distances map[string]Distance `json:"distances"`
}

// TreeResult is the output of a spanning tree build.
type TreeResult struct {
	Seed        string       `json:"seed"`
	TotalWeight float64      `json:"total_weight"`
	Complete    bool         `json:"complete"`
	Included    []string     `json:"included"`
	Edges       []graph.Link `json:"edges"`
}

// BlendResult is the output of a blend between two graph snapshots.
type BlendResult struct {
	Patch     blend.Patch  `json:"patch"`
	Appearing []graph.Link `json:"appearing"`
}

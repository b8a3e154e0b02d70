package cache

// Keyer builds cache keys.
type Keyer interface {
	// AnalysisKey identifies an analysis result for the input with the given
	// content hash.
	AnalysisKey(inputHash string, opts AnalysisKeyOpts) string
	// ArtifactKey identifies a rendered artifact of the graph with the given
	// content hash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// AnalysisKeyOpts holds every parameter that changes an analysis result.
type AnalysisKeyOpts struct {
	Op       string   // Analysis name (path, mst, color, ...)
	Args     []string // Positional arguments such as node IDs
	Scorer   string
	Cutoff   float64
	MaxPaths int
}

// ArtifactKeyOpts holds every parameter that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string
	Layout   string
	Detailed bool
}

// DefaultKeyer hashes inputs and options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AnalysisKey returns "analysis:<op>:<sha256>".
func (DefaultKeyer) AnalysisKey(inputHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis:"+opts.Op, inputHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, graphHash, opts)
}

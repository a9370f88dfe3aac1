package cache

// ArtifactKeyOpts are the render inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"f"`
	Scale  float64 `json:"s,omitempty"`
	Title  bool    `json:"title,omitempty"`
	Grid   bool    `json:"grid,omitempty"`
}

// Keyer derives cache keys. Artifacts are keyed by the hash of the scene
// they were rendered from, so any change to the scene invalidates them.
// Scenes themselves are rebuilt on every request.
type Keyer interface {
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
	CatalogKey(format string, detailed bool) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, sceneHash, opts)
}

func (DefaultKeyer) CatalogKey(format string, detailed bool) string {
	return hashKey("catalog:"+format, detailed)
}

package cache

// ScopedKeyer prefixes every key of an inner [Keyer]. Deployments sharing one
// Redis or Mongo instance use it to keep their entries apart, and
// [RedisCache.Clear] only drops keys under its own prefix.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "uithings:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}

func (k *ScopedKeyer) CatalogKey(format string, detailed bool) string {
	return k.prefix + k.inner.CatalogKey(format, detailed)
}

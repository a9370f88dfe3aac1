// Package cache stores built scenes and rendered artifacts.
//
// # Overview
//
// Building a scene is cheap, but rasterising PNGs and laying out the
// Graphviz catalog are not, so the pipeline caches their output behind the
// [Cache] interface. Backends:
//
//   - [FileCache]: JSON entries under the user cache directory (CLI default)
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: document store with a TTL index
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so every caller derives the same key for
// the same inputs:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(sceneHash, cache.ArtifactKeyOpts{Format: "png", Scale: 2})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLCatalog  = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend connections.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

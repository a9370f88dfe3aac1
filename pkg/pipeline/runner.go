package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uithings/pkg/cache"
	"github.com/matzehuels/uithings/pkg/observability"
	"github.com/matzehuels/uithings/pkg/render/sink"
	"github.com/matzehuels/uithings/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching and logging behave the same.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long rendered artifacts stay cached. Zero means
	// cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, opts.DemoID)
	s, err := Build(opts)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, opts.DemoID, 0, result.Stats.BuildTime, err)
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Scene = s
	result.Stats.Elements = len(s.Elements) + len(s.Shadows)
	result.Stats.Labels = len(s.Labels)
	observability.Pipeline().OnBuildComplete(ctx, opts.DemoID, result.Stats.Elements, result.Stats.BuildTime, nil)

	hash, err := SceneHash(s)
	if err != nil {
		return nil, fmt.Errorf("hash scene: %w", err)
	}
	result.SceneHash = hash

	r.Logger.Debug("built scene",
		"demo", opts.DemoID,
		"elements", result.Stats.Elements,
		"labels", result.Stats.Labels,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, s, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders every requested format, reading and writing the
// cache per format. It reports a hit only if every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *scene.Scene, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			} else if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, missing)
	for _, format := range missing {
		data, err := RenderFormat(s, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.artifactTTL()); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), nil)
	return artifacts, false, nil
}

// Catalog renders the registry diagram with caching.
func (r *Runner) Catalog(ctx context.Context, format string, detailed, refresh bool) ([]byte, bool, error) {
	key := r.Keyer.CatalogKey(format, detailed)
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "catalog")
			return data, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "catalog")

	start := time.Now()
	data, err := RenderCatalog(ctx, format, detailed)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered catalog", "format", format, "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.TTLCatalog); err == nil {
		observability.Cache().OnCacheSet(ctx, "catalog", len(data))
	}
	return data, false, nil
}

func (r *Runner) artifactTTL() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// SceneHash returns the content hash used to key a scene's artifacts.
func SceneHash(s *scene.Scene) (string, error) {
	data, err := sink.RenderJSON(s)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

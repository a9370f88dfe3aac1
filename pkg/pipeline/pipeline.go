// Package pipeline provides the build → render pipeline for uithings.
//
// This package implements the path from a demo id to rendered artifacts
// that the CLI and the HTTP API share. By centralizing this logic, both
// entry points validate, cache and log the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Look up the demo and lay out its scene
//  2. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Scenes are cheap and always rebuilt. Rendered artifacts are cached under
// the hash of the scene they came from, so changing the canvas, offset,
// variant or text yields new keys automatically.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DemoID:  "hole-button",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/cache"
	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/render"
	"github.com/matzehuels/uithings/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// MaxScale bounds PNG size; 4x of the default canvas is already ~5.5MP.
	MaxScale = 4.0

	// MaxCanvas bounds either canvas dimension.
	MaxCanvas = 4096.0
)

// ValidFormats is the set of supported scene output formats.
var ValidFormats = render.Formats

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Build options
	DemoID  string  `json:"demo"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Offset  float64 `json:"offset,omitempty"`
	Variant string  `json:"variant,omitempty"`
	Text    string  `json:"text,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Title   bool     `json:"title,omitempty"`
	NoGrid  bool     `json:"no_grid,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the built demo scene.
	Scene *scene.Scene

	// SceneHash is the content hash of the scene's JSON export.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Elements   int
	Labels     int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list, trimming blanks and dropping
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateDemoID(o.DemoID); err != nil {
		return err
	}
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = scene.DefaultCanvas.W, scene.DefaultCanvas.H
	}
	if !(o.Width > 0 && o.Height > 0 && o.Width <= MaxCanvas && o.Height <= MaxCanvas) {
		return errors.New(errors.ErrCodeInvalidGeometry, "canvas must be within (0, %v], got %vx%v", MaxCanvas, o.Width, o.Height)
	}
	if o.Offset == 0 {
		o.Offset = annotate.DefaultOffset
	}
	if !(o.Offset > 0) {
		return errors.New(errors.ErrCodeInvalidGeometry, "offset must be positive, got %v", o.Offset)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if !(o.Scale > 0 && o.Scale <= MaxScale) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be within (0, %v], got %v", MaxScale, o.Scale)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// DemoOptions returns the scene build options.
func (o *Options) DemoOptions() demo.Options {
	return demo.Options{
		Canvas:  geom.Sz(o.Width, o.Height),
		Offset:  o.Offset,
		Variant: o.Variant,
		Text:    o.Text,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Title: o.Title, Grid: !o.NoGrid}
	if format == render.FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

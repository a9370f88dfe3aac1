package demo

import (
	"image/color"
	"slices"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// Category groups demos in the list.
type Category string

const (
	CategoryViews        Category = "Views"
	CategoryLayout       Category = "Layout"
	CategoryAnimation    Category = "Animation"
	CategoryInteractions Category = "Interactions"
	CategoryAdvanced     Category = "Advanced"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryViews, CategoryLayout, CategoryAnimation, CategoryInteractions, CategoryAdvanced}

// Color is the accent used for the category in lists and diagrams.
func (c Category) Color() color.NRGBA {
	switch c {
	case CategoryViews:
		return scene.SystemBlue
	case CategoryLayout:
		return scene.SystemGreen
	case CategoryAnimation:
		return scene.SystemOrange
	case CategoryInteractions:
		return scene.SystemPurple
	case CategoryAdvanced:
		return scene.SystemRed
	}
	return scene.Black
}

// Options tune how a demo scene is built. Zero values mean defaults.
type Options struct {
	Canvas  geom.Size // content area, default scene.DefaultCanvas
	Offset  float64   // label gap, default annotate.DefaultOffset
	Variant string    // demo-specific alternative layout
	Text    string    // text typed into the expanding field
}

func (o Options) withDefaults() Options {
	if o.Canvas.W == 0 || o.Canvas.H == 0 {
		o.Canvas = scene.DefaultCanvas
	}
	if o.Offset == 0 {
		o.Offset = annotate.DefaultOffset
	}
	return o
}

// Demo is one entry in the catalog.
type Demo struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Variants    []string // accepted Options.Variant values besides ""

	build func(Demo, Options) *scene.Scene
}

// Build lays out the demo's scene.
func (d Demo) Build(opts Options) (*scene.Scene, error) {
	opts = opts.withDefaults()
	if !opts.Canvas.IsFinite() || opts.Canvas.W < 0 || opts.Canvas.H < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "invalid canvas %vx%v", opts.Canvas.W, opts.Canvas.H)
	}
	if opts.Offset < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "label offset must be >= 0, got %v", opts.Offset)
	}
	if opts.Variant != "" && !slices.Contains(d.Variants, opts.Variant) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "demo %s has no variant %q", d.ID, opts.Variant)
	}
	return d.build(d, opts), nil
}

func newBuilder(d Demo, opts Options) *scene.Builder {
	return scene.NewBuilder(d.ID, d.Title, opts.Canvas).SetOffset(opts.Offset)
}

// summaryFrame is the full-width panel rect the demos put their
// explanations in.
func summaryFrame(opts Options, y float64) geom.Rect {
	return geom.R(20, y, opts.Canvas.W-40, 0)
}

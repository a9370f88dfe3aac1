package demo

import (
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// VariantSeparate draws the two bars apart, each with its own shadow.
const VariantSeparate = "separate"

// TShape returns the overlapping-shadow bars. Combined groups share one
// shadow path; separate ones cast two shadows that fall on each other.
func TShape(combined bool) scene.ShadowGroup {
	g := scene.NewShadowGroup("t-shape", scene.SystemGreen, combined)
	// Container at (100, 100); the bars are laid out relative to it.
	container := geom.R(100, 100, 250, 280)
	g.Add(geom.R(0, 0, 250, 40).Offset(container.X, container.Y), 12)
	g.Add(geom.R(105, 20, 40, 260).Offset(container.X, container.Y), 12)
	return g
}

func buildOverlappingShadow(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts)

	if opts.Variant == VariantSeparate {
		b.AddShadowGroup(TShape(false))
		b.AddPanel(`Separate Views (Standard Shadows):
Both bars carry their own shadow.
- each shadow shows on all sides
- the shadows are independent
- the stem's shadow falls on the top bar`, summaryFrame(opts, 400), scene.SystemOrange)
		return b.Scene()
	}

	b.AddShadowGroup(TShape(true))
	b.AddPanel(`T-Shape with Unified Shadow:
Both bars share one shadow path.
- the shadow follows the outer contour
- no shadow at the junction
- renders as a single object
How it works:
1. group both bars
2. append both rounded rects into one path
3. cast one shadow from the combined path
4. only the outer edges are shaded`, summaryFrame(opts, 400), scene.SystemOrange)

	return b.Scene()
}

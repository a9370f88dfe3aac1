package demo

import (
	"fmt"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// FrameOverride records a constrained view's frame around a manual
// assignment.
type FrameOverride struct {
	Before      geom.Rect // after the first layout pass
	AfterSet    geom.Rect // right after assigning the frame
	AfterLayout geom.Rect // after the next layout pass
}

// OverrideFrame builds the constrained pair used by the frame-vs-autolayout
// demo, assigns manual to the constrained child and reports its frame at each
// step.
func OverrideFrame(manual geom.Rect) (FrameOverride, *scene.View) {
	parent := scene.NewView("parent", geom.R(150, 100, 100, 100), scene.WithAlpha(scene.Green, 0.3))
	child := scene.NewView("auto-layout-subview", geom.Rect{}, scene.WithAlpha(scene.Red, 0.85))
	parent.AddSubview(child)
	child.Activate(
		scene.Anchor(scene.AttrTop, parent, scene.AttrBottom, 20),
		scene.Anchor(scene.AttrLeading, parent, scene.AttrTrailing, 20),
		scene.Equal(scene.AttrWidth, 100),
		scene.Equal(scene.AttrHeight, 100),
	)

	var r FrameOverride
	parent.LayoutIfNeeded()
	r.Before = child.Frame
	child.SetFrame(manual)
	r.AfterSet = child.Frame
	parent.LayoutIfNeeded()
	r.AfterLayout = child.Frame
	return r, parent
}

func buildFrameVsAutoLayout(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts)

	r, parent := OverrideFrame(geom.R(50, 50, 80, 40))
	b.AddView(parent, scene.Highlight{})

	b.AddPanel(fmt.Sprintf(`Subview with Auto Layout
- Before setting frame: %s
- After setting frame:  %s
- After layoutIfNeeded(): %s

Setting the frame of a view managed by
constraints only lasts until the next
layout pass, which recomputes the frame
from the constraints.`,
		annotate.FormatRect(r.Before), annotate.FormatRect(r.AfterSet), annotate.FormatRect(r.AfterLayout)),
		geom.R(50, 350, opts.Canvas.W-80, 0), scene.SystemYellow)

	return b.Scene()
}

package demo

import (
	"fmt"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

func buildNegativeSize(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts)

	normal := scene.NewView("normal", geom.R(200, 250, 50, 50), scene.WithAlpha(scene.SystemGreen, 0.5))
	b.AddView(normal, withText(fmt.Sprintf("Normal view\nframe: %s\nbounds: %s",
		annotate.FormatRect(normal.Frame), annotate.FormatRect(normal.Bounds()))))

	negative := scene.NewView("negative", geom.R(200, 250, -50, -50), scene.WithAlpha(scene.SystemRed, 0.5))
	b.AddView(negative, withText(fmt.Sprintf("Negative width and height\nframe: %s\nbounds: %s",
		annotate.FormatRect(negative.Frame), annotate.FormatRect(negative.Bounds()))))

	b.AddPanel(`Result:
A negative width or height moves the origin
by that amount and makes the size positive.
The view is drawn as if it had been given
a positive size with a shifted origin.`, summaryFrame(opts, 400), scene.SystemBlue)

	return b.Scene()
}

func buildBoundsOrigin(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts)

	normalParent := scene.NewView("normal-parent", geom.R(75, 100, 150, 150), scene.WithAlpha(scene.SystemBlue, 0.3))
	normalChild := scene.NewView("normal-child", geom.R(25, 25, 100, 100), scene.WithAlpha(scene.SystemGreen, 0.7))
	normalParent.AddSubview(normalChild)
	b.AddView(normalParent, withText(fmt.Sprintf("Normal parent\nbounds: %s\nsubview.frame: %s",
		annotate.FormatRect(normalParent.Bounds()), annotate.FormatRect(normalChild.Frame))))

	offsetParent := scene.NewView("offset-parent", geom.R(75, 325, 150, 150), scene.WithAlpha(scene.SystemBlue, 0.3))
	offsetChild := scene.NewView("offset-child", geom.R(25, 25, 100, 100), scene.WithAlpha(scene.SystemRed, 0.7))
	offsetParent.AddSubview(offsetChild)
	offsetParent.SetBoundsOrigin(geom.Pt(30, 30))
	shift := geom.Point{}.Sub(offsetParent.BoundsOrigin)
	b.AddView(offsetParent, withText(fmt.Sprintf("Offset parent\nbounds: %s\nsubview.frame: %s\nVisual shift: %s",
		annotate.FormatRect(offsetParent.Bounds()), annotate.FormatRect(offsetChild.Frame), annotate.FormatPoint(shift))))

	v := offsetChild.VisualOffset()
	b.AddPanel(fmt.Sprintf(`Result:
Changing bounds.origin moves every subview
the OPPOSITE way.
- Green subview: normal position (25, 25)
- Red subview: same frame, visually shifted
- visual = frame.origin - superview.bounds.origin
- Red appears at %s in its parent
Scroll views work this way: the content
offset is the bounds origin.`, annotate.FormatPoint(v)), summaryFrame(opts, 550), scene.SystemOrange)

	return b.Scene()
}

func withText(text string) scene.Highlight {
	h := scene.DefaultHighlight()
	h.Text = text
	return h
}

package scene

import "github.com/matzehuels/uithings/pkg/geom"

// DefaultHoleRadius is the radius of the untouchable centre of a [HoleButton].
const DefaultHoleRadius = 75.0

// HoleButton is a rectangular button whose centre circle neither draws nor
// receives touches.
type HoleButton struct {
	Frame      geom.Rect
	HoleRadius float64
}

// NewHoleButton returns a button with the default hole radius.
func NewHoleButton(frame geom.Rect) HoleButton {
	return HoleButton{Frame: frame.Standardized(), HoleRadius: DefaultHoleRadius}
}

// Bounds returns the button's local coordinate space.
func (b HoleButton) Bounds() geom.Rect {
	return geom.Rect{W: b.Frame.Size().W, H: b.Frame.Size().H}
}

// PointInside reports whether a touch at p, in local coordinates, hits the
// button: inside the bounds and strictly farther than HoleRadius from the
// centre.
func (b HoleButton) PointInside(p geom.Point) bool {
	bounds := b.Bounds()
	return p.Dist(bounds.Center()) > b.HoleRadius && bounds.ContainsPoint(p)
}

// HitTest is PointInside for a point in the parent's coordinates.
func (b HoleButton) HitTest(p geom.Point) bool {
	return b.PointInside(p.Sub(b.Frame.Origin()))
}

// Mask returns the visible outline in parent coordinates: the frame with the
// hole cut out by the even-odd rule.
func (b HoleButton) Mask() geom.Path {
	p := geom.Path{EvenOdd: true}
	p.Append(geom.RoundedRect(b.Frame, 0), geom.Circle(b.Frame.Center(), b.HoleRadius))
	return p
}

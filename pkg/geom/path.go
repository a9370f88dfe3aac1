package geom

import (
	"fmt"
	"math"
	"strings"
)

// ShapeKind identifies the primitive a [Shape] draws.
type ShapeKind int

const (
	KindRoundedRect ShapeKind = iota
	KindCircle
)

// Shape is one closed subpath of a [Path].
type Shape struct {
	Kind   ShapeKind
	Rect   Rect    // bounding box
	Radius float64 // corner radius for rounded rects, circle radius for circles
}

// RoundedRect returns a rounded rectangle subpath. The corner radius is
// clamped to half the shorter side.
func RoundedRect(r Rect, radius float64) Shape {
	r = r.Standardized()
	limit := math.Min(r.W, r.H) / 2
	radius = math.Max(0, math.Min(radius, limit))
	return Shape{Kind: KindRoundedRect, Rect: r, Radius: radius}
}

// Circle returns a circular subpath centred on c.
func Circle(c Point, radius float64) Shape {
	radius = math.Abs(radius)
	return Shape{
		Kind:   KindCircle,
		Rect:   Rect{X: c.X - radius, Y: c.Y - radius, W: 2 * radius, H: 2 * radius},
		Radius: radius,
	}
}

// Contains reports whether p lies inside the shape.
func (s Shape) Contains(p Point) bool {
	switch s.Kind {
	case KindCircle:
		return p.Dist(s.Rect.Center()) <= s.Radius
	default:
		r := s.Rect
		if p.X < r.MinX() || p.X > r.MaxX() || p.Y < r.MinY() || p.Y > r.MaxY() {
			return false
		}
		if s.Radius == 0 {
			return true
		}
		// Inside the rect but possibly in a cut-off corner.
		cx := math.Min(math.Max(p.X, r.MinX()+s.Radius), r.MaxX()-s.Radius)
		cy := math.Min(math.Max(p.Y, r.MinY()+s.Radius), r.MaxY()-s.Radius)
		return p.Dist(Pt(cx, cy)) <= s.Radius
	}
}

// SVG returns the shape as SVG path data.
func (s Shape) SVG() string {
	var b strings.Builder
	switch s.Kind {
	case KindCircle:
		c := s.Rect.Center()
		r := s.Radius
		fmt.Fprintf(&b, "M%.2f,%.2f a%.2f,%.2f 0 1,0 %.2f,0 a%.2f,%.2f 0 1,0 %.2f,0 Z",
			c.X-r, c.Y, r, r, 2*r, r, r, -2*r)
	default:
		x, y, w, h, r := s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, s.Radius
		if r == 0 {
			fmt.Fprintf(&b, "M%.2f,%.2f H%.2f V%.2f H%.2f Z", x, y, x+w, y+h, x)
			break
		}
		fmt.Fprintf(&b, "M%.2f,%.2f H%.2f ", x+r, y, x+w-r)
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0,1 %.2f,%.2f V%.2f ", r, r, x+w, y+r, y+h-r)
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0,1 %.2f,%.2f H%.2f ", r, r, x+w-r, y+h, x+r)
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0,1 %.2f,%.2f V%.2f ", r, r, x, y+h-r, y+r)
		fmt.Fprintf(&b, "A%.2f,%.2f 0 0,1 %.2f,%.2f Z", r, r, x+r, y)
	}
	return b.String()
}

// Path is an ordered list of closed subpaths filled with a single rule.
type Path struct {
	Shapes  []Shape
	EvenOdd bool
}

// Append adds subpaths to p, keeping the existing ones.
func (p *Path) Append(shapes ...Shape) {
	p.Shapes = append(p.Shapes, shapes...)
}

// Bounds returns the union of all subpath bounding boxes.
func (p Path) Bounds() Rect {
	if len(p.Shapes) == 0 {
		return Rect{}
	}
	b := p.Shapes[0].Rect
	for _, s := range p.Shapes[1:] {
		b = b.Union(s.Rect)
	}
	return b
}

// Contains reports whether p is filled. Under the nonzero rule any covering
// subpath fills the point; under even-odd an even number of covering subpaths
// leaves it empty.
func (p Path) Contains(pt Point) bool {
	n := 0
	for _, s := range p.Shapes {
		if s.Contains(pt) {
			n++
		}
	}
	if p.EvenOdd {
		return n%2 == 1
	}
	return n > 0
}

// SVG joins every subpath into one SVG path data string.
func (p Path) SVG() string {
	parts := make([]string, len(p.Shapes))
	for i, s := range p.Shapes {
		parts[i] = s.SVG()
	}
	return strings.Join(parts, " ")
}

// FillRule returns the SVG fill-rule keyword for p.
func (p Path) FillRule() string {
	if p.EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

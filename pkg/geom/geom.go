package geom

import "math"

// Point is a location in user units (pixels in SVG/PNG output).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Size is a width/height pair. Components may be negative until normalized.
type Size struct {
	W, H float64
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size { return Size{W: w, H: h} }

// Abs returns the size with both components made non-negative.
func (s Size) Abs() Size { return Size{W: math.Abs(s.W), H: math.Abs(s.H)} }

// Grow returns s enlarged by dw and dh.
func (s Size) Grow(dw, dh float64) Size { return Size{W: s.W + dw, H: s.H + dh} }

// Insets describes padding on each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Rect is an axis-aligned rectangle with origin (X, Y) at the top-left and
// size (W, H). Width and height may be negative; every accessor below works on
// the standardized rectangle, so a negative extent simply moves the origin.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// FromOriginSize builds a rect from an origin point and a size.
func FromOriginSize(o Point, s Size) Rect { return Rect{X: o.X, Y: o.Y, W: s.W, H: s.H} }

// Standardized returns r with a non-negative size. A negative width shifts the
// origin left by that amount; a negative height shifts it up.
//
//	R(200, 250, -50, -50).Standardized() == R(150, 200, 50, 50)
func (r Rect) Standardized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

func (r Rect) MinX() float64 { s := r.Standardized(); return s.X }
func (r Rect) MidX() float64 { s := r.Standardized(); return s.X + s.W/2 }
func (r Rect) MaxX() float64 { s := r.Standardized(); return s.X + s.W }
func (r Rect) MinY() float64 { s := r.Standardized(); return s.Y }
func (r Rect) MidY() float64 { s := r.Standardized(); return s.Y + s.H/2 }
func (r Rect) MaxY() float64 { s := r.Standardized(); return s.Y + s.H }

// Origin returns the top-left corner of the standardized rect.
func (r Rect) Origin() Point { s := r.Standardized(); return Point{X: s.X, Y: s.Y} }

// Size returns the standardized size.
func (r Rect) Size() Size { s := r.Standardized(); return Size{W: s.W, H: s.H} }

// Center returns the midpoint of the rect.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// IsEmpty reports whether the rect has zero area.
func (r Rect) IsEmpty() bool { return r.W == 0 || r.H == 0 }

// IsFinite reports whether every component is a finite number.
func (r Rect) IsFinite() bool {
	return finite(r.X) && finite(r.Y) && finite(r.W) && finite(r.H)
}

// IsFinite reports whether both components are finite numbers.
func (s Size) IsFinite() bool { return finite(s.W) && finite(s.H) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ContainsRect reports whether o lies entirely within r. Edges are inclusive,
// so a rect touching the boundary still fits.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// ContainsPoint reports whether p is inside r. The left and top edges are
// inside, the right and bottom edges are outside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	s := r.Standardized()
	s.X += dx
	s.Y += dy
	return s
}

// Inset shrinks r by the given insets. Negative insets grow it.
func (r Rect) Inset(in Insets) Rect {
	s := r.Standardized()
	return Rect{
		X: s.X + in.Left,
		Y: s.Y + in.Top,
		W: s.W - in.Horizontal(),
		H: s.H - in.Vertical(),
	}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Intersect returns the overlap of r and o, or the zero Rect if they do not
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	minX := math.Max(r.MinX(), o.MinX())
	minY := math.Max(r.MinY(), o.MinY())
	maxX := math.Min(r.MaxX(), o.MaxX())
	maxY := math.Min(r.MaxY(), o.MaxY())
	if maxX <= minX || maxY <= minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

package scene

import (
	"image/color"

	"github.com/matzehuels/uithings/pkg/geom"
)

// View is a rectangle in a parent's coordinate space with its own bounds.
//
// Frame is in the parent's coordinates. Bounds origin is the coordinate this
// view assigns to its own top-left corner; children are positioned relative
// to it, so moving BoundsOrigin by (dx, dy) moves every child by (-dx, -dy).
type View struct {
	Name         string
	Frame        geom.Rect
	BoundsOrigin geom.Point
	Fill         color.NRGBA
	CornerRadius float64

	parent      *View
	children    []*View
	constraints []Constraint
	dirty       bool
}

// NewView returns a view with the given frame. A negative size is
// standardized: the frame moves and the bounds keep a positive size.
func NewView(name string, frame geom.Rect, fill color.NRGBA) *View {
	return &View{Name: name, Frame: frame.Standardized(), Fill: fill}
}

// Bounds returns the view's own coordinate space.
func (v *View) Bounds() geom.Rect {
	s := v.Frame.Size()
	return geom.Rect{X: v.BoundsOrigin.X, Y: v.BoundsOrigin.Y, W: s.W, H: s.H}
}

// Center returns the centre of the frame in parent coordinates.
func (v *View) Center() geom.Point { return v.Frame.Center() }

// Superview returns the parent or nil.
func (v *View) Superview() *View { return v.parent }

// Subviews returns the children in insertion order.
func (v *View) Subviews() []*View { return v.children }

// AddSubview attaches child, detaching it from any previous parent.
func (v *View) AddSubview(child *View) {
	if child.parent != nil {
		child.RemoveFromSuperview()
	}
	child.parent = v
	v.children = append(v.children, child)
}

// RemoveFromSuperview detaches v from its parent.
func (v *View) RemoveFromSuperview() {
	p := v.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == v {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	v.parent = nil
}

// SetBoundsOrigin scrolls the view's content, as a scroll view's content
// offset does.
func (v *View) SetBoundsOrigin(p geom.Point) { v.BoundsOrigin = p }

// SetFrame assigns a frame directly. If the view is laid out by constraints
// the next layout pass replaces it.
func (v *View) SetFrame(r geom.Rect) {
	v.Frame = r.Standardized()
	if len(v.constraints) > 0 {
		v.dirty = true
	}
}

// ConvertToParent maps r from v's bounds to its parent's coordinates.
func (v *View) ConvertToParent(r geom.Rect) geom.Rect {
	o := v.Frame.Origin().Sub(v.BoundsOrigin)
	return r.Offset(o.X, o.Y)
}

// ConvertToRoot maps r from v's bounds to the coordinates of the topmost
// ancestor's parent, that is the scene.
func (v *View) ConvertToRoot(r geom.Rect) geom.Rect {
	for cur := v; cur != nil; cur = cur.parent {
		r = cur.ConvertToParent(r)
	}
	return r
}

// RootFrame returns v's frame in scene coordinates.
func (v *View) RootFrame() geom.Rect {
	if v.parent == nil {
		return v.Frame.Standardized()
	}
	return v.parent.ConvertToRoot(v.Frame)
}

// VisualOffset is where v's frame origin actually lands inside its parent:
// frame.origin minus the parent's bounds origin.
func (v *View) VisualOffset() geom.Point {
	o := v.Frame.Origin()
	if v.parent == nil {
		return o
	}
	return o.Sub(v.parent.BoundsOrigin)
}

// Flatten returns v and all descendants as elements in scene coordinates,
// parents before children.
func (v *View) Flatten() []Element {
	var out []Element
	var walk func(*View)
	walk = func(n *View) {
		out = append(out, Element{
			Name:         n.Name,
			Frame:        n.RootFrame(),
			Fill:         n.Fill,
			CornerRadius: n.CornerRadius,
		})
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(v)
	return out
}

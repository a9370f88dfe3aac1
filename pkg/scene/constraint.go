package scene

import "github.com/matzehuels/uithings/pkg/geom"

// Attribute is an edge or dimension a [Constraint] pins.
type Attribute int

const (
	AttrTop Attribute = iota
	AttrBottom
	AttrLeading
	AttrTrailing
	AttrWidth
	AttrHeight
)

// Constraint pins Attr of the constrained view to TargetAttr of Target plus
// Constant. With a nil Target the attribute equals Constant.
//
// Target edges are read in the constrained view's superview coordinates: the
// superview itself contributes its bounds, siblings their frames.
type Constraint struct {
	Attr       Attribute
	Target     *View
	TargetAttr Attribute
	Constant   float64
}

// Equal pins attr to a fixed value.
func Equal(attr Attribute, c float64) Constraint {
	return Constraint{Attr: attr, Constant: c}
}

// Anchor pins attr to target's targetAttr plus c.
func Anchor(attr Attribute, target *View, targetAttr Attribute, c float64) Constraint {
	return Constraint{Attr: attr, Target: target, TargetAttr: targetAttr, Constant: c}
}

// Activate installs constraints on v and marks it for layout.
func (v *View) Activate(cs ...Constraint) {
	v.constraints = append(v.constraints, cs...)
	v.dirty = true
}

// NeedsLayout reports whether the next layout pass will recompute v's frame.
func (v *View) NeedsLayout() bool { return v.dirty }

// LayoutIfNeeded recomputes the frames of v's constrained descendants that
// are marked dirty, parents first.
func (v *View) LayoutIfNeeded() {
	for _, c := range v.children {
		if c.dirty {
			c.Frame = c.solve()
			c.dirty = false
		}
		c.LayoutIfNeeded()
	}
}

func (v *View) solve() geom.Rect {
	f := v.Frame.Standardized()
	var (
		top, bottom, leading, trailing *float64
		width, height                  *float64
	)
	for _, c := range v.constraints {
		val := c.Constant
		if c.Target != nil {
			val += v.edgeOf(c.Target, c.TargetAttr)
		}
		switch c.Attr {
		case AttrTop:
			top = &val
		case AttrBottom:
			bottom = &val
		case AttrLeading:
			leading = &val
		case AttrTrailing:
			trailing = &val
		case AttrWidth:
			width = &val
		case AttrHeight:
			height = &val
		}
	}

	f.X, f.W = solveAxis(f.X, f.W, leading, trailing, width)
	f.Y, f.H = solveAxis(f.Y, f.H, top, bottom, height)
	return f
}

// solveAxis resolves one axis from optional min edge, max edge and length.
// Unconstrained parts keep their current value.
func solveAxis(pos, length float64, minEdge, maxEdge, size *float64) (float64, float64) {
	if size != nil {
		length = *size
	}
	switch {
	case minEdge != nil && maxEdge != nil && size == nil:
		return *minEdge, *maxEdge - *minEdge
	case minEdge != nil:
		return *minEdge, length
	case maxEdge != nil:
		return *maxEdge - length, length
	}
	return pos, length
}

func (v *View) edgeOf(target *View, attr Attribute) float64 {
	r := target.Frame.Standardized()
	if target == v.parent {
		r = target.Bounds()
	}
	switch attr {
	case AttrTop:
		return r.MinY()
	case AttrBottom:
		return r.MaxY()
	case AttrLeading:
		return r.MinX()
	case AttrTrailing:
		return r.MaxX()
	case AttrWidth:
		return r.W
	case AttrHeight:
		return r.H
	}
	return 0
}

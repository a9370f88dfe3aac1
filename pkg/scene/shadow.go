package scene

import (
	"image/color"

	"github.com/matzehuels/uithings/pkg/geom"
)

// ShadowStyle describes a blurred drop shadow.
type ShadowStyle struct {
	Color   color.NRGBA `json:"color"`
	Opacity float64     `json:"opacity"`
	Radius  float64     `json:"radius"`
	Offset  geom.Point  `json:"offset"`
}

// DefaultShadow is the dark, soft shadow the overlapping-shadow demo uses.
func DefaultShadow() ShadowStyle {
	return ShadowStyle{Color: Black, Opacity: 0.8, Radius: 12, Offset: geom.Pt(0, 6)}
}

// ShadowGroup is a set of rounded rects that cast shadow. When Combined is
// true the parts are appended into one path and cast a single shadow that
// follows the outer contour; otherwise each part casts its own and the
// shadows fall on each other.
type ShadowGroup struct {
	Name     string       `json:"name"`
	Parts    []geom.Shape `json:"parts"`
	Fill     color.NRGBA  `json:"fill"`
	Style    ShadowStyle  `json:"style"`
	Combined bool         `json:"combined"`
}

// NewShadowGroup returns a group with the default shadow style.
func NewShadowGroup(name string, fill color.NRGBA, combined bool) ShadowGroup {
	return ShadowGroup{Name: name, Fill: fill, Style: DefaultShadow(), Combined: combined}
}

// Add appends a rounded rect part.
func (g *ShadowGroup) Add(frame geom.Rect, cornerRadius float64) {
	g.Parts = append(g.Parts, geom.RoundedRect(frame, cornerRadius))
}

// Path returns every part appended into one nonzero path, whose filled area is
// the union of the parts.
func (g ShadowGroup) Path() geom.Path {
	var p geom.Path
	p.Append(g.Parts...)
	return p
}

// ShadowPaths returns the paths that cast shadows: one combined path, or one
// path per part.
func (g ShadowGroup) ShadowPaths() []geom.Path {
	if g.Combined {
		return []geom.Path{g.Path()}
	}
	out := make([]geom.Path, len(g.Parts))
	for i, s := range g.Parts {
		out[i].Append(s)
	}
	return out
}

// Bounds returns the area covered by the parts.
func (g ShadowGroup) Bounds() geom.Rect { return g.Path().Bounds() }

// ShadowBounds returns the area the shadow may darken: the parts' bounds
// moved by the offset and grown by the blur radius.
func (g ShadowGroup) ShadowBounds() geom.Rect {
	r := g.Bounds().Offset(g.Style.Offset.X, g.Style.Offset.Y)
	rad := g.Style.Radius
	return r.Inset(geom.Insets{Top: -rad, Left: -rad, Bottom: -rad, Right: -rad})
}

// Overlaps reports whether a shadow falls on another part: true for separate
// shadows whose parts intersect, false once combined.
func (g ShadowGroup) Overlaps() bool {
	if g.Combined {
		return false
	}
	for i := range g.Parts {
		for j := i + 1; j < len(g.Parts); j++ {
			if !g.Parts[i].Rect.Intersect(g.Parts[j].Rect).IsEmpty() {
				return true
			}
		}
	}
	return false
}

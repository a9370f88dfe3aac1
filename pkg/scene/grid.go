package scene

import (
	"image/color"
	"strconv"

	"github.com/matzehuels/uithings/pkg/geom"
)

// GridConfig configures the graph-paper background.
type GridConfig struct {
	MajorSpacing float64     `json:"major_spacing"`
	MinorSpacing float64     `json:"minor_spacing"`
	MajorColor   color.NRGBA `json:"major_color"`
	MinorColor   color.NRGBA `json:"minor_color"`
	AxisColor    color.NRGBA `json:"axis_color"`
	LabelColor   color.NRGBA `json:"label_color"`
	ShowLabels   bool        `json:"show_labels"`
	ShowOrigin   bool        `json:"show_origin"`
	Origin       geom.Point  `json:"origin"`
}

// DefaultGrid is a 10pt minor / 50pt major grid with axes and labels at the
// top-left corner.
func DefaultGrid() GridConfig {
	return GridConfig{
		MajorSpacing: 50,
		MinorSpacing: 10,
		MajorColor:   WithAlpha(SystemBlue, 0.3),
		MinorColor:   WithAlpha(SystemBlue, 0.1),
		AxisColor:    WithAlpha(SystemRed, 0.5),
		LabelColor:   LabelColor,
		ShowLabels:   true,
		ShowOrigin:   true,
	}
}

// GridLines returns the positions of grid lines between lo and hi (inclusive)
// walking outward from origin in steps of spacing: first origin and every
// step above it, then every step below it.
func GridLines(lo, hi, origin, spacing float64) []float64 {
	if spacing <= 0 {
		return nil
	}
	var out []float64
	for v := origin; v <= hi; v += spacing {
		if v >= lo {
			out = append(out, v)
		}
	}
	for v := origin - spacing; v >= lo; v -= spacing {
		if v <= hi {
			out = append(out, v)
		}
	}
	return out
}

// AxisLabel is a coordinate value printed next to an axis.
type AxisLabel struct {
	Text   string     `json:"text"`
	Anchor geom.Point `json:"anchor"`
	// Vertical labels sit on the Y axis; horizontal ones on the X axis.
	Vertical bool `json:"vertical"`
}

// Lines returns the vertical and horizontal line positions for spacing
// within area.
func (g GridConfig) Lines(area geom.Rect, spacing float64) (xs, ys []float64) {
	xs = GridLines(area.MinX(), area.MaxX(), g.Origin.X, spacing)
	ys = GridLines(area.MinY(), area.MaxY(), g.Origin.Y, spacing)
	return xs, ys
}

// Labels returns the major tick labels within area. Each axis is labelled
// every MajorSpacing points with the distance from the origin; the origin
// itself gets a single "0".
func (g GridConfig) Labels(area geom.Rect) []AxisLabel {
	if g.MajorSpacing <= 0 {
		return nil
	}
	var out []AxisLabel
	o := g.Origin
	for _, x := range GridLines(area.MinX(), area.MaxX(), o.X, g.MajorSpacing) {
		if x == o.X {
			continue
		}
		out = append(out, AxisLabel{Text: tick(x - o.X), Anchor: geom.Pt(x, o.Y+4)})
	}
	for _, y := range GridLines(area.MinY(), area.MaxY(), o.Y, g.MajorSpacing) {
		if y == o.Y {
			continue
		}
		out = append(out, AxisLabel{Text: tick(y - o.Y), Anchor: geom.Pt(o.X+4, y), Vertical: true})
	}
	return append(out, AxisLabel{Text: "0", Anchor: geom.Pt(o.X+4, o.Y+4)})
}

func tick(v float64) string { return strconv.Itoa(int(v)) }

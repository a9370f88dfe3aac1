package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// shadowSteps is how many translucent layers approximate a blurred shadow.
const shadowSteps = 6

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale  float64
	noGrid bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGWithoutGrid omits the graph-paper background.
func WithPNGWithoutGrid() PNGOption {
	return func(r *pngRenderer) { r.noGrid = true }
}

// RenderPNG rasterises the scene with the same layer order as [RenderSVG].
// Text is drawn with [annotate.DefaultFace], the face labels are measured
// with, so boxes always fit their text.
func RenderPNG(s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("png scale must be positive, got %v", r.scale)
	}

	w := int(s.Canvas.W*r.scale + 0.5)
	h := int(s.Canvas.H*r.scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty canvas %vx%v", s.Canvas.W, s.Canvas.H)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	dc.SetFontFace(annotate.DefaultFace)

	dc.SetColor(s.Background)
	dc.Clear()
	if !r.noGrid {
		drawGrid(dc, s.Grid, s.Content())
	}
	for _, g := range s.Shadows {
		drawShadowGroup(dc, g)
	}
	for _, e := range s.Elements {
		drawElement(dc, e)
	}
	for _, p := range s.Panels {
		drawPanel(dc, p)
	}
	for _, l := range s.Labels {
		drawLabel(dc, l)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGrid(dc *gg.Context, g scene.GridConfig, area geom.Rect) {
	drawGridLines(dc, g, area, g.MinorSpacing, g.MinorColor, 0.5)
	drawGridLines(dc, g, area, g.MajorSpacing, g.MajorColor, 1)

	if g.ShowOrigin {
		dc.SetColor(g.AxisColor)
		dc.SetLineWidth(1)
		dc.DrawLine(g.Origin.X, area.MinY(), g.Origin.X, area.MaxY())
		dc.DrawLine(area.MinX(), g.Origin.Y, area.MaxX(), g.Origin.Y)
		dc.Stroke()
	}
	if g.ShowLabels {
		dc.SetColor(g.LabelColor)
		for _, l := range g.Labels(area) {
			if l.Vertical {
				dc.DrawStringAnchored(l.Text, l.Anchor.X, l.Anchor.Y, 0, 0.5)
			} else {
				dc.DrawStringAnchored(l.Text, l.Anchor.X, l.Anchor.Y, 0.5, 1)
			}
		}
	}
}

func drawGridLines(dc *gg.Context, g scene.GridConfig, area geom.Rect, spacing float64, c color.NRGBA, width float64) {
	xs, ys := g.Lines(area, spacing)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	for _, x := range xs {
		dc.DrawLine(x, area.MinY(), x, area.MaxY())
	}
	for _, y := range ys {
		dc.DrawLine(area.MinX(), y, area.MaxX(), y)
	}
	dc.Stroke()
}

// drawShadowGroup fakes the blur with growing, fading copies of each shadow
// path, then fills the path itself on top.
func drawShadowGroup(dc *gg.Context, g scene.ShadowGroup) {
	st := g.Style
	for _, p := range g.ShadowPaths() {
		for i := shadowSteps; i > 0; i-- {
			grow := st.Radius * float64(i) / shadowSteps
			alpha := st.Opacity / shadowSteps
			dc.Push()
			dc.Translate(st.Offset.X, st.Offset.Y)
			appendPath(dc, grownPath(p, grow))
			dc.SetColor(scene.WithAlpha(st.Color, alpha))
			dc.Fill()
			dc.Pop()
		}
		appendPath(dc, p)
		dc.SetColor(g.Fill)
		dc.Fill()
	}
}

func grownPath(p geom.Path, d float64) geom.Path {
	out := geom.Path{EvenOdd: p.EvenOdd}
	for _, s := range p.Shapes {
		s.Rect = s.Rect.Inset(geom.Insets{Top: -d, Left: -d, Bottom: -d, Right: -d})
		s.Radius += d
		out.Append(s)
	}
	return out
}

func drawElement(dc *gg.Context, e scene.Element) {
	p := e.Outline()
	if e.Fill.A > 0 {
		appendPath(dc, p)
		dc.SetColor(e.Fill)
		dc.Fill()
	}
	if e.StrokeWidth > 0 && e.Stroke.A > 0 {
		appendPath(dc, p)
		dc.SetColor(e.Stroke)
		dc.SetLineWidth(e.StrokeWidth)
		dc.Stroke()
	}
}

func drawPanel(dc *gg.Context, p scene.Panel) {
	f := p.Frame
	if p.Border.A > 0 {
		dc.DrawRoundedRectangle(f.X, f.Y, f.W, f.H, panelRadius)
		dc.SetColor(scene.WithAlpha(scene.White, 0.9))
		dc.FillPreserve()
		dc.SetColor(p.Border)
		dc.SetLineWidth(panelStroke)
		dc.Stroke()
	}
	drawText(dc, p.Text, geom.Pt(f.X+p.Insets.Left, f.Y+p.Insets.Top))
}

func drawLabel(dc *gg.Context, l scene.Label) {
	f := l.Frame
	dc.DrawRoundedRectangle(f.X, f.Y, f.W, f.H, labelRadius)
	dc.SetColor(scene.WithAlpha(scene.White, 0.9))
	dc.FillPreserve()
	dc.SetColor(l.Border)
	dc.SetLineWidth(labelStroke)
	dc.Stroke()
	drawText(dc, l.Text, geom.Pt(f.X+labelPadX, f.Y+labelPadY))
}

func drawText(dc *gg.Context, text string, at geom.Point) {
	if text == "" {
		return
	}
	lh := annotate.LineHeight(nil)
	dc.SetColor(scene.Black)
	for i, line := range strings.Split(text, "\n") {
		dc.DrawString(line, at.X, at.Y+textAscent+float64(i)*lh)
	}
}

// appendPath adds every subpath of p to the current gg path and selects its
// fill rule.
func appendPath(dc *gg.Context, p geom.Path) {
	if p.EvenOdd {
		dc.SetFillRuleEvenOdd()
	} else {
		dc.SetFillRuleWinding()
	}
	for _, s := range p.Shapes {
		switch s.Kind {
		case geom.KindCircle:
			c := s.Rect.Center()
			dc.DrawCircle(c.X, c.Y, s.Radius)
		default:
			r := s.Rect.Standardized()
			if s.Radius > 0 {
				dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, s.Radius)
			} else {
				dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			}
		}
	}
}

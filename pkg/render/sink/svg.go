package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

const (
	fontFamily  = `Menlo, Consolas, monospace`
	fontSize    = 11.5 // a monospace em at which glyphs advance 7pt, like basicfont
	textAscent  = 11.0
	titleHeight = 44.0

	labelRadius = 8.0
	labelStroke = 1.5
	labelPadX   = 8.0
	labelPadY   = 6.0

	panelRadius = 10.0
	panelStroke = 2.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title  bool
	noGrid bool
}

// WithTitle adds a navigation-bar style header showing the scene title.
func WithTitle() SVGOption { return func(r *svgRenderer) { r.title = true } }

// WithoutGrid omits the graph-paper background.
func WithoutGrid() SVGOption { return func(r *svgRenderer) { r.noGrid = true } }

// RenderSVG draws the scene as a standalone SVG document. Layers are painted
// back to front: background, grid, shadow groups, elements, panels, labels.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	w, h := s.Canvas.W, s.Canvas.H
	top := 0.0
	if r.title {
		top = titleHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h+top, w, h+top)

	renderShadowDefs(&buf, s.Shadows)
	if r.title {
		renderTitle(&buf, s.Title, w)
	}

	fmt.Fprintf(&buf, `  <g id="content" transform="translate(0,%.1f)">`+"\n", top)
	fmt.Fprintf(&buf, `    <rect x="0" y="0" width="%.1f" height="%.1f" %s/>`+"\n", w, h, fillAttr(s.Background))
	if !r.noGrid {
		renderGrid(&buf, s.Grid, s.Content())
	}
	for i, g := range s.Shadows {
		renderShadowGroup(&buf, i, g)
	}
	for _, e := range s.Elements {
		renderElement(&buf, e)
	}
	for _, p := range s.Panels {
		renderPanel(&buf, p)
	}
	for _, l := range s.Labels {
		renderLabel(&buf, l)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// =============================================================================
// Layers
// =============================================================================

func renderTitle(buf *bytes.Buffer, title string, w float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#f9f9f9"/>`+"\n", w, titleHeight)
	fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c6c6c8" stroke-width="0.5"/>`+"\n",
		titleHeight, w, titleHeight)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="-apple-system, Helvetica, sans-serif" font-size="17" font-weight="600">%s</text>`+"\n",
		w/2, titleHeight/2+6, EscapeXML(title))
}

func renderGrid(buf *bytes.Buffer, g scene.GridConfig, area geom.Rect) {
	buf.WriteString(`    <g id="grid">` + "\n")
	gridLines(buf, g, area, g.MinorSpacing, g.MinorColor, 0.5)
	gridLines(buf, g, area, g.MajorSpacing, g.MajorColor, 1)

	if g.ShowOrigin {
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="1"/>`+"\n",
			g.Origin.X, area.MinY(), g.Origin.X, area.MaxY(), strokeAttr(g.AxisColor))
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="1"/>`+"\n",
			area.MinX(), g.Origin.Y, area.MaxX(), g.Origin.Y, strokeAttr(g.AxisColor))
	}
	if g.ShowLabels {
		for _, l := range g.Labels(area) {
			anchor, baseline := "middle", "hanging"
			if l.Vertical {
				anchor, baseline = "start", "middle"
			}
			fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="8" %s>%s</text>`+"\n",
				l.Anchor.X, l.Anchor.Y, anchor, baseline, fontFamily, fillAttr(g.LabelColor), EscapeXML(l.Text))
		}
	}
	buf.WriteString("    </g>\n")
}

func gridLines(buf *bytes.Buffer, g scene.GridConfig, area geom.Rect, spacing float64, c color.NRGBA, width float64) {
	xs, ys := g.Lines(area, spacing)
	for _, x := range xs {
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="%.1f"/>`+"\n",
			x, area.MinY(), x, area.MaxY(), strokeAttr(c), width)
	}
	for _, y := range ys {
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="%.1f"/>`+"\n",
			area.MinX(), y, area.MaxX(), y, strokeAttr(c), width)
	}
}

func renderShadowDefs(buf *bytes.Buffer, groups []scene.ShadowGroup) {
	if len(groups) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for i, g := range groups {
		st := g.Style
		fmt.Fprintf(buf, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", shadowID(i))
		fmt.Fprintf(buf, `      <feDropShadow dx="%.1f" dy="%.1f" stdDeviation="%.1f" flood-color="%s" flood-opacity="%.2f"/>`+"\n",
			st.Offset.X, st.Offset.Y, st.Radius/2, scene.Hex(st.Color), st.Opacity)
		buf.WriteString("    </filter>\n")
	}
	buf.WriteString("  </defs>\n")
}

func shadowID(i int) string { return fmt.Sprintf("shadow-%d", i) }

// renderShadowGroup paints one path per shadow path. Separate parts are drawn
// in order, so a later part's shadow falls on the earlier ones.
func renderShadowGroup(buf *bytes.Buffer, i int, g scene.ShadowGroup) {
	fmt.Fprintf(buf, `    <g id="%s">`+"\n", EscapeXML(g.Name))
	for _, p := range g.ShadowPaths() {
		fmt.Fprintf(buf, `      <path d="%s" fill-rule="%s" %s filter="url(#%s)"/>`+"\n",
			p.SVG(), p.FillRule(), fillAttr(g.Fill), shadowID(i))
	}
	buf.WriteString("    </g>\n")
}

func renderElement(buf *bytes.Buffer, e scene.Element) {
	p := e.Outline()
	fmt.Fprintf(buf, `    <path id="%s" d="%s" fill-rule="%s" %s`, EscapeXML(e.Name), p.SVG(), p.FillRule(), fillAttr(e.Fill))
	if e.StrokeWidth > 0 {
		fmt.Fprintf(buf, ` %s stroke-width="%.1f"`, strokeAttr(e.Stroke), e.StrokeWidth)
	}
	buf.WriteString("/>\n")
}

func renderPanel(buf *bytes.Buffer, p scene.Panel) {
	f := p.Frame
	if p.Border.A > 0 {
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="white" fill-opacity="0.9" %s stroke-width="%.1f"/>`+"\n",
			f.X, f.Y, f.W, f.H, panelRadius, strokeAttr(p.Border), panelStroke)
	}
	renderText(buf, p.Text, geom.Pt(f.X+p.Insets.Left, f.Y+p.Insets.Top))
}

func renderLabel(buf *bytes.Buffer, l scene.Label) {
	f := l.Frame
	fmt.Fprintf(buf, `    <g class="label" data-position="%s">`+"\n", l.Position)
	fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="white" fill-opacity="0.9" %s stroke-width="%.1f"/>`+"\n",
		f.X, f.Y, f.W, f.H, labelRadius, strokeAttr(l.Border), labelStroke)
	renderText(buf, l.Text, geom.Pt(f.X+labelPadX, f.Y+labelPadY))
	buf.WriteString("    </g>\n")
}

// renderText writes one <tspan> per line, with top-left corner at.
func renderText(buf *bytes.Buffer, text string, at geom.Point) {
	if text == "" {
		return
	}
	lh := annotate.LineHeight(nil)
	fmt.Fprintf(buf, `      <text font-family="%s" font-size="%.1f" fill="black" xml:space="preserve">`, fontFamily, fontSize)
	for i, line := range strings.Split(text, "\n") {
		fmt.Fprintf(buf, `<tspan x="%.1f" y="%.1f">%s</tspan>`, at.X, at.Y+textAscent+float64(i)*lh, EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}

// =============================================================================
// Attributes
// =============================================================================

func fillAttr(c color.NRGBA) string {
	if c.A == 0 {
		return `fill="none"`
	}
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, scene.Hex(c))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, scene.Hex(c), scene.Opacity(c))
}

func strokeAttr(c color.NRGBA) string {
	if c.A == 0 {
		return `stroke="none"`
	}
	if c.A == 255 {
		return fmt.Sprintf(`stroke="%s"`, scene.Hex(c))
	}
	return fmt.Sprintf(`stroke="%s" stroke-opacity="%.2f"`, scene.Hex(c), scene.Opacity(c))
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

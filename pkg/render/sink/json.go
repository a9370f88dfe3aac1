package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

type jsonOutput struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Background string        `json:"background"`
	Elements   []jsonElement `json:"elements"`
	Shadows    []jsonShadow  `json:"shadows,omitempty"`
	Labels     []jsonLabel   `json:"labels,omitempty"`
	Panels     []jsonPanel   `json:"panels,omitempty"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonElement struct {
	Name     string   `json:"name"`
	Frame    jsonRect `json:"frame"`
	Fill     string   `json:"fill,omitempty"`
	Opacity  float64  `json:"opacity,omitempty"`
	Stroke   string   `json:"stroke,omitempty"`
	Path     string   `json:"path"`
	FillRule string   `json:"fill_rule"`
}

type jsonShadow struct {
	Name     string     `json:"name"`
	Combined bool       `json:"combined"`
	Overlaps bool       `json:"overlaps"`
	Parts    []jsonRect `json:"parts"`
	Bounds   jsonRect   `json:"shadow_bounds"`
}

type jsonLabel struct {
	Text     string            `json:"text"`
	Frame    jsonRect          `json:"frame"`
	Subject  jsonRect          `json:"subject"`
	Position annotate.Position `json:"position"`
}

type jsonPanel struct {
	Text   string   `json:"text"`
	Frame  jsonRect `json:"frame"`
	Border string   `json:"border,omitempty"`
}

// RenderJSON exports the scene geometry as a pretty-printed JSON document.
// Colours are "#rrggbb" with a separate opacity; fully transparent colours
// are omitted.
func RenderJSON(s *scene.Scene) ([]byte, error) {
	out := jsonOutput{
		ID:         s.ID,
		Title:      s.Title,
		Width:      s.Canvas.W,
		Height:     s.Canvas.H,
		Background: hexOrEmpty(s.Background),
		Elements:   make([]jsonElement, 0, len(s.Elements)),
	}
	for _, e := range s.Elements {
		p := e.Outline()
		je := jsonElement{
			Name:     e.Name,
			Frame:    toJSONRect(e.Frame),
			Fill:     hexOrEmpty(e.Fill),
			Path:     p.SVG(),
			FillRule: p.FillRule(),
		}
		if e.Fill.A > 0 {
			je.Opacity = scene.Opacity(e.Fill)
		}
		if e.StrokeWidth > 0 {
			je.Stroke = hexOrEmpty(e.Stroke)
		}
		out.Elements = append(out.Elements, je)
	}
	for _, g := range s.Shadows {
		js := jsonShadow{
			Name:     g.Name,
			Combined: g.Combined,
			Overlaps: g.Overlaps(),
			Bounds:   toJSONRect(g.ShadowBounds()),
		}
		for _, part := range g.Parts {
			js.Parts = append(js.Parts, toJSONRect(part.Rect))
		}
		out.Shadows = append(out.Shadows, js)
	}
	for _, l := range s.Labels {
		out.Labels = append(out.Labels, jsonLabel{
			Text:     l.Text,
			Frame:    toJSONRect(l.Frame),
			Subject:  toJSONRect(l.Subject),
			Position: l.Position,
		})
	}
	for _, p := range s.Panels {
		out.Panels = append(out.Panels, jsonPanel{Text: p.Text, Frame: toJSONRect(p.Frame), Border: hexOrEmpty(p.Border)})
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONRect(r geom.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func hexOrEmpty(c color.NRGBA) string {
	if c.A == 0 {
		return ""
	}
	return scene.Hex(c)
}

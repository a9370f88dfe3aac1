package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

func buildScene(t *testing.T, id string, opts demo.Options) *scene.Scene {
	t.Helper()
	d, err := demo.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", id, err)
	}
	s, err := d.Build(opts)
	if err != nil {
		t.Fatalf("Build(%q) error: %v", id, err)
	}
	return s
}

func TestRenderSVGAllDemos(t *testing.T) {
	for _, d := range demo.All() {
		t.Run(d.ID, func(t *testing.T) {
			s := buildScene(t, d.ID, demo.Options{})
			svg := string(RenderSVG(s))
			if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
				t.Fatal("output is not a complete svg document")
			}
			if !strings.Contains(svg, `width="400" height="860"`) {
				t.Error("svg should use the canvas size")
			}
			if strings.Count(svg, `class="label"`) != len(s.Labels) {
				t.Errorf("want %d labels", len(s.Labels))
			}
		})
	}
}

func TestRenderSVGTitle(t *testing.T) {
	s := buildScene(t, "negative-size", demo.Options{})
	svg := string(RenderSVG(s, WithTitle()))
	if !strings.Contains(svg, `height="904"`) {
		t.Error("title bar should extend the document height")
	}
	if !strings.Contains(svg, ">Negative Subview Size</text>") {
		t.Error("missing title text")
	}
	if !strings.Contains(svg, `transform="translate(0,44.0)"`) {
		t.Error("content should be shifted below the title bar")
	}
}

func TestRenderSVGGrid(t *testing.T) {
	s := buildScene(t, "negative-size", demo.Options{})
	if !strings.Contains(string(RenderSVG(s)), `<g id="grid">`) {
		t.Error("grid missing")
	}
	if strings.Contains(string(RenderSVG(s, WithoutGrid())), `<g id="grid">`) {
		t.Error("WithoutGrid should drop the grid")
	}
}

func TestRenderSVGHoleMask(t *testing.T) {
	s := buildScene(t, "hole-button", demo.Options{})
	svg := string(RenderSVG(s))
	if !strings.Contains(svg, `id="hole-button"`) || !strings.Contains(svg, `fill-rule="evenodd"`) {
		t.Error("hole button should be drawn with an even-odd path")
	}
}

func TestRenderSVGShadows(t *testing.T) {
	combined := string(RenderSVG(buildScene(t, "overlapping-shadow", demo.Options{})))
	separate := string(RenderSVG(buildScene(t, "overlapping-shadow", demo.Options{Variant: demo.VariantSeparate})))

	if n := strings.Count(combined, `filter="url(#shadow-0)"`); n != 1 {
		t.Errorf("combined shadow paths = %d, want 1", n)
	}
	if n := strings.Count(separate, `filter="url(#shadow-0)"`); n != 2 {
		t.Errorf("separate shadow paths = %d, want 2", n)
	}
	if !strings.Contains(combined, "<feDropShadow") {
		t.Error("missing shadow filter")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	b := scene.NewBuilder("x", "a < b & c", scene.DefaultCanvas)
	b.AddLabel(geom.R(100, 100, 50, 50), "<tag>", annotate.Automatic)
	svg := string(RenderSVG(b.Scene(), WithTitle()))
	if strings.Contains(svg, "<tag>") || !strings.Contains(svg, "&lt;tag&gt;") {
		t.Error("label text should be escaped")
	}
	if !strings.Contains(svg, "a &lt; b &amp; c") {
		t.Error("title should be escaped")
	}
}

func TestRenderPNG(t *testing.T) {
	s := buildScene(t, "hole-button", demo.Options{})
	data, err := RenderPNG(s, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 860 {
		t.Fatalf("size = %dx%d, want 400x860", b.Dx(), b.Dy())
	}

	// Inside the hole the white background shows through.
	r, g, bl, _ := img.At(205, 305).RGBA()
	if r>>8 < 240 || g>>8 < 240 || bl>>8 < 240 {
		t.Errorf("hole pixel = (%d,%d,%d), want white", r>>8, g>>8, bl>>8)
	}
	// Outside the hole the button is blue.
	r, _, bl, _ = img.At(115, 215).RGBA()
	if bl>>8 < 200 || r>>8 > 100 {
		t.Errorf("button pixel = (%d,_,%d), want blue", r>>8, bl>>8)
	}
}

func TestRenderPNGScale(t *testing.T) {
	s := buildScene(t, "negative-size", demo.Options{Canvas: geom.Sz(200, 300)})
	data, err := RenderPNG(s)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 600 {
		t.Errorf("default 2x size = %dx%d, want 400x600", b.Dx(), b.Dy())
	}

	if _, err := RenderPNG(s, WithScale(0)); err == nil {
		t.Error("zero scale should fail")
	}
}

func TestRenderJSON(t *testing.T) {
	s := buildScene(t, "negative-size", demo.Options{})
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.ID != "negative-size" || out.Width != 400 || out.Height != 860 {
		t.Errorf("header = %q %vx%v", out.ID, out.Width, out.Height)
	}
	if len(out.Elements) != len(s.Elements) {
		t.Errorf("Elements = %d, want %d", len(out.Elements), len(s.Elements))
	}
	if len(out.Labels) != 2 {
		t.Fatalf("Labels = %d, want 2", len(out.Labels))
	}
	for _, l := range out.Labels {
		if l.Position == annotate.Automatic || !l.Position.Valid() {
			t.Errorf("label position %v should be a resolved concrete position", l.Position)
		}
	}
	if !strings.Contains(string(data), `"position": "`) {
		t.Error("positions should be exported by name")
	}
}

func TestRenderJSONShadows(t *testing.T) {
	s := buildScene(t, "overlapping-shadow", demo.Options{Variant: demo.VariantSeparate})
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if len(out.Shadows) != 1 || len(out.Shadows[0].Parts) != 2 {
		t.Fatalf("Shadows = %+v", out.Shadows)
	}
	if out.Shadows[0].Combined || !out.Shadows[0].Overlaps {
		t.Error("separate bars should overlap")
	}
}

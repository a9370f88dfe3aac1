// Package render turns demo scenes into files.
//
// # Overview
//
// A built [scene.Scene] carries absolute geometry only: element frames,
// shadow groups, placed labels and text panels. Rendering is a separate
// step so the same scene can be exported several ways:
//
//   - SVG, PNG and JSON sinks (in [sink] subpackage)
//   - The catalog diagram (in [catalog] subpackage)
//
// # Sinks
//
// Every sink takes a scene plus functional options and returns bytes:
//
//	s, _ := d.Build(demo.Options{})
//	svg := sink.RenderSVG(s, sink.WithTitle())
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//	data, err := sink.RenderJSON(s)
//
// The PNG sink rasterises directly with gg, so no external converter is
// required.
//
// # Catalog
//
// The [catalog] subpackage draws the demo registry as a category → demo
// diagram using Graphviz:
//
//	dot := catalog.ToDOT(demo.All(), catalog.Options{})
//	svg, err := catalog.RenderSVG(ctx, dot)
//
// [scene.Scene]: github.com/matzehuels/uithings/pkg/scene.Scene
// [sink]: github.com/matzehuels/uithings/pkg/render/sink
// [catalog]: github.com/matzehuels/uithings/pkg/render/catalog
package render

// Format names accepted by the pipeline and the HTTP API.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists every output format in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON}

// ContentType returns the MIME type for a format, or "" if unknown.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return ""
}

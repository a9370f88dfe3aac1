// Package sink provides output format renderers for demo scenes.
//
// # Overview
//
// A "sink" transforms a built [scene.Scene] into a final output format.
// This package provides renderers for:
//
//   - SVG: vector output with real blurred shadows and even-odd masks
//   - PNG: raster output drawn with gg, no external tools needed
//   - JSON: geometry export for external tools and tests
//
// # SVG Output
//
// [RenderSVG] paints the background, the grid paper, shadow groups,
// elements, text panels and finally the info labels:
//
//	svg := sink.RenderSVG(s, sink.WithTitle())
//
// Shadows use one feDropShadow filter per group. A combined group is a
// single nonzero path, so it casts one shadow along the outer contour.
//
// # PNG Output
//
// [RenderPNG] mirrors the SVG layer order. Text uses the same monospace
// face that labels are measured with; blur is approximated with a few
// translucent layers.
//
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//
// # JSON Output
//
// [RenderJSON] exports frames, outlines, resolved label positions and
// shadow bounds.
//
// [scene.Scene]: github.com/matzehuels/uithings/pkg/scene.Scene
package sink

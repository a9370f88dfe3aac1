// Package catalog renders the demo registry as a diagram.
//
// # Overview
//
// The catalog diagram is a left-to-right graph: a root node for the app,
// one node per category coloured with the category accent, and one node
// per demo hanging off its category. Empty categories are drawn dashed so
// the planned sections stay visible.
//
// # Usage
//
//	dot := catalog.ToDOT(demo.All(), catalog.Options{Detailed: true})
//	svg, err := catalog.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering, so no Graphviz installation is required.
package catalog

package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/render"
	"github.com/matzehuels/uithings/pkg/render/catalog"
	"github.com/matzehuels/uithings/pkg/render/sink"
	"github.com/matzehuels/uithings/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func Render(s *scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(s, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders one format.
func RenderFormat(s *scene.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Title {
			svgOpts = append(svgOpts, sink.WithTitle())
		}
		if opts.NoGrid {
			svgOpts = append(svgOpts, sink.WithoutGrid())
		}
		return sink.RenderSVG(s, svgOpts...), nil
	case render.FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.NoGrid {
			pngOpts = append(pngOpts, sink.WithPNGWithoutGrid())
		}
		return sink.RenderPNG(s, pngOpts...)
	case render.FormatJSON:
		return sink.RenderJSON(s)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// CatalogFormatDOT returns the catalog's Graphviz source unrendered.
const CatalogFormatDOT = "dot"

// RenderCatalog draws the demo registry in svg, png or dot.
func RenderCatalog(ctx context.Context, format string, detailed bool) ([]byte, error) {
	dot := catalog.ToDOT(demo.All(), catalog.Options{Detailed: detailed})
	switch format {
	case CatalogFormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		return catalog.RenderSVG(ctx, dot)
	case render.FormatPNG:
		return catalog.RenderPNG(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format: %s (must be one of: svg, png, dot)", format)
}

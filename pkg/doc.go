// Package pkg provides the core libraries for uithings, a catalog of small
// UI layout demos and the label placement engine that annotates them.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Geometry and placement: [geom] (points, sizes, rects, paths) and
//     [annotate] (where a label goes around a subject).
//  2. Scenes: [scene] (elements, shadows, hit masks, the expanding text
//     field) and [demo] (the registry that builds one scene per demo).
//  3. Output: [render] with its sink and catalog subpackages.
//  4. Infrastructure: [cache], [config], [errors], [observability],
//     [pipeline] and [server].
//
// # Architecture
//
// The typical data flow:
//
//	demo id + options
//	       ↓
//	  [demo] package (build the scene, placing labels with [annotate])
//	       ↓
//	  [pipeline] package (cache lookup, render, cache store)
//	       ↓
//	  SVG/PNG/JSON output
//
// # Quick Start
//
// Place a label directly:
//
//	frame := annotate.Place(
//	    geom.R(100, 100, 50, 50), // subject
//	    geom.Sz(80, 20),          // label size
//	    geom.R(0, 0, 400, 400),   // container
//	    annotate.Automatic,
//	    annotate.DefaultOffset,
//	)
//	// frame == (85, 158, 80×20): below the subject
//
// Render a demo through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DemoID:  "hole-button",
//	    Formats: []string{render.FormatSVG},
//	})
//	svg := result.Artifacts[render.FormatSVG]
//
// # Error Handling
//
// Functions return errors carrying an [errors.Code]; use [errors.Is] to
// branch on them and [errors.HTTPStatus] to map them onto responses.
package pkg

// Package scene models demo screens as plain geometry.
//
// A [Scene] is what a demo screen would have put on the display: a graph-paper
// background, a set of filled and bordered elements, info labels placed next
// to the elements they describe, summary panels, and optional combined shadow
// groups. Renderers in pkg/render/sink turn a scene into SVG, PNG or JSON.
//
// The package also holds the small pieces of geometry each demo illustrates:
//
//   - [View] trees with frame and bounds, where moving bounds.origin shifts
//     every child the opposite way
//   - frames built with a negative size, which [geom.Rect.Standardized] turns
//     into a positive rect with a shifted origin
//   - [Constraint] based layout that overrides manually assigned frames
//   - [HoleButton] hit testing that ignores touches inside a centre circle
//   - [TextField] auto-growing height and its eased transition
//   - [ShadowGroup] outlines combining several rounded rects into one path
//
// Scenes are built through a [Builder], which places every info label with
// annotate.Place relative to the scene's content area.
package scene

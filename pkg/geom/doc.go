// Package geom provides the float geometry shared by every demo scene.
//
// Coordinates follow the screen convention used by SVG: the origin is the
// top-left corner and Y grows downward. A [Rect] may be built with a negative
// width or height; all accessors operate on [Rect.Standardized], which moves
// the origin so that the size becomes positive. This mirrors how UI toolkits
// treat frames assigned a negative size.
//
// [Path] composes rounded rectangles and circles into a single outline. With
// the nonzero rule the subpaths merge into their union (used for combined
// shadows); with the even-odd rule an inner circle punches a hole (used for
// hit masks).
package geom

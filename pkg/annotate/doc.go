// Package annotate places info labels next to the rectangles they describe.
//
// The engine is a single pure function, [Place]. Given the subject being
// annotated, the label's size, the container the label should stay inside,
// a requested [Position] and a gap, it returns the label's frame:
//
//	label := annotate.Place(
//	    geom.R(100, 100, 50, 50), // subject
//	    geom.Sz(80, 20),          // label size
//	    geom.R(0, 0, 400, 400),   // container
//	    annotate.Automatic,
//	    annotate.DefaultOffset,
//	)
//	// label == geom.R(85, 158, 80, 20), centred under the subject
//
// A specific position is applied as-is, even if it leaves the container.
// [Automatic] tries [AutomaticOrder] and keeps the first candidate that fits
// entirely inside the container, falling back to [Fallback] when none does.
// Only bottom, top and right are ever tried; left and the remaining corners
// are reachable only by asking for them explicitly.
//
// [MeasureLabel] sizes a label for a given text and font face, and
// [InfoText] produces the default frame/bounds/center description.
package annotate

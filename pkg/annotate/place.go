package annotate

import (
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
)

// DefaultOffset is the gap demo screens leave between a subject and its label.
const DefaultOffset = 8.0

// AutomaticOrder is the order in which [Automatic] tries candidates.
var AutomaticOrder = []Position{Bottom, Top, Right}

// Fallback is used by [Automatic] when no candidate in [AutomaticOrder] fits.
const Fallback = TopRight

// Place returns the frame of a label of the given size positioned relative to
// subject. Negative subject, container or label sizes are standardized first.
//
// For a specific position the frame is returned as computed, with no
// clamping to container. For [Automatic] the first candidate of
// [AutomaticOrder] whose frame fits inside container (edges inclusive) is
// used, or [Fallback] if none fits.
//
// Place never fails. An out-of-range position is treated as [Automatic].
func Place(subject geom.Rect, label geom.Size, container geom.Rect, requested Position, offset float64) geom.Rect {
	subject = subject.Standardized()
	container = container.Standardized()
	label = label.Abs()

	pos := resolve(subject, label, container, requested, offset)
	return frameAt(pos, subject, label, offset)
}

// Resolve reports the concrete position [Place] uses for these inputs. It is
// the identity for anything but [Automatic].
func Resolve(subject geom.Rect, label geom.Size, container geom.Rect, requested Position, offset float64) Position {
	return resolve(subject.Standardized(), label.Abs(), container.Standardized(), requested, offset)
}

// PlaceChecked is [Place] with input validation. It rejects NaN or infinite
// geometry with ErrCodeInvalidGeometry and unknown positions with
// ErrCodeInvalidPosition.
func PlaceChecked(subject geom.Rect, label geom.Size, container geom.Rect, requested Position, offset float64) (geom.Rect, error) {
	switch {
	case !subject.IsFinite():
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidGeometry, "subject is not finite: %+v", subject)
	case !container.IsFinite():
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidGeometry, "container is not finite: %+v", container)
	case !label.IsFinite():
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidGeometry, "label size is not finite: %+v", label)
	case !geom.Sz(offset, 0).IsFinite():
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidGeometry, "offset is not finite: %v", offset)
	case offset < 0:
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidGeometry, "offset must be >= 0, got %v", offset)
	case !requested.Valid():
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidPosition, "invalid position %d", int(requested))
	}
	return Place(subject, label, container, requested, offset), nil
}

func resolve(subject geom.Rect, label geom.Size, container geom.Rect, requested Position, offset float64) Position {
	if requested != Automatic && requested.Valid() {
		return requested
	}
	for _, pos := range AutomaticOrder {
		if container.ContainsRect(frameAt(pos, subject, label, offset)) {
			return pos
		}
	}
	return Fallback
}

// frameAt expects standardized inputs.
func frameAt(pos Position, s geom.Rect, l geom.Size, o float64) geom.Rect {
	var x, y float64
	switch pos {
	case Top:
		x, y = s.MidX()-l.W/2, s.MinY()-l.H-o
	case Bottom:
		x, y = s.MidX()-l.W/2, s.MaxY()+o
	case Left:
		x, y = s.MinX()-l.W-o, s.MidY()-l.H/2
	case Right:
		x, y = s.MaxX()+o, s.MidY()-l.H/2
	case TopLeft:
		x, y = s.MinX()-l.W-o, s.MinY()-l.H-o
	case TopRight:
		x, y = s.MaxX()+o, s.MinY()-l.H-o
	case BottomLeft:
		x, y = s.MinX()-l.W-o, s.MaxY()+o
	case BottomRight:
		x, y = s.MaxX()+o, s.MaxY()+o
	}
	return geom.Rect{X: x, Y: y, W: l.W, H: l.H}
}

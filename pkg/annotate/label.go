package annotate

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/uithings/pkg/geom"
)

// Label box padding added on top of the measured text.
const (
	labelPadX = 16
	labelPadY = 12
)

// DefaultFace is the monospace face used to measure and draw labels.
var DefaultFace font.Face = basicfont.Face7x13

// LabelText wraps text in the two-space margin labels are drawn with.
func LabelText(text string) string { return "  " + text + "  " }

// MeasureLabel returns the box size for a label showing text in face. The
// text gets a two-space margin at both ends, then the box grows by 16 points
// horizontally and 12 vertically. A nil face means [DefaultFace].
func MeasureLabel(text string, face font.Face) geom.Size {
	if face == nil {
		face = DefaultFace
	}
	return MeasureText(LabelText(text), face).Grow(labelPadX, labelPadY)
}

// MeasureText returns the size of text laid out one line per "\n" in face.
func MeasureText(text string, face font.Face) geom.Size {
	if face == nil {
		face = DefaultFace
	}
	lines := strings.Split(text, "\n")
	var w float64
	for _, line := range lines {
		adv := float64(font.MeasureString(face, line)) / 64
		if adv > w {
			w = adv
		}
	}
	return geom.Sz(w, float64(len(lines))*LineHeight(face))
}

// LineHeight returns the baseline-to-baseline distance of face in points.
func LineHeight(face font.Face) float64 {
	if face == nil {
		face = DefaultFace
	}
	return float64(face.Metrics().Height) / 64
}

// FormatRect renders r as "(x, y, w×h)" with components truncated to integers.
func FormatRect(r geom.Rect) string {
	return fmt.Sprintf("(%d, %d, %d×%d)", int(r.X), int(r.Y), int(r.W), int(r.H))
}

// FormatPoint renders p as "(x, y)" with components truncated to integers.
func FormatPoint(p geom.Point) string {
	return fmt.Sprintf("(%d, %d)", int(p.X), int(p.Y))
}

// InfoText is the default label text for a view: its frame, bounds and center.
func InfoText(frame, bounds geom.Rect, center geom.Point) string {
	return fmt.Sprintf("frame: %s\nbounds: %s\ncenter: %s",
		FormatRect(frame), FormatRect(bounds), FormatPoint(center))
}

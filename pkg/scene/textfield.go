package scene

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
)

// Expanding text field defaults.
const (
	TextFieldMinHeight = 44.0
	GrowDuration       = 200 * time.Millisecond
)

// TextFieldInsets is the padding between the field border and its text.
var TextFieldInsets = geom.Insets{Top: 12, Left: 8, Bottom: 12, Right: 8}

// TextField is a multi-line field with scrolling disabled, so its height
// follows its content.
type TextField struct {
	Width     float64
	Insets    geom.Insets
	MinHeight float64
	Face      font.Face
	Text      string
}

// NewTextField returns an empty field of the given width with default insets.
func NewTextField(width float64) *TextField {
	return &TextField{
		Width:     width,
		Insets:    TextFieldInsets,
		MinHeight: TextFieldMinHeight,
		Face:      annotate.DefaultFace,
	}
}

// Paragraphs returns the number of newline-separated paragraphs.
func (f *TextField) Paragraphs() int {
	return strings.Count(f.Text, "\n") + 1
}

// Lines returns the text wrapped to the field's inner width. Words longer
// than a line are broken between characters.
func (f *TextField) Lines() []string {
	avail := f.Width - f.Insets.Horizontal()
	var out []string
	for _, para := range strings.Split(f.Text, "\n") {
		out = append(out, wrap(para, avail, f.face())...)
	}
	return out
}

// ContentHeight is the height the text needs including insets.
func (f *TextField) ContentHeight() float64 {
	return float64(len(f.Lines()))*annotate.LineHeight(f.face()) + f.Insets.Vertical()
}

// Height is the frame height: the content height, never below MinHeight.
func (f *TextField) Height() float64 {
	return math.Max(f.MinHeight, f.ContentHeight())
}

func (f *TextField) face() font.Face {
	if f.Face == nil {
		return annotate.DefaultFace
	}
	return f.Face
}

func wrap(para string, avail float64, face font.Face) []string {
	width := func(s string) float64 { return float64(font.MeasureString(face, s)) / 64 }

	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	for _, w := range words {
		candidate := w
		if cur != "" {
			candidate = cur + " " + w
		}
		if width(candidate) <= avail {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for width(w) > avail && utf8.RuneCountInString(w) > 1 {
			head, tail := splitToWidth(w, avail, width)
			lines = append(lines, head)
			w = tail
		}
		cur = w
	}
	return append(lines, cur)
}

// splitToWidth returns the longest prefix of w (at least one rune) that fits
// avail, and the remainder.
func splitToWidth(w string, avail float64, width func(string) float64) (string, string) {
	cut := 0
	for i := range w {
		if i > 0 && width(w[:i]) > avail {
			break
		}
		cut = i
	}
	if cut == 0 {
		_, n := utf8.DecodeRuneInString(w)
		cut = n
	}
	return w[:cut], w[cut:]
}

// HeightTween animates a field's height between two values with an eased
// curve. Call Update once per frame.
type HeightTween struct {
	tween *gween.Tween
	value float64
	done  bool
}

// Grow returns a tween from the field's previous height to its current one
// over [GrowDuration].
func Grow(from, to float64) *HeightTween {
	return NewHeightTween(from, to, GrowDuration)
}

// NewHeightTween eases from -> to over d.
func NewHeightTween(from, to float64, d time.Duration) *HeightTween {
	if d <= 0 {
		return &HeightTween{value: to, done: true}
	}
	return &HeightTween{
		tween: gween.New(float32(from), float32(to), float32(d.Seconds()), ease.OutQuad),
		value: from,
	}
}

// Update advances the tween by dt and returns the current height and whether
// the transition has finished.
func (t *HeightTween) Update(dt time.Duration) (float64, bool) {
	if t.done {
		return t.value, true
	}
	v, finished := t.tween.Update(float32(dt.Seconds()))
	t.value = float64(v)
	t.done = finished
	return t.value, finished
}

// Value returns the most recent height.
func (t *HeightTween) Value() float64 { return t.value }

// Sample runs the tween to completion at fps frames per second and returns
// every intermediate height, ending with the target.
func (t *HeightTween) Sample(fps int) []float64 {
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	var out []float64
	for i := 0; i < 10*fps; i++ {
		v, done := t.Update(step)
		out = append(out, v)
		if done {
			break
		}
	}
	return out
}

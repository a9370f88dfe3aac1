package demo

import (
	"fmt"
	"strings"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// HoleButton is the button shown by the hole-button demo.
func HoleButton() scene.HoleButton {
	return scene.NewHoleButton(geom.R(100, 200, 200, 200))
}

func buildHoleButton(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts).SetBackground(scene.White)

	btn := HoleButton()
	mask := btn.Mask()
	b.AddElement(scene.Element{
		Name:  "hole-button",
		Frame: btn.Frame,
		Fill:  scene.SystemBlue,
		Mask:  &mask,
	})
	b.AddLabel(btn.Frame, fmt.Sprintf("hole radius: %d", int(btn.HoleRadius)), annotate.Automatic)

	b.AddPanel(`Result:
The button shows a transparent circle in
its centre. Touches inside the circle are
ignored; only taps outside it trigger the
button.
How it works:
- an even-odd mask cuts the circle out
- the hit test rejects points closer to
  the centre than the hole radius`, geom.R(50, 450, opts.Canvas.W-80, 0), scene.SystemYellow)

	return b.Scene()
}

// DefaultFieldText is typed into the expanding field when none is given.
const DefaultFieldText = "Type several lines of text.\nThe field grows with its content."

// FieldElement names the text field element of the expanding-textfield demo.
const FieldElement = "text-field"

// ExpandingField returns the field the expanding-textfield demo shows.
func ExpandingField(canvasWidth float64, text string) *scene.TextField {
	f := scene.NewTextField(canvasWidth - 40)
	f.Text = text
	return f
}

func buildExpandingTextField(d Demo, opts Options) *scene.Scene {
	b := newBuilder(d, opts)
	w := opts.Canvas.W - 40

	text := opts.Text
	if text == "" {
		text = DefaultFieldText
	}

	desc := `Expanding Text Field Demo
This field increases its height as you
type. Scrolling is disabled so the height
follows the content.`
	b.AddPanelInsets(desc, geom.R(20, 120, w, 0), scene.Clear, geom.Insets{})
	y := 120 + annotate.MeasureText(desc, nil).H + 24

	f := ExpandingField(opts.Canvas.W, text)
	fieldFrame := geom.R(20, y, w, f.Height())
	b.AddElement(scene.Element{
		Name:         FieldElement,
		Frame:        fieldFrame,
		Fill:         scene.White,
		Stroke:       scene.SystemBlue,
		StrokeWidth:  2,
		CornerRadius: 12,
	})
	b.AddPanelInsets(strings.Join(f.Lines(), "\n"), fieldFrame, scene.Clear, f.Insets)
	y = fieldFrame.MaxY() + 16

	info := fmt.Sprintf("contentSize.height: %dpt\nframe.height: %dpt\nlines: %d",
		int(f.ContentHeight()), int(f.Height()), f.Paragraphs())
	b.AddPanelInsets(info, geom.R(20, y, w, 0), scene.Clear, geom.Insets{})
	y += annotate.MeasureText(info, nil).H + 24

	b.AddPanelInsets(`Technical details:
- scrolling off, so the field grows
- content height changes as you type
- each change eases the height over 0.2s
- height = max(44, lines * line height
  + vertical insets)`, geom.R(20, y, w, 0), scene.SystemGray6, geom.Insets{Top: 8, Left: 12, Bottom: 8, Right: 12})

	return b.Scene()
}

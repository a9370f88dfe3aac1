package scene

import (
	"image/color"
	"slices"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
)

// DefaultCanvas is the content area every demo is laid out in, roughly a
// phone screen in points.
var DefaultCanvas = geom.Sz(400, 860)

// Scene is everything a demo screen draws, in canvas coordinates.
type Scene struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Canvas     geom.Size     `json:"canvas"`
	Background color.NRGBA   `json:"background"`
	Grid       GridConfig    `json:"grid"`
	Shadows    []ShadowGroup `json:"shadows,omitempty"`
	Elements   []Element     `json:"elements"`
	Labels     []Label       `json:"labels,omitempty"`
	Panels     []Panel       `json:"panels,omitempty"`
}

// Content returns the rect labels are kept inside.
func (s *Scene) Content() geom.Rect {
	return geom.Rect{W: s.Canvas.W, H: s.Canvas.H}
}

// Element is a filled, optionally bordered shape.
type Element struct {
	Name         string      `json:"name"`
	Frame        geom.Rect   `json:"frame"`
	Fill         color.NRGBA `json:"fill"`
	Stroke       color.NRGBA `json:"stroke"`
	StrokeWidth  float64     `json:"stroke_width,omitempty"`
	CornerRadius float64     `json:"corner_radius,omitempty"`

	// Mask, when set, replaces the rounded-rect outline of Frame.
	Mask *geom.Path `json:"-"`
}

// Outline returns the path the element fills.
func (e Element) Outline() geom.Path {
	if e.Mask != nil {
		return *e.Mask
	}
	var p geom.Path
	p.Append(geom.RoundedRect(e.Frame, e.CornerRadius))
	return p
}

// Label is an info box placed next to a subject.
type Label struct {
	Text     string            `json:"text"`
	Frame    geom.Rect         `json:"frame"`
	Subject  geom.Rect         `json:"subject"`
	Position annotate.Position `json:"position"`
	Border   color.NRGBA       `json:"border"`
}

// Panel is a free-standing block of explanatory text.
type Panel struct {
	Text   string      `json:"text"`
	Frame  geom.Rect   `json:"frame"`
	Border color.NRGBA `json:"border"`
	Insets geom.Insets `json:"insets"`
}

// Highlight controls how [Builder.AddView] decorates a view.
type Highlight struct {
	Border   bool
	Info     bool
	Text     string // empty means annotate.InfoText for the view
	Position annotate.Position
	Color    color.NRGBA
}

// DefaultHighlight draws a pink border and an automatically placed info label.
func DefaultHighlight() Highlight {
	return Highlight{Border: true, Info: true, Position: annotate.Automatic, Color: SystemPink}
}

// Builder assembles a [Scene].
type Builder struct {
	scene  Scene
	offset float64
}

// NewBuilder starts a scene on the given canvas with the default grid paper.
func NewBuilder(id, title string, canvas geom.Size) *Builder {
	canvas = canvas.Abs()
	return &Builder{
		scene: Scene{
			ID:         id,
			Title:      title,
			Canvas:     canvas,
			Background: LightBlue,
			Grid:       DefaultGrid(),
		},
		offset: annotate.DefaultOffset,
	}
}

// SetOffset changes the gap between subjects and their labels.
func (b *Builder) SetOffset(o float64) *Builder {
	if o >= 0 {
		b.offset = o
	}
	return b
}

// SetBackground replaces the canvas colour.
func (b *Builder) SetBackground(c color.NRGBA) *Builder {
	b.scene.Background = c
	return b
}

// SetGrid replaces the grid paper configuration.
func (b *Builder) SetGrid(g GridConfig) *Builder {
	b.scene.Grid = g
	return b
}

// AddElement appends a raw element.
func (b *Builder) AddElement(e Element) *Builder {
	b.scene.Elements = append(b.scene.Elements, e)
	return b
}

// AddView flattens v and its subviews into elements and, depending on h,
// outlines v and labels it.
func (b *Builder) AddView(v *View, h Highlight) *Builder {
	frame := v.RootFrame()
	b.scene.Elements = append(b.scene.Elements, v.Flatten()...)
	if h.Border {
		b.scene.Elements = append(b.scene.Elements, Element{
			Name:        v.Name + "-border",
			Frame:       frame,
			Stroke:      h.Color,
			StrokeWidth: 2,
		})
	}
	if h.Info {
		text := h.Text
		if text == "" {
			text = annotate.InfoText(v.Frame, v.Bounds(), v.Center())
		}
		b.AddLabel(frame, text, h.Position)
	}
	return b
}

// AddLabel places an info label for subject through annotate.Place.
func (b *Builder) AddLabel(subject geom.Rect, text string, pos annotate.Position) Label {
	size := annotate.MeasureLabel(text, nil)
	content := b.scene.Content()
	l := Label{
		Text:     annotate.LabelText(text),
		Frame:    annotate.Place(subject, size, content, pos, b.offset),
		Subject:  subject.Standardized(),
		Position: annotate.Resolve(subject, size, content, pos, b.offset),
		Border:   SystemPink,
	}
	b.scene.Labels = append(b.scene.Labels, l)
	return l
}

// AddPanel adds a summary panel with the default 10/20 insets. A zero height
// is sized to fit the text.
func (b *Builder) AddPanel(text string, frame geom.Rect, border color.NRGBA) *Builder {
	return b.AddPanelInsets(text, frame, border, geom.Insets{Top: 10, Left: 20, Bottom: 10, Right: 20})
}

// AddPanelInsets is AddPanel with explicit text insets.
func (b *Builder) AddPanelInsets(text string, frame geom.Rect, border color.NRGBA, insets geom.Insets) *Builder {
	frame = frame.Standardized()
	if frame.H == 0 {
		frame.H = annotate.MeasureText(text, nil).H + insets.Vertical()
	}
	b.scene.Panels = append(b.scene.Panels, Panel{Text: text, Frame: frame, Border: border, Insets: insets})
	return b
}

// AddShadowGroup appends a combined shadow group.
func (b *Builder) AddShadowGroup(g ShadowGroup) *Builder {
	b.scene.Shadows = append(b.scene.Shadows, g)
	return b
}

// Scene returns a snapshot of the assembled scene. Later Add calls do not
// change it.
func (b *Builder) Scene() *Scene {
	s := b.scene
	s.Elements = slices.Clone(s.Elements)
	s.Labels = slices.Clone(s.Labels)
	s.Panels = slices.Clone(s.Panels)
	s.Shadows = slices.Clone(s.Shadows)
	return &s
}

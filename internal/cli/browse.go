package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/scene"
)

// Browse styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the demos interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := NewBrowseModel(demo.All(), demo.Options{
				Offset: c.Config.Annotate.Offset,
			})
			m.Canvas(c.Config.Canvas.Width, c.Config.Canvas.Height)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - list → demo navigation stack
// =============================================================================

// demoScreen is one pushed demo page.
type demoScreen struct {
	demo    demo.Demo
	variant int // index into "" followed by demo.Variants
	scene   *scene.Scene
	err     error
	scroll  int
}

func (s *demoScreen) variantName() string {
	if s.variant == 0 {
		return ""
	}
	return s.demo.Variants[s.variant-1]
}

// BrowseModel is the bubbletea model behind "uithings browse". The catalog
// list is the root screen; enter pushes a demo screen and esc pops it.
type BrowseModel struct {
	Demos  []demo.Demo
	Cursor int
	Stack  []*demoScreen
	Height int

	opts demo.Options
}

// NewBrowseModel creates a model showing demos, built with opts.
func NewBrowseModel(demos []demo.Demo, opts demo.Options) *BrowseModel {
	return &BrowseModel{Demos: demos, Height: 20, opts: opts}
}

// Canvas sets the scene size demo screens are built at.
func (m *BrowseModel) Canvas(w, h float64) {
	m.opts.Canvas.W, m.opts.Canvas.H = w, h
}

// Depth is the number of pushed screens above the list.
func (m *BrowseModel) Depth() int { return len(m.Stack) }

func (m *BrowseModel) top() *demoScreen {
	if len(m.Stack) == 0 {
		return nil
	}
	return m.Stack[len(m.Stack)-1]
}

func (m *BrowseModel) push(d demo.Demo) {
	s := &demoScreen{demo: d}
	m.build(s)
	m.Stack = append(m.Stack, s)
}

func (m *BrowseModel) pop() {
	if len(m.Stack) > 0 {
		m.Stack = m.Stack[:len(m.Stack)-1]
	}
}

func (m *BrowseModel) build(s *demoScreen) {
	opts := m.opts
	opts.Variant = s.variantName()
	s.scene, s.err = s.demo.Build(opts)
	s.scroll = 0
}

func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if s := m.top(); s != nil {
			return m.updateDemo(s, msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Demos)-1 {
			m.Cursor++
		}
	case "enter", "right", "l":
		if len(m.Demos) > 0 {
			m.push(m.Demos[m.Cursor])
		}
	}
	return m, nil
}

func (m *BrowseModel) updateDemo(s *demoScreen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "left", "h":
		m.pop()
	case "v":
		if len(s.demo.Variants) > 0 {
			s.variant = (s.variant + 1) % (len(s.demo.Variants) + 1)
			m.build(s)
		}
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	}
	return m, nil
}

func (m *BrowseModel) View() string {
	if s := m.top(); s != nil {
		return m.demoView(s)
	}
	return m.listView()
}

func (m *BrowseModel) listView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("UI Things"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	var last demo.Category
	for i, d := range m.Demos {
		if d.Category != last {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(categoryStyle(d.Category).Bold(true).Render(string(d.Category)))
			b.WriteString("\n")
			last = d.Category
		}
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-22s", cursor, d.Title)))
		b.WriteString(" ")
		b.WriteString(listDimStyle.Render(d.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BrowseModel) demoView(s *demoScreen) string {
	var b strings.Builder
	b.WriteString(listDimStyle.Render("‹ UI Things"))
	b.WriteString("\n")
	b.WriteString(categoryStyle(s.demo.Category).Bold(true).Render(s.demo.Title))
	if v := s.variantName(); v != "" {
		b.WriteString(" " + StyleHighlight.Render("("+v+")"))
	}
	b.WriteString("\n")
	hint := "esc back  ↑/↓ scroll  q quit"
	if len(s.demo.Variants) > 0 {
		hint = "esc back  v variant  ↑/↓ scroll  q quit"
	}
	b.WriteString(listDimStyle.Render(hint))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(StyleWarning.Render(s.err.Error()))
		return b.String()
	}

	lines := strings.Split(sceneSummary(s.scene), "\n")
	start := min(s.scroll, max(len(lines)-1, 0))
	end := min(start+m.Height, len(lines))
	b.WriteString(strings.Join(lines[start:end], "\n"))
	return b.String()
}

// sceneSummary describes a built scene in text: its elements, the labels
// the placement engine positioned, and the explanation panels.
func sceneSummary(s *scene.Scene) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("Canvas %g×%g", s.Canvas.W, s.Canvas.H)))
	b.WriteString("\n")
	for _, e := range s.Elements {
		fmt.Fprintf(&b, "  %s %s\n", StyleValue.Render(fmt.Sprintf("%-16s", e.Name)), StyleDim.Render(formatRect(e.Frame)))
	}
	for _, g := range s.Shadows {
		mode := "separate shadows"
		if g.Combined {
			mode = "one combined shadow"
		}
		fmt.Fprintf(&b, "  %s %s\n", StyleValue.Render(fmt.Sprintf("%-16s", g.Name)), StyleDim.Render(fmt.Sprintf("%d parts, %s", len(g.Parts), mode)))
	}

	if len(s.Labels) > 0 {
		b.WriteString("\n")
		b.WriteString(styleHeader.Render("Labels"))
		b.WriteString("\n")
		for _, l := range s.Labels {
			fmt.Fprintf(&b, "  %s %s\n", StyleHighlight.Render(fmt.Sprintf("%-12s", l.Position)), StyleDim.Render(formatRect(l.Frame)))
			b.WriteString(indent(strings.TrimSpace(l.Text), 4))
			b.WriteString("\n")
		}
	}

	for _, p := range s.Panels {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(p.Text))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

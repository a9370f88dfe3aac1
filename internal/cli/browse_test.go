package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/uithings/pkg/demo"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBrowser() *BrowseModel {
	m := NewBrowseModel(demo.All(), demo.Options{})
	m.Canvas(400, 860)
	return m
}

func send(m *BrowseModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBrowsePushPop(t *testing.T) {
	m := newTestBrowser()
	if !strings.Contains(m.View(), "Negative Subview Size") {
		t.Fatal("list view should show the first demo")
	}

	send(m, "enter")
	if m.Depth() != 1 {
		t.Fatalf("Depth after enter = %d, want 1", m.Depth())
	}
	view := m.View()
	if !strings.Contains(view, "Negative Subview Size") || !strings.Contains(view, "Canvas") {
		t.Errorf("demo view missing title or scene summary:\n%s", view)
	}

	send(m, "esc")
	if m.Depth() != 0 {
		t.Fatalf("Depth after esc = %d, want 0", m.Depth())
	}

	send(m, "down", "enter")
	if got := m.top().demo.ID; got != "bounds-origin" {
		t.Errorf("opened %s, want bounds-origin", got)
	}
}

func TestBrowseCursorBounds(t *testing.T) {
	m := newTestBrowser()
	send(m, "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top", m.Cursor)
	}
	for range len(m.Demos) + 3 {
		send(m, "j")
	}
	if m.Cursor != len(m.Demos)-1 {
		t.Errorf("Cursor = %d, want %d", m.Cursor, len(m.Demos)-1)
	}
}

func TestBrowseVariant(t *testing.T) {
	m := newTestBrowser()
	m.Cursor = 5
	send(m, "enter")
	s := m.top()
	if s.demo.ID != "overlapping-shadow" {
		t.Fatalf("opened %s", s.demo.ID)
	}
	if s.scene == nil || !s.scene.Shadows[0].Combined {
		t.Fatal("default variant should draw one combined shadow")
	}

	send(m, "v")
	if s.variantName() != demo.VariantSeparate {
		t.Errorf("variant = %q, want %q", s.variantName(), demo.VariantSeparate)
	}
	if s.scene.Shadows[0].Combined {
		t.Error("separate variant should not combine shadows")
	}
	if !strings.Contains(m.View(), "("+demo.VariantSeparate+")") {
		t.Error("view should name the active variant")
	}

	send(m, "v")
	if s.variantName() != "" {
		t.Errorf("variant = %q after cycling, want default", s.variantName())
	}
}

func TestBrowseQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		quit bool
	}{
		{"q on list", []string{"q"}, true},
		{"esc on list", []string{"esc"}, true},
		{"esc on demo pops", []string{"enter", "esc"}, false},
		{"q on demo", []string{"enter", "q"}, true},
		{"ctrl+c on demo", []string{"enter", "ctrl+c"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestBrowser()
			if got := isQuit(send(m, tt.keys...)); got != tt.quit {
				t.Errorf("quit = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestBrowseWindowSize(t *testing.T) {
	m := newTestBrowser()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if m.Height != 5 {
		t.Errorf("Height = %d, want the minimum 5", m.Height)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.Height != 34 {
		t.Errorf("Height = %d, want 34", m.Height)
	}
}

func TestSceneSummary(t *testing.T) {
	d, err := demo.Lookup("hole-button")
	if err != nil {
		t.Fatal(err)
	}
	s, err := d.Build(demo.Options{})
	if err != nil {
		t.Fatal(err)
	}
	summary := sceneSummary(s)
	for _, want := range []string{"Canvas", "Labels"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

package scene

import (
	"strings"
	"testing"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
)

func TestBuilderAddViewPlacesLabel(t *testing.T) {
	b := NewBuilder("demo", "Demo", geom.Sz(400, 860))
	v := NewView("box", geom.R(100, 100, 50, 50), SystemGreen)
	b.AddView(v, DefaultHighlight())
	s := b.Scene()

	if len(s.Elements) != 2 {
		t.Fatalf("elements = %d, want view + border", len(s.Elements))
	}
	if len(s.Labels) != 1 {
		t.Fatalf("labels = %d, want 1", len(s.Labels))
	}
	l := s.Labels[0]
	if l.Position != annotate.Bottom {
		t.Errorf("label position = %v, want bottom", l.Position)
	}
	if l.Frame.MinY() != 158 || l.Frame.MidX() != 125 {
		t.Errorf("label frame = %+v", l.Frame)
	}
	if !strings.Contains(l.Text, "frame: (100, 100, 50×50)") {
		t.Errorf("label text = %q", l.Text)
	}
	if !s.Content().ContainsRect(l.Frame) {
		t.Error("automatic label should stay inside the content area")
	}
}

func TestBuilderLabelFallsBackNearBottomEdge(t *testing.T) {
	b := NewBuilder("demo", "Demo", geom.Sz(400, 300))
	l := b.AddLabel(geom.R(100, 260, 50, 30), "hi", annotate.Automatic)
	if l.Position != annotate.Top {
		t.Errorf("position = %v, want top", l.Position)
	}
}

func TestBuilderWithoutHighlight(t *testing.T) {
	b := NewBuilder("demo", "Demo", DefaultCanvas)
	b.AddView(NewView("plain", geom.R(0, 0, 10, 10), Clear), Highlight{})
	s := b.Scene()
	if len(s.Elements) != 1 || len(s.Labels) != 0 {
		t.Errorf("elements = %d labels = %d", len(s.Elements), len(s.Labels))
	}
}

func TestAddPanelSizesToText(t *testing.T) {
	b := NewBuilder("demo", "Demo", DefaultCanvas)
	b.AddPanel("one\ntwo", geom.R(20, 400, 360, 0), SystemOrange)
	p := b.Scene().Panels[0]
	if p.Frame.H != 2*13+20 {
		t.Errorf("panel height = %v", p.Frame.H)
	}
}

func TestBuilderSceneIsSnapshot(t *testing.T) {
	b := NewBuilder("demo", "Demo", DefaultCanvas)
	for _, name := range []string{"a", "b", "c"} {
		b.AddElement(Element{Name: name, Frame: geom.R(0, 0, 10, 10)})
	}
	b.AddPanel("note", geom.R(20, 20, 100, 0), SystemBlue)
	first := b.Scene()

	first.Elements[0].Name = "changed"
	first.Panels[0].Text = "changed"
	b.AddElement(Element{Name: "d"})
	second := b.Scene()

	if second.Elements[0].Name != "a" || second.Panels[0].Text != "note" {
		t.Error("editing a returned scene changed the builder")
	}
	if len(first.Elements) != 3 || len(second.Elements) != 4 {
		t.Fatalf("elements = %d then %d, want 3 then 4", len(first.Elements), len(second.Elements))
	}

	first.Elements = append(first.Elements, Element{Name: "e"})
	if second.Elements[3].Name != "d" {
		t.Errorf("appending to an earlier scene overwrote %q", second.Elements[3].Name)
	}
}

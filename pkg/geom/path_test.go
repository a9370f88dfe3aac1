package geom

import (
	"strings"
	"testing"
)

func TestRoundedRectClampsRadius(t *testing.T) {
	s := RoundedRect(R(0, 0, 40, 10), 12)
	if s.Radius != 5 {
		t.Errorf("Radius = %v, want 5", s.Radius)
	}
}

func TestShapeContains(t *testing.T) {
	rr := RoundedRect(R(0, 0, 100, 100), 20)
	if rr.Contains(Pt(1, 1)) {
		t.Error("corner cut-off should be outside")
	}
	if !rr.Contains(Pt(50, 1)) {
		t.Error("top edge middle should be inside")
	}

	c := Circle(Pt(50, 50), 10)
	if !c.Contains(Pt(55, 50)) {
		t.Error("point within radius should be inside")
	}
	if c.Contains(Pt(61, 50)) {
		t.Error("point beyond radius should be outside")
	}
}

func TestPathFillRules(t *testing.T) {
	var hole Path
	hole.EvenOdd = true
	hole.Append(RoundedRect(R(0, 0, 200, 200), 0), Circle(Pt(100, 100), 75))

	if hole.Contains(Pt(100, 100)) {
		t.Error("even-odd: centre of hole should be empty")
	}
	if !hole.Contains(Pt(5, 5)) {
		t.Error("even-odd: corner should be filled")
	}

	var union Path
	union.Append(RoundedRect(R(0, 0, 250, 40), 12), RoundedRect(R(105, 20, 40, 260), 12))
	if !union.Contains(Pt(125, 30)) {
		t.Error("nonzero: overlap should be filled")
	}
	if got := union.Bounds(); got != R(0, 0, 250, 280) {
		t.Errorf("Bounds = %+v", got)
	}
	if got := union.FillRule(); got != "nonzero" {
		t.Errorf("FillRule = %q", got)
	}
}

func TestPathSVG(t *testing.T) {
	var p Path
	p.Append(RoundedRect(R(0, 0, 10, 10), 0), Circle(Pt(5, 5), 2))
	d := p.SVG()
	if strings.Count(d, "Z") != 2 {
		t.Errorf("SVG() should close both subpaths: %s", d)
	}
	if !strings.HasPrefix(d, "M0.00,0.00 H10.00") {
		t.Errorf("SVG() unexpected prefix: %s", d)
	}
}

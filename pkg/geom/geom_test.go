package geom

import (
	"math"
	"testing"
)

func TestStandardized(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"positive unchanged", R(10, 20, 30, 40), R(10, 20, 30, 40)},
		{"negative both", R(200, 250, -50, -50), R(150, 200, 50, 50)},
		{"negative width", R(10, 10, -4, 6), R(6, 10, 4, 6)},
		{"negative height", R(10, 10, 4, -6), R(10, 4, 4, 6)},
		{"zero", R(1, 2, 0, 0), R(1, 2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Standardized(); got != tt.want {
				t.Errorf("Standardized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAccessorsUseStandardizedRect(t *testing.T) {
	r := R(200, 250, -50, -50)
	if r.MinX() != 150 || r.MaxX() != 200 || r.MidX() != 175 {
		t.Errorf("x accessors = %v %v %v", r.MinX(), r.MidX(), r.MaxX())
	}
	if r.MinY() != 200 || r.MaxY() != 250 || r.MidY() != 225 {
		t.Errorf("y accessors = %v %v %v", r.MinY(), r.MidY(), r.MaxY())
	}
	if got := r.Size(); got != Sz(50, 50) {
		t.Errorf("Size() = %+v", got)
	}
}

func TestContainsRect(t *testing.T) {
	c := R(0, 0, 100, 100)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", R(10, 10, 20, 20), true},
		{"flush with edges", R(0, 0, 100, 100), true},
		{"touching max edge", R(80, 80, 20, 20), true},
		{"past right", R(90, 10, 20, 20), false},
		{"past top", R(10, -1, 20, 20), false},
		{"negative size inside", R(30, 30, -20, -20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ContainsRect(tt.r); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestContainsPointHalfOpen(t *testing.T) {
	r := R(0, 0, 10, 10)
	if !r.ContainsPoint(Pt(0, 0)) {
		t.Error("top-left corner should be inside")
	}
	if r.ContainsPoint(Pt(10, 5)) {
		t.Error("right edge should be outside")
	}
}

func TestUnionIntersect(t *testing.T) {
	a := R(0, 0, 250, 40)
	b := R(105, 20, 40, 260)

	if got := a.Union(b); got != R(0, 0, 250, 280) {
		t.Errorf("Union = %+v", got)
	}
	if got := a.Intersect(b); got != R(105, 20, 40, 20) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := a.Intersect(R(500, 500, 1, 1)); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %+v", got)
	}
}

func TestInset(t *testing.T) {
	got := R(0, 0, 100, 50).Inset(Insets{Top: 12, Left: 8, Bottom: 12, Right: 8})
	if got != R(8, 12, 84, 26) {
		t.Errorf("Inset = %+v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !R(1, 2, 3, 4).IsFinite() {
		t.Error("finite rect reported non-finite")
	}
	if R(math.NaN(), 0, 1, 1).IsFinite() {
		t.Error("NaN rect reported finite")
	}
	if Sz(math.Inf(1), 1).IsFinite() {
		t.Error("Inf size reported finite")
	}
}

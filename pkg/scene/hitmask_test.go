package scene

import (
	"testing"

	"github.com/matzehuels/uithings/pkg/geom"
)

func TestHoleButtonPointInside(t *testing.T) {
	b := NewHoleButton(geom.R(100, 200, 200, 200))

	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"centre of hole", geom.Pt(100, 100), false},
		{"inside hole near edge", geom.Pt(100+74, 100), false},
		{"exactly on hole radius", geom.Pt(100+75, 100), false},
		{"just outside hole", geom.Pt(100+76, 100), true},
		{"corner", geom.Pt(5, 5), true},
		{"outside bounds", geom.Pt(-1, 5), false},
		{"right edge is outside", geom.Pt(200, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.PointInside(tt.p); got != tt.want {
				t.Errorf("PointInside(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHoleButtonHitTestAndMask(t *testing.T) {
	b := NewHoleButton(geom.R(100, 200, 200, 200))
	if b.HitTest(geom.Pt(200, 300)) {
		t.Error("HitTest at the centre should miss")
	}
	if !b.HitTest(geom.Pt(105, 205)) {
		t.Error("HitTest near the corner should hit")
	}

	m := b.Mask()
	if m.Contains(geom.Pt(200, 300)) || !m.Contains(geom.Pt(105, 205)) {
		t.Error("Mask should agree with the hit test")
	}
}

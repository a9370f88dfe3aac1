package annotate

import (
	"math"
	"testing"

	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
)

func TestPlaceSpecificPositions(t *testing.T) {
	s := geom.R(100, 100, 50, 50)
	l := geom.Sz(80, 20)
	c := geom.R(0, 0, 400, 400)
	const o = 8.0

	tests := []struct {
		pos  Position
		want geom.Rect
	}{
		{Bottom, geom.R(125-40, 150+o, 80, 20)},
		{Top, geom.R(125-40, 100-20-o, 80, 20)},
		{Right, geom.R(150+o, 125-10, 80, 20)},
		{Left, geom.R(100-80-o, 125-10, 80, 20)},
		{TopLeft, geom.R(100-80-o, 100-20-o, 80, 20)},
		{TopRight, geom.R(150+o, 100-20-o, 80, 20)},
		{BottomLeft, geom.R(100-80-o, 150+o, 80, 20)},
		{BottomRight, geom.R(150+o, 150+o, 80, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			if got := Place(s, l, c, tt.pos, o); got != tt.want {
				t.Errorf("Place(%v) = %+v, want %+v", tt.pos, got, tt.want)
			}
			if got := Resolve(s, l, c, tt.pos, o); got != tt.pos {
				t.Errorf("Resolve(%v) = %v", tt.pos, got)
			}
		})
	}
}

func TestPlaceSpecificPositionIsNotClamped(t *testing.T) {
	// Left of a subject flush with the container's left edge lands outside.
	got := Place(geom.R(0, 10, 20, 20), geom.Sz(50, 10), geom.R(0, 0, 100, 100), Left, 8)
	want := geom.R(-58, 15, 50, 10)
	if got != want {
		t.Errorf("Place(Left) = %+v, want %+v", got, want)
	}
}

func TestPlaceAutomatic(t *testing.T) {
	l := geom.Sz(80, 20)
	const o = 8.0

	tests := []struct {
		name      string
		subject   geom.Rect
		container geom.Rect
		wantPos   Position
		want      geom.Rect
	}{
		{
			name:      "bottom fits",
			subject:   geom.R(100, 100, 50, 50),
			container: geom.R(0, 0, 400, 400),
			wantPos:   Bottom,
			want:      geom.R(85, 158, 80, 20),
		},
		{
			name:      "bottom overflows, top fits",
			subject:   geom.R(100, 100, 50, 50),
			container: geom.R(0, 0, 400, 160),
			wantPos:   Top,
			want:      geom.R(85, 72, 80, 20),
		},
		{
			name:      "bottom exactly touching edge still fits",
			subject:   geom.R(100, 100, 50, 50),
			container: geom.R(0, 0, 400, 178),
			wantPos:   Bottom,
			want:      geom.R(85, 158, 80, 20),
		},
		{
			name:      "neither vertical fits, right does",
			subject:   geom.R(100, 20, 50, 60),
			container: geom.R(0, 0, 400, 100),
			wantPos:   Right,
			want:      geom.R(158, 40, 80, 20),
		},
		{
			name:      "nothing fits, topRight fallback",
			subject:   geom.R(0, 0, 100, 100),
			container: geom.R(0, 0, 100, 100),
			wantPos:   TopRight,
			want:      geom.R(108, -28, 80, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.subject, l, tt.container, Automatic, o)
			if got != tt.want {
				t.Errorf("Place() = %+v, want %+v", got, tt.want)
			}
			if pos := Resolve(tt.subject, l, tt.container, Automatic, o); pos != tt.wantPos {
				t.Errorf("Resolve() = %v, want %v", pos, tt.wantPos)
			}
		})
	}
}

func TestPlaceAutomaticNeverPicksLeft(t *testing.T) {
	// Only the left side has room, but automatic mode does not look there.
	subject := geom.R(300, 0, 100, 100)
	container := geom.R(0, 0, 400, 100)
	got := Resolve(subject, geom.Sz(80, 20), container, Automatic, 8)
	if got != TopRight {
		t.Errorf("Resolve() = %v, want %v", got, TopRight)
	}
}

func TestPlaceCentredUnderSubject(t *testing.T) {
	got := Place(geom.R(100, 100, 50, 50), geom.Sz(80, 20), geom.R(0, 0, 400, 400), Automatic, 8)
	if got.MidX() != 125 || got.MinY() != 158 {
		t.Errorf("label centre x = %v, top = %v; want 125, 158", got.MidX(), got.MinY())
	}
}

func TestPlaceNormalizesNegativeSubject(t *testing.T) {
	raw := geom.R(200, 250, -50, -50)
	norm := geom.R(150, 200, 50, 50)
	l := geom.Sz(60, 30)
	c := geom.R(0, 0, 400, 800)

	for _, pos := range Positions {
		got := Place(raw, l, c, pos, 8)
		want := Place(norm, l, c, pos, 8)
		if got != want {
			t.Errorf("%v: Place(raw) = %+v, want %+v", pos, got, want)
		}
	}

	if got := Place(raw, l, c, Bottom, 8); got != geom.R(145, 258, 60, 30) {
		t.Errorf("Place(raw, Bottom) = %+v", got)
	}
}

func TestPlaceZeroSizeLabel(t *testing.T) {
	got := Place(geom.R(10, 10, 20, 20), geom.Sz(0, 0), geom.R(0, 0, 100, 100), Right, 4)
	if got != geom.R(34, 20, 0, 0) {
		t.Errorf("Place() = %+v", got)
	}
}

func TestPlaceIdempotent(t *testing.T) {
	s, l, c := geom.R(13, 27, 91, 44), geom.Sz(33, 17), geom.R(0, 0, 150, 120)
	for _, pos := range Positions {
		a := Place(s, l, c, pos, 5)
		b := Place(s, l, c, pos, 5)
		if a != b {
			t.Errorf("%v: %+v != %+v", pos, a, b)
		}
	}
}

func TestPlaceChecked(t *testing.T) {
	s, l, c := geom.R(100, 100, 50, 50), geom.Sz(80, 20), geom.R(0, 0, 400, 400)

	got, err := PlaceChecked(s, l, c, Automatic, 8)
	if err != nil {
		t.Fatalf("PlaceChecked() error = %v", err)
	}
	if got != Place(s, l, c, Automatic, 8) {
		t.Errorf("PlaceChecked() = %+v, differs from Place", got)
	}

	tests := []struct {
		name string
		s    geom.Rect
		l    geom.Size
		c    geom.Rect
		pos  Position
		off  float64
		code errors.Code
	}{
		{"nan subject", geom.R(math.NaN(), 0, 1, 1), l, c, Automatic, 8, errors.ErrCodeInvalidGeometry},
		{"inf container", s, l, geom.R(0, 0, math.Inf(1), 1), Automatic, 8, errors.ErrCodeInvalidGeometry},
		{"nan label", s, geom.Sz(math.NaN(), 1), c, Automatic, 8, errors.ErrCodeInvalidGeometry},
		{"negative offset", s, l, c, Automatic, -1, errors.ErrCodeInvalidGeometry},
		{"bad position", s, l, c, Position(42), 8, errors.ErrCodeInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlaceChecked(tt.s, tt.l, tt.c, tt.pos, tt.off)
			if !errors.Is(err, tt.code) {
				t.Errorf("PlaceChecked() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

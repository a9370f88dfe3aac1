package annotate

import (
	"testing"

	"github.com/matzehuels/uithings/pkg/errors"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input string
		want  Position
	}{
		{"automatic", Automatic},
		{"top", Top},
		{"BOTTOM", Bottom},
		{"topLeft", TopLeft},
		{"top-right", TopRight},
		{"bottom_left", BottomLeft},
		{" bottomright ", BottomRight},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if err != nil {
				t.Fatalf("ParsePosition(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParsePosition("middle"); !errors.Is(err, errors.ErrCodeInvalidPosition) {
		t.Errorf("ParsePosition(middle) error = %v", err)
	}
}

func TestPositionText(t *testing.T) {
	for _, p := range Positions {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", p, err)
		}
		var back Position
		if err := back.UnmarshalText(b); err != nil || back != p {
			t.Errorf("UnmarshalText(%s) = %v, %v", b, back, err)
		}
	}
	if Position(99).String() != "Position(99)" {
		t.Errorf("String() of invalid = %q", Position(99).String())
	}
	if _, err := Position(99).MarshalText(); err == nil {
		t.Error("MarshalText of invalid position should fail")
	}
}

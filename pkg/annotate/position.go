package annotate

import (
	"fmt"
	"strings"

	"github.com/matzehuels/uithings/pkg/errors"
)

// Position selects where a label goes relative to its subject.
type Position int

const (
	Automatic Position = iota
	Top
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var positionNames = [...]string{
	Automatic:   "automatic",
	Top:         "top",
	Bottom:      "bottom",
	Left:        "left",
	Right:       "right",
	TopLeft:     "topLeft",
	TopRight:    "topRight",
	BottomLeft:  "bottomLeft",
	BottomRight: "bottomRight",
}

// Positions lists every value, automatic first.
var Positions = []Position{Automatic, Top, Bottom, Left, Right, TopLeft, TopRight, BottomLeft, BottomRight}

// Valid reports whether p is one of the declared positions.
func (p Position) Valid() bool { return p >= Automatic && p <= BottomRight }

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition accepts the camel-case name ("topLeft") case-insensitively,
// and also kebab or snake forms ("top-left", "top_left").
func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	for _, p := range Positions {
		if strings.ToLower(positionNames[p]) == key {
			return p, nil
		}
	}
	return Automatic, errors.New(errors.ErrCodeInvalidPosition, "unknown position: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidPosition, "invalid position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

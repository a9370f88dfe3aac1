package scene

import (
	"fmt"
	"image/color"
)

// Palette used by the demo scenes.
var (
	SystemBlue          = color.NRGBA{R: 0, G: 122, B: 255, A: 255}
	SystemGreen         = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	SystemRed           = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	SystemOrange        = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	SystemPurple        = color.NRGBA{R: 175, G: 82, B: 222, A: 255}
	SystemPink          = color.NRGBA{R: 255, G: 45, B: 85, A: 255}
	SystemYellow        = color.NRGBA{R: 255, G: 204, B: 0, A: 255}
	SystemGray6         = color.NRGBA{R: 242, G: 242, B: 247, A: 255}
	Green               = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Red                 = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue           = color.NRGBA{R: 232, G: 242, B: 252, A: 255}
	White               = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black               = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	LabelColor          = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	SecondaryLabelColor = color.NRGBA{R: 60, G: 60, B: 67, A: 153}
	Clear               = color.NRGBA{}
)

// WithAlpha returns c with its alpha set to a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Hex returns c as "#rrggbb", ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns c's alpha in [0, 1].
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

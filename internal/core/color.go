package core

import "fmt"

// Color is an 8-bit RGBA color. The zero value (A == 0) means
// "terminal default" to the text renderer.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Named colors used by the game. Values follow the classic raylib palette.
var (
	ColorNone      = Color{}
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorGray      = RGB(130, 130, 130)
	ColorRed       = RGB(230, 41, 55)
	ColorGold      = RGB(255, 203, 0)
	ColorDarkGreen = RGB(0, 117, 44)
	ColorSkyBlue   = RGB(102, 191, 255)
	ColorBlue      = RGB(0, 121, 241)
	ColorBrown     = RGB(127, 106, 79)
)

// IsNone reports whether c is the "no color" sentinel.
func (c Color) IsNone() bool {
	return c.A == 0
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp linearly interpolates between a and b in RGB space. t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

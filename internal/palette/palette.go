// Package palette implements the color math used when shading game objects.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickball/internal/core"
)

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, alpha uint8) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.Color{R: r, G: g, B: b, A: alpha}
}

// Brightness returns c lightened (factor > 0) or darkened (factor < 0).
// factor is clamped to [-1, 1]: -1 gives black, 1 gives white. Alpha is kept.
func Brightness(c core.Color, factor float64) core.Color {
	factor = core.ClampF(factor, -1, 1)
	base := toColorful(c)
	switch {
	case factor > 0:
		base = base.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, factor)
	case factor < 0:
		base = base.BlendRgb(colorful.Color{}, -factor)
	}
	return fromColorful(base, c.A)
}

// Fade returns c with its alpha set to alpha in [0, 1].
func Fade(c core.Color, alpha float64) core.Color {
	c.A = uint8(core.ClampF(alpha, 0, 1)*255 + 0.5)
	return c
}

// Parse reads a #rrggbb hex string.
func Parse(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, err
	}
	return fromColorful(c, 255), nil
}

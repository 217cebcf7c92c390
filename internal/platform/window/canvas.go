package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickball/internal/core"
)

// circleSegments is the number of triangles in a gradient disc.
const circleSegments = 48

var triangleOptions = &ebiten.DrawTrianglesOptions{
	ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	AntiAlias:      true,
}

// Canvas draws onto an ebiten image in world pixels.
type Canvas struct {
	dst   *ebiten.Image
	white *ebiten.Image
	size  core.Vec2

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates a canvas for a world of the given size. white must be
// a 1x1 opaque white image used as the triangle source.
func NewCanvas(white *ebiten.Image, size core.Vec2) *Canvas {
	return &Canvas{white: white, size: size}
}

// Target sets the image the next draw calls go to.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// vertex returns a premultiplied vertex sampling the white image.
func vertex(p core.Vec2, c core.Color) ebiten.Vertex {
	a := float32(c.A) / 255
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) / 255 * a,
		ColorG: float32(c.G) / 255 * a,
		ColorB: float32(c.B) / 255 * a,
		ColorA: a,
	}
}

// Size returns the world size in pixels.
func (c *Canvas) Size() core.Vec2 {
	return c.size
}

// Clear fills the target with bg.
func (c *Canvas) Clear(bg core.Color) {
	c.dst.Fill(toRGBA(bg))
}

// FillRotatedRect fills a rectangle turned by angle radians around center.
func (c *Canvas) FillRotatedRect(center core.Vec2, halfW, halfH, angle float64, col core.Color) {
	corners := [4]core.Vec2{
		core.V(-halfW, -halfH),
		core.V(halfW, -halfH),
		core.V(halfW, halfH),
		core.V(-halfW, halfH),
	}
	c.vertices = c.vertices[:0]
	for _, p := range corners {
		c.vertices = append(c.vertices, vertex(center.Add(p.Rotate(angle)), col))
	}
	c.indices = append(c.indices[:0], 0, 1, 2, 0, 2, 3)
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, triangleOptions)
}

// Line strokes a segment from a to b.
func (c *Canvas) Line(a, b core.Vec2, thickness float64, col core.Color) {
	vector.StrokeLine(c.dst,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(thickness), toRGBA(col), true)
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), toRGBA(col), true)
}

// GradientCircle fills a disc with a radial gradient from inner at focus to
// outer on the rim. The disc is a triangle fan whose hub sits on focus.
func (c *Canvas) GradientCircle(center core.Vec2, radius float64, focus core.Vec2, inner, outer core.Color) {
	if radius <= 0 {
		return
	}
	c.vertices = append(c.vertices[:0], vertex(focus, inner))
	c.indices = c.indices[:0]
	for i := range circleSegments {
		theta := 2 * math.Pi * float64(i) / circleSegments
		rim := center.Add(core.V(math.Cos(theta), math.Sin(theta)).Scale(radius))
		c.vertices = append(c.vertices, vertex(rim, outer))

		next := uint16(i+1)%circleSegments + 1
		c.indices = append(c.indices, 0, uint16(i+1), next) //#nosec G115 -- circleSegments fits in uint16
	}
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, triangleOptions)
}

// DrawText prints text with its top-left corner at pos using the debug font.
func (c *Canvas) DrawText(pos core.Vec2, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, int(pos.X), int(pos.Y))
}

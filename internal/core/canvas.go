package core

import "math"

// Canvas is the drawing surface handed to Render. Coordinates are world
// pixels with +Y pointing down. A Canvas keeps no state between frames
// beyond its backing buffer.
type Canvas interface {
	// Size returns the drawable area in world pixels.
	Size() Vec2
	// Clear fills the whole canvas with bg.
	Clear(bg Color)
	// FillRotatedRect fills a rectangle centred on center, rotated by angle radians.
	FillRotatedRect(center Vec2, halfW, halfH, angle float64, c Color)
	// Line strokes a segment from a to b.
	Line(a, b Vec2, thickness float64, c Color)
	// FillCircle fills a disc. Colors with A < 255 are blended over the existing content.
	FillCircle(center Vec2, radius float64, c Color)
	// GradientCircle fills the disc at center with a radial gradient that
	// starts at focus with inner and reaches outer at the far rim.
	GradientCircle(center Vec2, radius float64, focus Vec2, inner, outer Color)
	// DrawText writes text with its top-left corner at pos.
	DrawText(pos Vec2, text string, c Color)
}

// CellCanvas rasterizes world-pixel drawing onto a Screen. Each cell samples
// the shape at its centre; a shape that covers no cell centre still marks the
// cell containing its own centre so small objects stay visible.
type CellCanvas struct {
	screen *Screen
	world  Vec2
	cellW  float64
	cellH  float64
}

// NewCellCanvas maps a world of the given pixel size onto screen.
func NewCellCanvas(screen *Screen, worldW, worldH float64) *CellCanvas {
	c := &CellCanvas{screen: screen, world: V(worldW, worldH)}
	c.fit()
	return c
}

func (c *CellCanvas) fit() {
	w, h := c.screen.Width(), c.screen.Height()
	c.cellW, c.cellH = 1, 1
	if w > 0 {
		c.cellW = c.world.X / float64(w)
	}
	if h > 0 {
		c.cellH = c.world.Y / float64(h)
	}
}

// Screen returns the backing screen.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// CellSize returns the world-pixel size of one cell.
func (c *CellCanvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// Refit recomputes the cell size after the screen has been resized.
func (c *CellCanvas) Refit() {
	c.fit()
}

// Size returns the world size in pixels.
func (c *CellCanvas) Size() Vec2 {
	return c.world
}

// Clear paints every cell with bg.
func (c *CellCanvas) Clear(bg Color) {
	c.screen.FillCell(Cell{Rune: ' ', BG: bg})
}

func (c *CellCanvas) cellOf(p Vec2) (int, int) {
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

func (c *CellCanvas) cellCenter(x, y int) Vec2 {
	return V((float64(x)+0.5)*c.cellW, (float64(y)+0.5)*c.cellH)
}

func (c *CellCanvas) paint(x, y int, col Color) {
	if col.A == 255 {
		c.screen.Paint(x, y, col)
		return
	}
	if col.A == 0 {
		return
	}
	under := c.screen.GetCell(x, y).BG
	if under.IsNone() {
		under = ColorBlack
	}
	opaque := col
	opaque.A = 255
	mixed := Lerp(under, opaque, float64(col.A)/255)
	mixed.A = 255
	c.screen.Paint(x, y, mixed)
}

// fill calls shade for every cell whose centre lies within the world-space
// box [min, max] and for which inside reports true.
func (c *CellCanvas) fill(center, lo, hi Vec2, inside func(p Vec2) bool, shade func(p Vec2) Color) {
	x0, y0 := c.cellOf(lo)
	x1, y1 := c.cellOf(hi)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.screen.Width()-1), min(y1, c.screen.Height()-1)

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := c.cellCenter(x, y)
			if inside(p) {
				c.paint(x, y, shade(p))
				hit = true
			}
		}
	}
	if !hit {
		x, y := c.cellOf(center)
		c.paint(x, y, shade(center))
	}
}

// FillRotatedRect fills a rotated rectangle.
func (c *CellCanvas) FillRotatedRect(center Vec2, halfW, halfH, angle float64, col Color) {
	sin, cos := math.Sincos(angle)
	ex := math.Abs(cos)*halfW + math.Abs(sin)*halfH
	ey := math.Abs(sin)*halfW + math.Abs(cos)*halfH
	ext := V(ex, ey)

	inside := func(p Vec2) bool {
		d := p.Sub(center)
		lx := d.X*cos + d.Y*sin
		ly := -d.X*sin + d.Y*cos
		return math.Abs(lx) <= halfW && math.Abs(ly) <= halfH
	}
	c.fill(center, center.Sub(ext), center.Add(ext), inside, func(Vec2) Color { return col })
}

// Line strokes a segment. Strokes thinner than half a cell are below the
// canvas resolution and are skipped.
func (c *CellCanvas) Line(a, b Vec2, thickness float64, col Color) {
	if thickness < min(c.cellW, c.cellH)/2 {
		return
	}
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X)/c.cellW, math.Abs(d.Y)/c.cellH)*2)) + 1
	for i := 0; i <= steps; i++ {
		p := a.Add(d.Scale(float64(i) / float64(steps)))
		x, y := c.cellOf(p)
		c.paint(x, y, col)
	}
}

// FillCircle fills a disc.
func (c *CellCanvas) FillCircle(center Vec2, radius float64, col Color) {
	ext := V(radius, radius)
	inside := func(p Vec2) bool { return p.Sub(center).Len() <= radius }
	c.fill(center, center.Sub(ext), center.Add(ext), inside, func(Vec2) Color { return col })
}

// GradientCircle fills a disc with a radial gradient around focus.
func (c *CellCanvas) GradientCircle(center Vec2, radius float64, focus Vec2, inner, outer Color) {
	ext := V(radius, radius)
	reach := radius + focus.Sub(center).Len()
	inside := func(p Vec2) bool { return p.Sub(center).Len() <= radius }
	shade := func(p Vec2) Color {
		if reach <= 0 {
			return inner
		}
		return Lerp(inner, outer, p.Sub(focus).Len()/reach)
	}
	c.fill(center, center.Sub(ext), center.Add(ext), inside, shade)
}

// DrawText writes text starting at the cell that contains pos.
func (c *CellCanvas) DrawText(pos Vec2, text string, col Color) {
	x, y := c.cellOf(pos)
	c.screen.DrawText(x, y, text, col)
}

package core

import (
	"math"
	"testing"
)

// 10x10 cells over a 100x100 px world: one cell is 10x10 px.
func newTestCanvas() *CellCanvas {
	return NewCellCanvas(NewScreen(10, 10), 100, 100)
}

func countBG(s *Screen, c Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).BG == c {
				n++
			}
		}
	}
	return n
}

func TestCellCanvasRect(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"axis aligned 20x20 covers 4 cells", 0, 4},
		{"quarter turn is the same square", math.Pi / 2, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCanvas()
			c.FillRotatedRect(V(50, 50), 10, 10, tc.angle, ColorBrown)
			if got := countBG(c.Screen(), ColorBrown); got != tc.want {
				t.Errorf("painted cells = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestCellCanvasTinyShapeStaysVisible(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(V(33, 77), 1, ColorRed)

	if got := c.Screen().GetCell(3, 7).BG; got != ColorRed {
		t.Errorf("cell containing the centre = %+v, expected red", got)
	}
	if got := countBG(c.Screen(), ColorRed); got != 1 {
		t.Errorf("painted cells = %d, expected 1", got)
	}
}

func TestCellCanvasAlphaBlends(t *testing.T) {
	c := newTestCanvas()
	c.Clear(ColorBlack)
	c.FillCircle(V(55, 55), 2, Color{R: 255, G: 255, B: 255, A: 128})

	got := c.Screen().GetCell(5, 5).BG
	if got.R < 120 || got.R > 136 || got.A != 255 {
		t.Errorf("blended cell = %+v, expected about half white", got)
	}
}

func TestCellCanvasGradient(t *testing.T) {
	c := NewCellCanvas(NewScreen(20, 1), 200, 10)
	c.GradientCircle(V(100, 5), 100, V(100, 5), ColorWhite, ColorBlack)

	s := c.Screen()
	centre := s.GetCell(10, 0).BG
	edge := s.GetCell(0, 0).BG
	if centre.R <= edge.R {
		t.Errorf("centre %+v should be brighter than edge %+v", centre, edge)
	}
}

func TestCellCanvasThinLinesSkipped(t *testing.T) {
	c := newTestCanvas()
	c.Line(V(0, 5), V(100, 5), 2, ColorGray)
	if got := countBG(c.Screen(), ColorGray); got != 0 {
		t.Errorf("thin line painted %d cells, expected 0", got)
	}

	c.Line(V(0, 5), V(95, 5), 10, ColorGray)
	if got := countBG(c.Screen(), ColorGray); got != 10 {
		t.Errorf("thick line painted %d cells, expected 10", got)
	}
}

func TestCellCanvasText(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(V(10, 0), "Bodies", ColorWhite)
	if got := c.Screen().Row(0); got[:7] != " Bodies" {
		t.Errorf("Row(0) = %q, expected text at cell 1", got)
	}
}

package palette

import (
	"testing"

	"github.com/vovakirdan/brickball/internal/core"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name   string
		in     core.Color
		factor float64
		want   core.Color
	}{
		{"darken brown by 30%", core.ColorBrown, -0.3, core.RGB(89, 74, 55)},
		{"lighten 40% toward white", core.RGB(100, 0, 200), 0.4, core.RGB(162, 102, 222)},
		{"zero factor is identity", core.ColorRed, 0, core.ColorRed},
		{"clamped to black", core.ColorRed, -5, core.ColorBlack},
		{"clamped to white", core.ColorBlue, 3, core.ColorWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Brightness(tc.in, tc.factor); got != tc.want {
				t.Errorf("Brightness(%v, %v) = %v, expected %v", tc.in, tc.factor, got, tc.want)
			}
		})
	}
}

func TestBrightnessKeepsAlpha(t *testing.T) {
	c := core.Color{R: 10, G: 20, B: 30, A: 77}
	if got := Brightness(c, 0.2); got.A != 77 {
		t.Errorf("alpha = %d, expected 77", got.A)
	}
}

func TestFade(t *testing.T) {
	spec := Fade(core.ColorWhite, 0.4)
	if spec.A != 102 || spec.R != 255 {
		t.Errorf("Fade() = %+v, expected white at alpha 102", spec)
	}
	if Fade(core.ColorWhite, 3).A != 255 {
		t.Error("Fade should clamp alpha above 1")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("#006400")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c != core.RGB(0, 100, 0) {
		t.Errorf("Parse() = %v, expected (0, 100, 0)", c)
	}
	if _, err := Parse("green"); err == nil {
		t.Error("Parse() should reject non-hex input")
	}
}

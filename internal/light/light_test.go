package light

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickball/internal/core"
)

const eps = 1e-9

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDirectionalNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   core.Vec2
		want core.Vec2
	}{
		{"already unit", core.V(1, 0), core.V(1, 0)},
		{"scaled axis", core.V(0, 42), core.V(0, 1)},
		{"diagonal", core.V(-1, -1), core.V(-1/math.Sqrt2, -1/math.Sqrt2)},
		{"zero falls back to up", core.V(0, 0), Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDirectional(tc.in)
			got := d.Direction()
			if !closeTo(got.X, tc.want.X, eps) || !closeTo(got.Y, tc.want.Y, eps) {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
			if !closeTo(got.Len(), 1, eps) {
				t.Errorf("|Direction()| = %v, expected 1", got.Len())
			}
		})
	}
}

func TestDirectionalSetDirectionRenormalizes(t *testing.T) {
	d := NewDirectional(core.V(1, 0))
	d.SetDirection(core.V(3, 4))
	if got := d.Direction(); !closeTo(got.X, 0.6, eps) || !closeTo(got.Y, 0.8, eps) {
		t.Errorf("Direction() = %v, expected (0.6, 0.8)", got)
	}
}

func TestDirectionalShading(t *testing.T) {
	d := NewDirectional(core.V(-1, -1))
	for _, p := range []core.Vec2{core.V(0, 0), core.V(1e6, -3), core.V(-50, 900)} {
		if got := d.Intensity(p); got != 1 {
			t.Errorf("Intensity(%v) = %v, expected 1", p, got)
		}
		off := d.HighlightOffset(p, 15)
		if !closeTo(off.Len(), 15*HighlightFactor, eps) {
			t.Errorf("|HighlightOffset| = %v, expected %v", off.Len(), 15*HighlightFactor)
		}
		if off.X >= 0 || off.Y >= 0 {
			t.Errorf("HighlightOffset = %v, expected to point up-left", off)
		}
	}
}

func TestPointIntensityFalloff(t *testing.T) {
	l := NewPoint(core.V(100, 100))

	tests := []struct {
		name string
		at   core.Vec2
		want float64
		tol  float64
	}{
		{"on the light", core.V(100, 100), 1, eps},
		{"500px away", core.V(600, 100), 1 / 3.45, 1e-6},
		{"far away goes dark", core.V(100, 100100), 0, 1e-4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := l.Intensity(tc.at)
			if !closeTo(got, tc.want, tc.tol) {
				t.Errorf("Intensity(%v) = %v, expected %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestPointIntensityMonotonic(t *testing.T) {
	l := NewPoint(core.V(0, 0))
	prev := l.Intensity(core.V(0, 0))
	for d := 10.0; d <= 2000; d += 10 {
		got := l.Intensity(core.V(d, 0))
		if got > prev {
			t.Fatalf("Intensity at %v = %v increased from %v", d, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Intensity at %v = %v outside [0, 1]", d, got)
		}
		prev = got
	}
}

func TestPointIntensityClamped(t *testing.T) {
	l := NewPoint(core.V(0, 0))

	l.SetAttenuation(0.5, 0, 0)
	if got := l.Intensity(core.V(1, 0)); got != 1 {
		t.Errorf("Intensity with c0 < 1 = %v, expected clamp to 1", got)
	}

	l.SetAttenuation(0, 0, 0)
	if got := l.Intensity(core.V(5, 0)); got != 1 {
		t.Errorf("Intensity with zero attenuation = %v, expected 1", got)
	}
}

func TestPointHighlightOffset(t *testing.T) {
	l := NewPoint(core.V(100, 100))

	off := l.HighlightOffset(core.V(100, 200), 15)
	if !closeTo(off.X, 0, eps) || !closeTo(off.Y, -6, eps) {
		t.Errorf("HighlightOffset below light = %v, expected (0, -6)", off)
	}

	off = l.HighlightOffset(core.V(100, 100), 15)
	if off != Up.Scale(15*HighlightFactor) {
		t.Errorf("HighlightOffset on light = %v, expected up fallback", off)
	}

	off = l.HighlightOffset(core.V(100.0005, 100), 15)
	if off != Up.Scale(15*HighlightFactor) {
		t.Errorf("HighlightOffset within epsilon = %v, expected up fallback", off)
	}
}

func TestNilLight(t *testing.T) {
	if got := IntensityAt(nil, core.V(3, 4)); got != 1 {
		t.Errorf("IntensityAt(nil) = %v, expected 1", got)
	}
	if got := HighlightOffsetAt(nil, core.V(3, 4), 15); !got.IsZero() {
		t.Errorf("HighlightOffsetAt(nil) = %v, expected zero", got)
	}
	var l Light = NewPoint(core.V(0, 0))
	if got := IntensityAt(l, core.V(0, 0)); got != 1 {
		t.Errorf("IntensityAt(point) = %v, expected 1", got)
	}
}

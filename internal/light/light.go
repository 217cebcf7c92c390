// Package light implements the fake lighting model used to shade balls.
//
// A Light answers two questions for a point in world space: how brightly it
// is lit (Intensity, in [0, 1]) and where a highlight should be drawn on a
// disc of a given radius centred there (HighlightOffset). Nothing here is
// physically based; the results only drive color math at render time.
package light

import (
	"math"

	"github.com/vovakirdan/brickball/internal/core"
)

const (
	// HighlightFactor is the highlight offset as a fraction of the radius.
	HighlightFactor = 0.4
	// CoincidenceEpsilon is the distance under which a point is considered
	// to sit on a point light.
	CoincidenceEpsilon = 0.001
)

// Up is the fallback highlight direction. Screen space: +Y points down.
var Up = core.V(0, -1)

// Light is a source that shades a point.
type Light interface {
	Intensity(p core.Vec2) float64
	HighlightOffset(p core.Vec2, radius float64) core.Vec2
}

// IntensityAt returns l's intensity at p, or full intensity when l is nil.
func IntensityAt(l Light, p core.Vec2) float64 {
	if l == nil {
		return 1
	}
	return l.Intensity(p)
}

// HighlightOffsetAt returns l's highlight offset, or no offset when l is nil.
func HighlightOffsetAt(l Light, p core.Vec2, radius float64) core.Vec2 {
	if l == nil {
		return core.Vec2{}
	}
	return l.HighlightOffset(p, radius)
}

// Directional is a light infinitely far away, like the sun.
// Its direction is kept at unit length.
type Directional struct {
	dir core.Vec2
}

// NewDirectional returns a directional light pointing along dir.
func NewDirectional(dir core.Vec2) *Directional {
	d := &Directional{}
	d.SetDirection(dir)
	return d
}

// SetDirection replaces the direction, normalizing it. A zero vector
// selects Up so the unit-length invariant always holds.
func (d *Directional) SetDirection(dir core.Vec2) {
	n := dir.Normalize()
	if n.IsZero() || math.IsNaN(n.X) || math.IsNaN(n.Y) {
		n = Up
	}
	d.dir = n
}

// Direction returns the unit direction.
func (d *Directional) Direction() core.Vec2 {
	return d.dir
}

// Intensity is always full for a directional light.
func (d *Directional) Intensity(core.Vec2) float64 {
	return 1
}

// HighlightOffset points along the light direction.
func (d *Directional) HighlightOffset(_ core.Vec2, radius float64) core.Vec2 {
	return d.dir.Scale(radius * HighlightFactor)
}

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// DefaultAttenuation gives a range of a few hundred pixels.
var DefaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.0014, Quadratic: 0.000007}

// Point is a light at a position that falls off with distance.
type Point struct {
	pos core.Vec2
	att Attenuation
}

// NewPoint returns a point light at pos with DefaultAttenuation.
func NewPoint(pos core.Vec2) *Point {
	return &Point{pos: pos, att: DefaultAttenuation}
}

// Position returns the light position.
func (p *Point) Position() core.Vec2 {
	return p.pos
}

// SetPosition moves the light.
func (p *Point) SetPosition(pos core.Vec2) {
	p.pos = pos
}

// Attenuation returns the falloff terms.
func (p *Point) Attenuation() Attenuation {
	return p.att
}

// SetAttenuation replaces the falloff terms. Terms whose sum is never
// positive mean no falloff: Intensity is then 1 everywhere.
func (p *Point) SetAttenuation(constant, linear, quadratic float64) {
	p.att = Attenuation{Constant: constant, Linear: linear, Quadratic: quadratic}
}

// Intensity is 1/(c0 + c1*d + c2*d²) clamped to [0, 1].
// A non-positive denominator means no falloff and yields 1.
func (p *Point) Intensity(at core.Vec2) float64 {
	d := p.pos.Sub(at).Len()
	den := p.att.Constant + p.att.Linear*d + p.att.Quadratic*d*d
	if den <= 0 || math.IsNaN(den) {
		return 1
	}
	return core.ClampF(1/den, 0, 1)
}

// HighlightOffset points from at toward the light. When at coincides with
// the light the highlight falls back to Up.
func (p *Point) HighlightOffset(at core.Vec2, radius float64) core.Vec2 {
	delta := p.pos.Sub(at)
	dir := Up
	if dist := delta.Len(); dist > CoincidenceEpsilon {
		dir = delta.Scale(1 / dist)
	}
	return dir.Scale(radius * HighlightFactor)
}

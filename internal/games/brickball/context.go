package brickball

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/light"
	"github.com/vovakirdan/brickball/internal/physics"
)

// Context is everything an entity needs during Update and Render.
// It is passed explicitly; entities never hold on to it.
type Context struct {
	World  *physics.World
	Config *config.BrickballConfig
	// Scale converts pixels to meters: meters = pixels / Scale.
	Scale float64
	// Light may be nil, meaning full unshaded intensity.
	Light  light.Light
	Logger *log.Logger
	Rand   *rand.Rand
	// EnemySpeed is the current per-axis kick speed for enemies in m/s.
	EnemySpeed float64
}

// NewContext binds a world and its configuration. A nil logger discards
// output and a nil rng is seeded with zero.
func NewContext(world *physics.World, cfg *config.BrickballConfig, l light.Light, logger *log.Logger, rng *rand.Rand) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rng == nil {
		rng = newRand(0)
	}
	return &Context{
		World:      world,
		Config:     cfg,
		Scale:      cfg.World.PixelsPerMeter,
		Light:      l,
		Logger:     logger,
		Rand:       rng,
		EnemySpeed: cfg.Enemies.MaxSpeed,
	}
}

// Meters converts a length in pixels.
func (c *Context) Meters(px float64) float64 {
	return px / c.Scale
}

// Pixels converts a length in meters.
func (c *Context) Pixels(m float64) float64 {
	return m * c.Scale
}

// ToWorld converts a screen point to simulation coordinates.
func (c *Context) ToWorld(p core.Vec2) core.Vec2 {
	return p.Scale(1 / c.Scale)
}

// ToScreen converts a simulation point to screen pixels.
func (c *Context) ToScreen(p core.Vec2) core.Vec2 {
	return p.Scale(c.Scale)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits reinterpreted
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

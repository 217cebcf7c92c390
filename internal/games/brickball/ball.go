package brickball

import (
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/light"
	"github.com/vovakirdan/brickball/internal/palette"
	"github.com/vovakirdan/brickball/internal/physics"
)

// Ball is a dynamic disc: the player, or a self-propelled enemy.
type Ball struct {
	body   physics.BodyID
	shape  physics.ShapeID
	color  core.Color
	radius float64 // pixels
	auto   bool    // Enemy balls keep themselves moving
}

// NewBall creates a ball at pos (pixels). Restitution is drawn from the
// configured range. An auto ball also starts with a random velocity.
func NewBall(ctx *Context, pos core.Vec2, color core.Color, auto bool) *Ball {
	cfg := ctx.Config.Ball

	body := ctx.World.CreateBody(physics.BodyDef{
		Type:          physics.Dynamic,
		Position:      ctx.ToWorld(pos),
		LinearDamping: cfg.LinearDamping,
	})
	shape := ctx.World.AddCircle(body, physics.ShapeDef{
		Density:     cfg.Density,
		Friction:    cfg.Friction,
		Restitution: uniform(ctx.Rand, cfg.RestitutionMin, cfg.RestitutionMax),
	}, ctx.Meters(cfg.Radius))

	b := &Ball{body: body, shape: shape, color: color, radius: cfg.Radius, auto: auto}
	if auto {
		b.kick(ctx)
	}
	return b
}

// kick gives the ball a fresh random velocity within ±EnemySpeed per axis,
// at least Enemies.MinSpeed in magnitude.
func (b *Ball) kick(ctx *Context) {
	s := ctx.EnemySpeed
	v := core.V(uniform(ctx.Rand, -s, s), uniform(ctx.Rand, -s, s))
	if floor := ctx.Config.Enemies.MinSpeed; v.Len() < floor {
		dir := v.Normalize()
		if dir.IsZero() {
			dir = core.V(1, 0)
		}
		v = dir.Scale(floor)
	}
	ctx.World.SetLinearVelocity(b.body, v)
}

// BodyID returns the ball's physics body.
func (b *Ball) BodyID() physics.BodyID {
	return b.body
}

// ShapeID returns the ball's physics shape.
func (b *Ball) ShapeID() physics.ShapeID {
	return b.shape
}

// Position returns the centre in pixels.
func (b *Ball) Position(ctx *Context) core.Vec2 {
	return ctx.ToScreen(ctx.World.Position(b.body))
}

// ApplyForce pushes the ball along dir scaled by the configured move force.
func (b *Ball) ApplyForce(ctx *Context, dir core.Vec2) {
	ctx.World.ApplyForceToCenter(b.body, dir.Scale(ctx.Config.Player.MoveForce))
}

// Update re-kicks an enemy that has been slowed down by damping.
func (b *Ball) Update(ctx *Context) {
	if !b.auto {
		return
	}
	if ctx.World.LinearVelocity(b.body).Len() < ctx.Config.Enemies.MinSpeed {
		b.kick(ctx)
	}
}

// Render draws the ball shaded by the scene light: a radial gradient whose
// bright centre faces the light, plus a specular dot when a light exists.
func (b *Ball) Render(dst core.Canvas, ctx *Context) {
	pos := b.Position(ctx)
	intensity := light.IntensityAt(ctx.Light, pos)
	offset := light.HighlightOffsetAt(ctx.Light, pos, b.radius)

	lit := palette.Brightness(b.color, (intensity-1)*0.5)
	edge := palette.Brightness(lit, -0.3)
	centre := palette.Brightness(lit, 0.4)

	dst.GradientCircle(pos, b.radius, pos.Add(offset), centre, edge)

	if ctx.Light != nil {
		spec := palette.Fade(core.ColorWhite, ctx.Config.Render.SpecularAlpha)
		dst.FillCircle(pos.Add(offset.Scale(0.6)), b.radius*0.2, spec)
	}
}

// Destroy removes the ball's body from the world.
func (b *Ball) Destroy(ctx *Context) {
	if ctx.World.BodyValid(b.body) {
		ctx.World.DestroyBody(b.body)
	}
}

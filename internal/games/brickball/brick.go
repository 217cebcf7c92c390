package brickball

import (
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/palette"
	"github.com/vovakirdan/brickball/internal/physics"
)

// BrickState is the lifecycle stage of a brick.
type BrickState int

const (
	// Attached bricks are static and part of their wall.
	Attached BrickState = iota
	// Detached bricks have broken loose and are simulated as debris.
	Detached
)

func (s BrickState) String() string {
	if s == Detached {
		return "detached"
	}
	return "attached"
}

// Brick is one square block of a wall.
type Brick struct {
	body  physics.BodyID
	shape physics.ShapeID
	state BrickState

	color  core.Color
	border core.Color
	half   float64 // Half extent in pixels
}

// NewBrick creates a brick centred at pos (pixels). An attached brick starts
// static; a detached one is dynamic from the start.
func NewBrick(ctx *Context, pos core.Vec2, color core.Color, attached bool) *Brick {
	cfg := ctx.Config.Brick

	bodyType, state := physics.Static, Attached
	if !attached {
		bodyType, state = physics.Dynamic, Detached
	}

	body := ctx.World.CreateBody(physics.BodyDef{
		Type:           bodyType,
		Position:       ctx.ToWorld(pos),
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
	})
	half := ctx.Meters(cfg.HalfExtent)
	shape := ctx.World.AddBox(body, physics.ShapeDef{
		Density:         cfg.Density,
		Friction:        cfg.Friction,
		Restitution:     cfg.Restitution,
		EnableHitEvents: true,
	}, half, half)

	return &Brick{
		body:   body,
		shape:  shape,
		state:  state,
		color:  color,
		border: palette.Brightness(color, cfg.BorderShade),
		half:   cfg.HalfExtent,
	}
}

// Detach moves the brick to Detached. It reports whether this call made the
// transition; detaching twice is a no-op.
func (b *Brick) Detach() bool {
	if b.state == Detached {
		return false
	}
	b.state = Detached
	return true
}

// IsAttached reports whether the brick is still part of its wall.
func (b *Brick) IsAttached() bool {
	return b.state == Attached
}

// BodyID returns the brick's physics body.
func (b *Brick) BodyID() physics.BodyID {
	return b.body
}

// ShapeID returns the brick's physics shape.
func (b *Brick) ShapeID() physics.ShapeID {
	return b.shape
}

// Color returns the fill color.
func (b *Brick) Color() core.Color {
	return b.color
}

// Update is a no-op: pose is read from the world at render time.
func (b *Brick) Update(*Context) {}

// Render draws the brick with an inset border that turns with it.
func (b *Brick) Render(dst core.Canvas, ctx *Context) {
	pos := ctx.ToScreen(ctx.World.Position(b.body))
	angle := ctx.World.Angle(b.body)

	dst.FillRotatedRect(pos, b.half, b.half, angle, b.color)

	thickness := ctx.Config.Brick.BorderThickness
	if thickness <= 0 {
		return
	}
	inset := b.half - thickness/2
	corners := [4]core.Vec2{
		core.V(-inset, -inset),
		core.V(inset, -inset),
		core.V(inset, inset),
		core.V(-inset, inset),
	}
	for i := range corners {
		corners[i] = pos.Add(corners[i].Rotate(angle))
	}
	for i := range corners {
		dst.Line(corners[i], corners[(i+1)%len(corners)], thickness, b.border)
	}
}

// Destroy removes the brick's body from the world.
func (b *Brick) Destroy(ctx *Context) {
	if ctx.World.BodyValid(b.body) {
		ctx.World.DestroyBody(b.body)
	}
}

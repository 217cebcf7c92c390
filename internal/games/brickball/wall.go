package brickball

import (
	"iter"
	"slices"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/physics"
)

// Orientation is the axis a wall extends along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// minRelativeSpeed is the relative speed (m/s) below which the velocity
// policy has nothing to hand over and the normal policy is used instead.
const minRelativeSpeed = 1e-6

// Wall is a straight run of bricks that fracture individually.
type Wall struct {
	name        string
	orientation Orientation
	bricks      []*Brick
}

// NewWall lays out count bricks starting at start (pixels), each one brick
// width further along the orientation axis. A non-positive count gives an
// empty wall.
func NewWall(ctx *Context, name string, start core.Vec2, count int, o Orientation, color core.Color) *Wall {
	count = max(count, 0)
	step := core.V(2*ctx.Config.Brick.HalfExtent, 0)
	if o == Vertical {
		step = core.V(0, 2*ctx.Config.Brick.HalfExtent)
	}

	w := &Wall{name: name, orientation: o, bricks: make([]*Brick, 0, count)}
	for i := range count {
		pos := start.Add(step.Scale(float64(i)))
		w.bricks = append(w.bricks, NewBrick(ctx, pos, color, true))
	}
	return w
}

// Name returns the wall's label used in logs.
func (w *Wall) Name() string {
	return w.name
}

// Orientation returns the layout axis.
func (w *Wall) Orientation() Orientation {
	return w.orientation
}

// Bricks returns the bricks in layout order. The slice is a copy.
func (w *Wall) Bricks() []*Brick {
	return slices.Clone(w.bricks)
}

// Len returns the number of bricks, attached or not.
func (w *Wall) Len() int {
	return len(w.bricks)
}

// AttachedCount returns how many bricks are still part of the wall.
func (w *Wall) AttachedCount() int {
	n := 0
	for _, b := range w.bricks {
		if b.IsAttached() {
			n++
		}
	}
	return n
}

// Update processes the hit events of the last world step, then updates
// every brick.
func (w *Wall) Update(ctx *Context) {
	w.CheckForBreaks(ctx, ctx.World.HitEvents())
	for _, b := range w.bricks {
		b.Update(ctx)
	}
}

// CheckForBreaks detaches the first attached brick named by each event and
// returns how many bricks broke. Events that name no attached brick of this
// wall are ignored.
func (w *Wall) CheckForBreaks(ctx *Context, events iter.Seq[physics.HitEvent]) int {
	broken := 0
	for e := range events {
		for i, b := range w.bricks {
			if !b.IsAttached() {
				continue
			}
			if !e.Involves(b.shape) {
				continue
			}
			w.breakBrick(ctx, i, b, e)
			broken++
			break
		}
	}
	return broken
}

func (w *Wall) breakBrick(ctx *Context, index int, b *Brick, e physics.HitEvent) {
	b.Detach()
	ctx.World.SetType(b.body, physics.Dynamic)

	impulse := fractureImpulse(ctx, b, e)
	ctx.World.ApplyLinearImpulseToCenter(b.body, impulse)

	ctx.Logger.Debug("brick detached",
		"wall", w.name,
		"brick", index,
		"speed", e.ApproachSpeed,
		"impulse_x", impulse.X,
		"impulse_y", impulse.Y,
	)
}

// fractureImpulse computes the kick a freshly detached brick receives.
//
// The velocity policy hands the brick a share of the impactor's velocity
// relative to it. The normal policy pushes along the contact normal, away
// from the other shape. The velocity policy falls back to the normal one
// when the bodies were not moving relative to each other.
func fractureImpulse(ctx *Context, b *Brick, e physics.HitEvent) core.Vec2 {
	cfg := ctx.Config.Fracture

	brickIsA := e.ShapeA == b.shape
	away := e.Normal
	vBrick, vOther := e.VelocityB, e.VelocityA
	if brickIsA {
		away = away.Scale(-1)
		vBrick, vOther = e.VelocityA, e.VelocityB
	}

	if cfg.Policy == config.FractureVelocity {
		rel := vOther.Sub(vBrick)
		if rel.Len() > minRelativeSpeed {
			return rel.Scale(ctx.World.Mass(b.body) * cfg.VelocityDamping)
		}
	}
	return away.Scale(cfg.NormalImpulse)
}

// Render draws every brick.
func (w *Wall) Render(dst core.Canvas, ctx *Context) {
	for _, b := range w.bricks {
		b.Render(dst, ctx)
	}
}

// Destroy removes every brick from the world.
func (w *Wall) Destroy(ctx *Context) {
	for _, b := range w.bricks {
		b.Destroy(ctx)
	}
	w.bricks = nil
}

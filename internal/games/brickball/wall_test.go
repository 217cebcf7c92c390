package brickball

import (
	"slices"
	"testing"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/physics"
)

// foreignShape is never issued by a test world that holds only a few shapes.
const foreignShape physics.ShapeID = 9999

// brickMass is (2 * 7.5px / 50ppm)² at density 1.
const brickMass = 0.09

func events(evs ...physics.HitEvent) func(func(physics.HitEvent) bool) {
	return slices.Values(evs)
}

func attachedFlags(w *Wall) []bool {
	var out []bool
	for _, b := range w.Bricks() {
		out = append(out, b.IsAttached())
	}
	return out
}

func TestNewWallLayout(t *testing.T) {
	tests := []struct {
		name  string
		o     Orientation
		count int
		step  core.Vec2
	}{
		{"horizontal", Horizontal, 4, core.V(15, 0)},
		{"vertical", Vertical, 3, core.V(0, 15)},
		{"empty", Horizontal, 0, core.V(15, 0)},
		{"negative count is empty", Vertical, -2, core.V(0, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(t)
			start := core.V(200, 150)
			w := NewWall(ctx, tc.name, start, tc.count, tc.o, core.ColorBrown)

			if w.Len() != max(tc.count, 0) {
				t.Fatalf("Len() = %d, expected %d", w.Len(), max(tc.count, 0))
			}
			if w.AttachedCount() != w.Len() {
				t.Errorf("AttachedCount() = %d, expected all %d", w.AttachedCount(), w.Len())
			}
			for i, b := range w.Bricks() {
				want := start.Add(tc.step.Scale(float64(i)))
				got := ctx.ToScreen(ctx.World.Position(b.BodyID()))
				if !nearVec(got, want, 1e-9) {
					t.Errorf("brick %d at %v, expected %v", i, got, want)
				}
				if ctx.World.Type(b.BodyID()) != physics.Static {
					t.Errorf("brick %d type = %v, expected static", i, ctx.World.Type(b.BodyID()))
				}
				if !ctx.World.HitEventsEnabled(b.ShapeID()) {
					t.Errorf("brick %d should enable hit events", i)
				}
			}
		})
	}
}

func TestCheckForBreaksDetachesNamedBrick(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "test", core.V(100, 100), 3, Horizontal, core.ColorGray)
	target := w.Bricks()[1]

	broken := w.CheckForBreaks(ctx, events(physics.HitEvent{
		ShapeA:    foreignShape,
		ShapeB:    target.ShapeID(),
		Normal:    core.V(0, -1),
		VelocityA: core.V(0, -10),
	}))

	if broken != 1 {
		t.Errorf("CheckForBreaks() = %d, expected 1", broken)
	}
	if got, want := attachedFlags(w), []bool{true, false, true}; !slices.Equal(got, want) {
		t.Errorf("attached = %v, expected %v", got, want)
	}
	if ctx.World.Type(target.BodyID()) != physics.Dynamic {
		t.Error("detached brick should be dynamic")
	}
	if ctx.World.Type(w.Bricks()[0].BodyID()) != physics.Static {
		t.Error("untouched neighbour should stay static")
	}

	// Velocity policy: 0.3 of the impactor's relative velocity.
	v := ctx.World.LinearVelocity(target.BodyID())
	if !nearVec(v, core.V(0, -3), 1e-6) {
		t.Errorf("brick velocity = %v, expected (0, -3)", v)
	}
}

func TestFractureImpulsePolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		brickIsA bool
		normal   core.Vec2
		vOther   core.Vec2
		want     core.Vec2
	}{
		{"normal policy, brick is B", config.FractureNormal, false, core.V(0, 1), core.V(0, 5), core.V(0, 1/brickMass)},
		{"normal policy, brick is A", config.FractureNormal, true, core.V(0, 1), core.V(0, -5), core.V(0, -1/brickMass)},
		{"velocity policy", config.FractureVelocity, false, core.V(1, 0), core.V(4, 2), core.V(1.2, 0.6)},
		{"velocity policy falls back when at rest", config.FractureVelocity, true, core.V(-1, 0), core.V(0, 0), core.V(1/brickMass, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(t, func(c *config.BrickballConfig) { c.Fracture.Policy = tc.policy })
			w := NewWall(ctx, "test", core.V(100, 100), 1, Vertical, core.ColorGray)
			b := w.Bricks()[0]

			e := physics.HitEvent{ShapeA: foreignShape, ShapeB: b.ShapeID(), Normal: tc.normal, VelocityA: tc.vOther}
			if tc.brickIsA {
				e = physics.HitEvent{ShapeA: b.ShapeID(), ShapeB: foreignShape, Normal: tc.normal, VelocityB: tc.vOther}
			}
			if n := w.CheckForBreaks(ctx, events(e)); n != 1 {
				t.Fatalf("CheckForBreaks() = %d, expected 1", n)
			}

			v := ctx.World.LinearVelocity(b.BodyID())
			if !nearVec(v, tc.want, 1e-6) {
				t.Errorf("velocity = %v, expected %v", v, tc.want)
			}
		})
	}
}

func TestCheckForBreaksEveryBrick(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "test", core.V(300, 300), 5, Vertical, core.ColorBrown)

	var batch []physics.HitEvent
	for _, b := range w.Bricks() {
		batch = append(batch, physics.HitEvent{ShapeA: b.ShapeID(), ShapeB: foreignShape, Normal: core.V(1, 0)})
	}

	if n := w.CheckForBreaks(ctx, slices.Values(batch)); n != 5 {
		t.Errorf("CheckForBreaks() = %d, expected 5", n)
	}
	if w.AttachedCount() != 0 {
		t.Errorf("AttachedCount() = %d, expected 0", w.AttachedCount())
	}
}

func TestCheckForBreaksIsIdempotent(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "test", core.V(100, 100), 2, Horizontal, core.ColorBrown)
	b := w.Bricks()[0]
	e := physics.HitEvent{ShapeA: foreignShape, ShapeB: b.ShapeID(), Normal: core.V(0, 1), VelocityA: core.V(0, 4)}

	// The same brick twice in one batch breaks once.
	if n := w.CheckForBreaks(ctx, events(e, e)); n != 1 {
		t.Errorf("first batch = %d, expected 1", n)
	}
	v := ctx.World.LinearVelocity(b.BodyID())

	if n := w.CheckForBreaks(ctx, events(e)); n != 0 {
		t.Errorf("second batch = %d, expected 0", n)
	}
	if got := ctx.World.LinearVelocity(b.BodyID()); got != v {
		t.Errorf("detached brick got another impulse: %v -> %v", v, got)
	}
	if b.Detach() {
		t.Error("Detach() on a detached brick should report no transition")
	}
}

func TestCheckForBreaksIgnoresForeignEvents(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "test", core.V(100, 100), 3, Horizontal, core.ColorBrown)

	n := w.CheckForBreaks(ctx, events(
		physics.HitEvent{ShapeA: foreignShape, ShapeB: foreignShape + 1, Normal: core.V(0, 1)},
	))
	if n != 0 || w.AttachedCount() != 3 {
		t.Errorf("foreign event broke %d bricks, attached = %d", n, w.AttachedCount())
	}

	empty := NewWall(ctx, "empty", core.V(0, 0), 0, Horizontal, core.ColorBrown)
	if n := empty.CheckForBreaks(ctx, events(physics.HitEvent{ShapeA: foreignShape})); n != 0 {
		t.Errorf("empty wall broke %d bricks", n)
	}
}

func TestBallKnocksBrickLoose(t *testing.T) {
	ctx := newTestContext(t, func(c *config.BrickballConfig) { c.Ball.LinearDamping = 0 })
	w := NewWall(ctx, "test", core.V(100, 100), 3, Horizontal, core.ColorBrown)
	ball := NewBall(ctx, core.V(115, 200), core.ColorRed, false)
	ctx.World.SetLinearVelocity(ball.BodyID(), core.V(0, -10))

	target := w.Bricks()[1]
	start := ctx.World.Position(target.BodyID())
	for range 60 {
		ctx.World.Step(testDT, 4)
		w.Update(ctx)
	}

	if target.IsAttached() {
		t.Fatal("brick in the ball's path should have broken loose")
	}
	if ctx.World.Type(target.BodyID()) != physics.Dynamic {
		t.Error("broken brick should be dynamic")
	}
	if end := ctx.World.Position(target.BodyID()); end.Y >= start.Y {
		t.Errorf("broken brick should have moved away from the ball: %v -> %v", start, end)
	}
}

func TestWallDestroy(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "test", core.V(100, 100), 4, Horizontal, core.ColorBrown)
	bodies := ctx.World.Counters().Bodies

	w.Destroy(ctx)
	if got := ctx.World.Counters().Bodies; got != bodies-4 {
		t.Errorf("Bodies after Destroy = %d, expected %d", got, bodies-4)
	}
	if w.Len() != 0 {
		t.Errorf("Len() after Destroy = %d, expected 0", w.Len())
	}
}

func TestEmptyWallUpdateAndRender(t *testing.T) {
	ctx := newTestContext(t)
	w := NewWall(ctx, "empty", core.V(100, 100), 0, Vertical, core.ColorGray)

	ball := NewBall(ctx, core.V(100, 300), core.ColorRed, false)
	ctx.World.SetLinearVelocity(ball.BodyID(), core.V(0, -10))
	before := ctx.World.Counters()

	for range 30 {
		ctx.World.Step(testDT, 4)
		w.Update(ctx)
	}
	if w.Len() != 0 || w.AttachedCount() != 0 {
		t.Errorf("empty wall after Update: Len() = %d, AttachedCount() = %d", w.Len(), w.AttachedCount())
	}
	if after := ctx.World.Counters(); after.Bodies != before.Bodies || after.Shapes != before.Shapes {
		t.Errorf("Counters() = %+v, expected %+v", after, before)
	}

	var dst recordCanvas
	w.Render(&dst, ctx)
	if len(dst.rects)+len(dst.lines)+len(dst.circles)+len(dst.gradients)+len(dst.texts)+len(dst.cleared) != 0 {
		t.Errorf("empty wall drew %+v", dst)
	}
}

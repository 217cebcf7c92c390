package brickball

import (
	"testing"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/physics"
)

const testDT = 1.0 / 60.0

func newTestContext(t *testing.T, mutate ...func(*config.BrickballConfig)) *Context {
	t.Helper()
	cfg := config.DefaultBrickballConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	world, err := physics.NewWorld(physics.Def{
		Iterations:        cfg.World.Iterations,
		CollisionSlop:     physics.DefaultDef().CollisionSlop,
		HitEventThreshold: cfg.World.HitEventThreshold,
		MaxLinearSpeed:    cfg.World.MaxLinearSpeed,
	})
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	t.Cleanup(world.Destroy)
	return NewContext(world, &cfg, nil, nil, newRand(1))
}

type circleCall struct {
	center core.Vec2
	radius float64
	color  core.Color
}

type gradientCall struct {
	center, focus core.Vec2
	radius        float64
	inner, outer  core.Color
}

type rectCall struct {
	center       core.Vec2
	halfW, halfH float64
	angle        float64
	color        core.Color
}

type lineCall struct {
	a, b      core.Vec2
	thickness float64
	color     core.Color
}

// recordCanvas remembers every draw call.
type recordCanvas struct {
	cleared   []core.Color
	rects     []rectCall
	lines     []lineCall
	circles   []circleCall
	gradients []gradientCall
	texts     []string
}

func (r *recordCanvas) Size() core.Vec2     { return core.V(800, 600) }
func (r *recordCanvas) Clear(bg core.Color) { r.cleared = append(r.cleared, bg) }
func (r *recordCanvas) DrawText(_ core.Vec2, text string, _ core.Color) {
	r.texts = append(r.texts, text)
}

func (r *recordCanvas) FillRotatedRect(center core.Vec2, halfW, halfH, angle float64, c core.Color) {
	r.rects = append(r.rects, rectCall{center, halfW, halfH, angle, c})
}

func (r *recordCanvas) Line(a, b core.Vec2, thickness float64, c core.Color) {
	r.lines = append(r.lines, lineCall{a, b, thickness, c})
}

func (r *recordCanvas) FillCircle(center core.Vec2, radius float64, c core.Color) {
	r.circles = append(r.circles, circleCall{center, radius, c})
}

func (r *recordCanvas) GradientCircle(center core.Vec2, radius float64, focus core.Vec2, inner, outer core.Color) {
	r.gradients = append(r.gradients, gradientCall{center, focus, radius, inner, outer})
}

func nearVec(a, b core.Vec2, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

// Package physics is the boundary between the game and the rigid-body
// engine (Chipmunk2D via github.com/jakecoffman/cp).
//
// Game code never touches cp types. Bodies and shapes are referred to by
// opaque handles owned by a World, all quantities are in simulation units
// (meters, seconds, kilograms) and collisions are surfaced as a batch of
// HitEvents per Step. Passing a handle that was never issued, or one whose
// body was destroyed, is a programming error and panics.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/brickball/internal/core"
)

// BodyID identifies a body within one World. The zero value is never issued.
type BodyID int32

// ShapeID identifies a shape within one World. The zero value is never issued.
type ShapeID int32

// Def configures a new World.
type Def struct {
	Gravity       core.Vec2 // m/s²
	Iterations    int       // Solver iterations per sub-step
	CollisionSlop float64   // Allowed overlap in meters
	// HitEventThreshold is the minimum approach speed (m/s) for a touch to
	// be reported as a HitEvent.
	HitEventThreshold float64
	// RestitutionThreshold must stay zero: every collision bounces with
	// the combined restitution of its shapes, however slow.
	RestitutionThreshold float64
	// MaxLinearSpeed caps every dynamic body's speed in m/s. Zero means no
	// cap. The engine has no continuous collision, so the cap is what keeps
	// fast bodies from passing through thin ones.
	MaxLinearSpeed float64
}

// DefaultDef returns a zero-gravity world definition.
func DefaultDef() Def {
	return Def{
		Iterations:        10,
		CollisionSlop:     0.005,
		HitEventThreshold: 1.0,
		MaxLinearSpeed:    20,
	}
}

// Counters summarizes world population.
type Counters struct {
	Bodies   int
	Shapes   int
	Contacts int // Touching shape pairs
}

type bodyEntry struct {
	body   *cp.Body
	shapes []ShapeID
	linear float64 // Linear damping
	spin   float64 // Angular damping
	limit  float64 // Speed cap, 0 for none
}

type pairKey struct {
	a, b ShapeID
}

func pairOf(a, b ShapeID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// World owns an engine space plus every body and shape created in it.
type World struct {
	space *cp.Space
	def   Def

	bodies map[BodyID]*bodyEntry
	shapes map[ShapeID]*cp.Shape
	// hitShapes holds the shapes created with EnableHitEvents.
	hitShapes map[ShapeID]bool

	nextBody  BodyID
	nextShape ShapeID

	forces map[BodyID]cp.Vector
	hits   []HitEvent
	seen   map[pairKey]struct{}
}

// NewWorld creates an empty world.
func NewWorld(def Def) (*World, error) {
	if def.Iterations <= 0 {
		return nil, fmt.Errorf("physics: iterations must be positive, got %d", def.Iterations)
	}
	if def.HitEventThreshold < 0 {
		return nil, fmt.Errorf("physics: hit event threshold must not be negative, got %v", def.HitEventThreshold)
	}
	if def.RestitutionThreshold != 0 {
		return nil, fmt.Errorf("physics: restitution threshold %v not supported, only 0", def.RestitutionThreshold)
	}
	if def.MaxLinearSpeed < 0 {
		return nil, fmt.Errorf("physics: max linear speed must not be negative, got %v", def.MaxLinearSpeed)
	}
	if def.CollisionSlop < 0 {
		return nil, fmt.Errorf("physics: collision slop must not be negative, got %v", def.CollisionSlop)
	}

	space := cp.NewSpace()
	space.Iterations = uint(def.Iterations)
	space.SetGravity(toCP(def.Gravity))
	space.SetCollisionSlop(def.CollisionSlop)

	w := &World{
		space:     space,
		def:       def,
		bodies:    make(map[BodyID]*bodyEntry),
		shapes:    make(map[ShapeID]*cp.Shape),
		hitShapes: make(map[ShapeID]bool),
		forces:    make(map[BodyID]cp.Vector),
		seen:      make(map[pairKey]struct{}),
	}
	w.installHitHandler()
	return w, nil
}

// Def returns the definition the world was created with.
func (w *World) Def() Def {
	return w.def
}

func (w *World) mustLive() {
	if w.space == nil {
		panic("physics: world used after Destroy")
	}
}

// Step advances the simulation by dt seconds split into subSteps equal
// sub-steps. Hit events from every sub-step are gathered into a fresh batch
// and forces applied since the previous Step act for the whole of dt.
func (w *World) Step(dt float64, subSteps int) {
	w.mustLive()
	if subSteps < 1 {
		subSteps = 1
	}
	w.hits = nil

	h := dt / float64(subSteps)
	for range subSteps {
		clear(w.seen)
		for id, f := range w.forces {
			b := w.bodies[id].body
			b.ApplyForceAtWorldPoint(f, b.LocalToWorld(b.CenterOfGravity()))
		}
		w.space.Step(h)
	}
	clear(w.forces)
}

// Counters reports how many bodies, shapes and touching pairs the world holds.
func (w *World) Counters() Counters {
	w.mustLive()
	arbiters := make(map[*cp.Arbiter]struct{})
	for _, e := range w.bodies {
		e.body.EachArbiter(func(arb *cp.Arbiter) {
			if arb.ContactPointSet().Count > 0 {
				arbiters[arb] = struct{}{}
			}
		})
	}
	return Counters{
		Bodies:   len(w.bodies),
		Shapes:   len(w.shapes),
		Contacts: len(arbiters),
	}
}

// Destroy removes everything from the world. The world is unusable afterwards.
func (w *World) Destroy() {
	if w.space == nil {
		return
	}
	for id := range w.bodies {
		w.DestroyBody(id)
	}
	w.space = nil
	w.hits = nil
}

// Destroyed reports whether Destroy has been called.
func (w *World) Destroyed() bool {
	return w.space == nil
}

func toCP(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) core.Vec2 {
	return core.Vec2{X: v.X, Y: v.Y}
}

package physics

import (
	"iter"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/brickball/internal/core"
)

// HitEvent reports two shapes starting to touch fast enough.
// Normal is a unit vector pointing from ShapeA toward ShapeB.
type HitEvent struct {
	ShapeA, ShapeB ShapeID
	Point          core.Vec2 // meters
	Normal         core.Vec2
	// ApproachSpeed is (vA - vB)·Normal at the moment of contact, in m/s.
	ApproachSpeed float64
	// VelocityA and VelocityB are the body velocities at contact, in m/s.
	VelocityA, VelocityB core.Vec2
}

// Involves reports whether id is one of the event's shapes.
func (e HitEvent) Involves(id ShapeID) bool {
	return e.ShapeA == id || e.ShapeB == id
}

// HitEvents yields the hit events of the most recent Step. The sequence
// reads the batch produced by that Step and must not be used after the
// next one.
func (w *World) HitEvents() iter.Seq[HitEvent] {
	batch := w.hits
	return func(yield func(HitEvent) bool) {
		for _, e := range batch {
			if !yield(e) {
				return
			}
		}
	}
}

// HitEventCount returns the size of the current batch.
func (w *World) HitEventCount() int {
	return len(w.hits)
}

func (w *World) installHitHandler() {
	h := w.space.NewWildcardCollisionHandler(hitCollisionType)
	h.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		w.recordHit(arb)
		return true
	}
}

// recordHit runs inside the engine step. It only reads the arbiter; the
// world is locked and must not be modified here.
func (w *World) recordHit(arb *cp.Arbiter) {
	sa, sb := arb.Shapes()
	idA, okA := sa.UserData.(ShapeID)
	idB, okB := sb.UserData.(ShapeID)
	if !okA || !okB {
		return
	}

	// A pair of hit-enabled shapes reaches the handler once per side.
	key := pairOf(idA, idB)
	if _, dup := w.seen[key]; dup {
		return
	}
	w.seen[key] = struct{}{}

	n := arb.Normal()
	va, vb := sa.Body().Velocity(), sb.Body().Velocity()
	speed := va.Sub(vb).Dot(n)
	if speed < w.def.HitEventThreshold {
		return
	}

	point := sa.Body().Position().Lerp(sb.Body().Position(), 0.5)
	if set := arb.ContactPointSet(); set.Count > 0 {
		point = set.Points[0].PointA
	}

	w.hits = append(w.hits, HitEvent{
		ShapeA:        idA,
		ShapeB:        idB,
		Point:         fromCP(point),
		Normal:        fromCP(n),
		ApproachSpeed: speed,
		VelocityA:     fromCP(va),
		VelocityB:     fromCP(vb),
	})
}

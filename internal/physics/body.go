package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/brickball/internal/core"
)

// BodyType classifies how a body takes part in the simulation.
type BodyType int

const (
	// Static bodies never move and are not affected by forces or impulses.
	Static BodyType = iota
	// Dynamic bodies are fully simulated.
	Dynamic
)

func (t BodyType) String() string {
	switch t {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("BodyType(%d)", int(t))
	}
}

func (t BodyType) cp() int {
	if t == Dynamic {
		return cp.BODY_DYNAMIC
	}
	return cp.BODY_STATIC
}

// BodyDef describes a body to create.
type BodyDef struct {
	Type           BodyType
	Position       core.Vec2 // meters
	Angle          float64   // radians
	LinearVelocity core.Vec2 // m/s, dynamic bodies only
	LinearDamping  float64   // 1/s
	AngularDamping float64   // 1/s
}

// CreateBody adds a body with no shapes. Its mass comes from the shapes
// attached later.
func (w *World) CreateBody(def BodyDef) BodyID {
	w.mustLive()

	var body *cp.Body
	if def.Type == Dynamic {
		body = cp.NewBody(0, 0)
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(toCP(def.Position))
	body.SetAngle(def.Angle)

	w.nextBody++
	id := w.nextBody
	entry := &bodyEntry{body: body, linear: def.LinearDamping, spin: def.AngularDamping, limit: w.def.MaxLinearSpeed}
	body.UserData = id
	body.SetVelocityUpdateFunc(entry.integrateVelocity)

	w.space.AddBody(body)
	if def.Type == Dynamic {
		body.SetVelocityVector(toCP(def.LinearVelocity))
	}
	w.bodies[id] = entry
	return id
}

// integrateVelocity applies per-body damping as v *= 1/(1 + dt*c), then the
// world speed cap. Only central forces are ever applied, so there is no
// torque to integrate.
func (e *bodyEntry) integrateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	spin := body.AngularVelocity()
	cp.BodyUpdateVelocity(body, gravity, damping/(1+dt*e.linear), dt)
	body.SetAngularVelocity(spin * damping / (1 + dt*e.spin))

	if e.limit > 0 {
		if v := body.Velocity(); v.Length() > e.limit {
			body.SetVelocityVector(v.Normalize().Mult(e.limit))
		}
	}
}

func (w *World) entry(id BodyID) *bodyEntry {
	w.mustLive()
	e, ok := w.bodies[id]
	if !ok {
		panic(fmt.Sprintf("physics: invalid body %d", id))
	}
	return e
}

// BodyValid reports whether id refers to a live body.
func (w *World) BodyValid(id BodyID) bool {
	if w.space == nil {
		return false
	}
	_, ok := w.bodies[id]
	return ok
}

// Position returns the body origin in meters.
func (w *World) Position(id BodyID) core.Vec2 {
	return fromCP(w.entry(id).body.Position())
}

// Angle returns the body rotation in radians.
func (w *World) Angle(id BodyID) float64 {
	return w.entry(id).body.Angle()
}

// LinearVelocity returns the body velocity in m/s.
func (w *World) LinearVelocity(id BodyID) core.Vec2 {
	return fromCP(w.entry(id).body.Velocity())
}

// Mass returns the body mass in kilograms. Static bodies report the mass
// they would have once made dynamic.
func (w *World) Mass(id BodyID) float64 {
	e := w.entry(id)
	if e.body.GetType() == cp.BODY_DYNAMIC {
		return e.body.Mass()
	}
	m := 0.0
	for _, sid := range e.shapes {
		m += w.shapes[sid].Mass()
	}
	return m
}

// Type returns the body type.
func (w *World) Type(id BodyID) BodyType {
	if w.entry(id).body.GetType() == cp.BODY_DYNAMIC {
		return Dynamic
	}
	return Static
}

// SetType reclassifies a body. A body that becomes dynamic takes its mass
// and inertia from its shapes' densities and starts at rest.
func (w *World) SetType(id BodyID, t BodyType) {
	e := w.entry(id)
	if e.body.GetType() == t.cp() {
		return
	}
	e.body.SetType(t.cp())
	if t == Dynamic {
		e.body.Activate()
	} else {
		delete(w.forces, id)
	}
}

// SetLinearVelocity overrides the velocity of a dynamic body.
func (w *World) SetLinearVelocity(id BodyID, v core.Vec2) {
	e := w.entry(id)
	if e.body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	e.body.SetVelocityVector(toCP(v))
	e.body.Activate()
}

// ApplyLinearImpulseToCenter changes the velocity of a dynamic body by
// impulse/mass. Static bodies ignore impulses.
func (w *World) ApplyLinearImpulseToCenter(id BodyID, impulse core.Vec2) {
	e := w.entry(id)
	if e.body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	b := e.body
	b.ApplyImpulseAtWorldPoint(toCP(impulse), b.LocalToWorld(b.CenterOfGravity()))
	b.Activate()
}

// ApplyForceToCenter adds a force (N) that acts for the whole next Step.
// Static bodies ignore forces.
func (w *World) ApplyForceToCenter(id BodyID, force core.Vec2) {
	e := w.entry(id)
	if e.body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	w.forces[id] = w.forces[id].Add(toCP(force))
}

// DestroyBody removes a body and all of its shapes.
func (w *World) DestroyBody(id BodyID) {
	e := w.entry(id)
	for _, sid := range e.shapes {
		w.space.RemoveShape(w.shapes[sid])
		delete(w.shapes, sid)
		delete(w.hitShapes, sid)
	}
	w.space.RemoveBody(e.body)
	delete(w.bodies, id)
	delete(w.forces, id)
}

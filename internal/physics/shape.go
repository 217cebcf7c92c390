package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Collision types. Only shapes that opt into hit events get a type the
// hit handler listens to.
const (
	plainCollisionType cp.CollisionType = iota
	hitCollisionType
)

// ShapeDef describes the material of a shape.
type ShapeDef struct {
	Density         float64 // kg/m²
	Friction        float64
	Restitution     float64
	EnableHitEvents bool
}

// DefaultShapeDef returns a unit-density shape without hit events.
func DefaultShapeDef() ShapeDef {
	return ShapeDef{Density: 1, Friction: 0.6}
}

// AddBox attaches an axis-aligned box centred on the body origin.
func (w *World) AddBox(body BodyID, def ShapeDef, halfW, halfH float64) ShapeID {
	e := w.entry(body)
	return w.attach(e, cp.NewBox(e.body, 2*halfW, 2*halfH, 0), def)
}

// AddCircle attaches a circle centred on the body origin.
func (w *World) AddCircle(body BodyID, def ShapeDef, radius float64) ShapeID {
	e := w.entry(body)
	return w.attach(e, cp.NewCircle(e.body, radius, cp.Vector{}), def)
}

func (w *World) attach(e *bodyEntry, shape *cp.Shape, def ShapeDef) ShapeID {
	w.nextShape++
	id := w.nextShape
	shape.UserData = id
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Restitution)
	if def.EnableHitEvents {
		shape.SetCollisionType(hitCollisionType)
		w.hitShapes[id] = true
	} else {
		shape.SetCollisionType(plainCollisionType)
	}

	// Density is set after the shape joins the space so the body picks up
	// mass and inertia from it.
	w.space.AddShape(shape)
	shape.SetDensity(def.Density)

	e.shapes = append(e.shapes, id)
	w.shapes[id] = shape
	return id
}

func (w *World) shape(id ShapeID) *cp.Shape {
	w.mustLive()
	s, ok := w.shapes[id]
	if !ok {
		panic(fmt.Sprintf("physics: invalid shape %d", id))
	}
	return s
}

// ShapeValid reports whether id refers to a live shape.
func (w *World) ShapeValid(id ShapeID) bool {
	if w.space == nil {
		return false
	}
	_, ok := w.shapes[id]
	return ok
}

// BodyOf returns the body a shape is attached to.
func (w *World) BodyOf(id ShapeID) BodyID {
	return w.shape(id).Body().UserData.(BodyID)
}

// HitEventsEnabled reports whether a shape produces hit events.
func (w *World) HitEventsEnabled(id ShapeID) bool {
	w.shape(id)
	return w.hitShapes[id]
}

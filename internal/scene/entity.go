// Package scene keeps the drawable bookkeeping for bodies in a world.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
)

// Entity pairs a body with the shape and fill used to draw it.
// The shape is copied from the body at creation so drawing never inspects
// engine fixtures.
type Entity struct {
	Label string
	Body  *physics.Body
	Shape physics.Shape
	Fill  render.Color
}

func New(label string, body *physics.Body, fill render.Color) *Entity {
	return &Entity{Label: label, Body: body, Shape: body.Shape(), Fill: fill}
}

// Spawn creates the body in w and wraps it.
func Spawn(w *physics.World, label string, spec physics.BodySpec, fill render.Color) (*Entity, error) {
	body, err := w.CreateBody(spec)
	if err != nil {
		return nil, err
	}
	return New(label, body, fill), nil
}

// Draw emits the entity at its current world transform, in pixels.
func Draw(c render.Canvas, e *Entity) {
	pos := e.Body.Position()
	switch e.Shape.Kind {
	case physics.ShapeCircle:
		c.DrawCircle(render.Circle{Center: pos, Radius: e.Shape.Radius, Fill: e.Fill})
	case physics.ShapeBox:
		size := e.Shape.Size()
		c.DrawRect(render.Rect{
			Position:    pos,
			Size:        size,
			Origin:      mgl64.Vec2{size[0] / 2, size[1] / 2},
			RotationDeg: e.Body.AngleDeg(),
			Fill:        e.Fill,
		})
	}
}

// DrawAll draws entities in slice order.
func DrawAll(c render.Canvas, entities []*Entity) {
	for _, e := range entities {
		Draw(c, e)
	}
}

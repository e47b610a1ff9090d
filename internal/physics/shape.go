package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/units"
)

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota + 1
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is the collision geometry of a body, in pixels. Only the fields of
// the active kind are meaningful.
type Shape struct {
	Kind       ShapeKind
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Box(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: ShapeBox, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// Size returns the full pixel extents of the shape's bounding box.
func (s Shape) Size() mgl64.Vec2 {
	switch s.Kind {
	case ShapeCircle:
		return mgl64.Vec2{2 * s.Radius, 2 * s.Radius}
	case ShapeBox:
		return mgl64.Vec2{2 * s.HalfWidth, 2 * s.HalfHeight}
	}
	return mgl64.Vec2{}
}

func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %f", ErrInvalidShape, s.Radius)
		}
	case ShapeBox:
		if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
			return fmt.Errorf("%w: box half extents %fx%f", ErrInvalidShape, s.HalfWidth, s.HalfHeight)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidShape, s.Kind)
	}
	return nil
}

// engineShape builds the engine's shape in meters. The caller must Validate first.
func (s Shape) engineShape() box2d.B2ShapeInterface {
	if s.Kind == ShapeCircle {
		circle := box2d.MakeB2CircleShape()
		circle.M_radius = units.Meters(s.Radius)
		return &circle
	}
	poly := box2d.MakeB2PolygonShape()
	poly.SetAsBox(units.Meters(s.HalfWidth), units.Meters(s.HalfHeight))
	return &poly
}

// DefaultFriction is the engine's fixture friction when none is given.
const DefaultFriction = 0.2

// Material holds the fixture properties of a body.
type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

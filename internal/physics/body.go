package physics

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/units"
)

type Kind uint8

const (
	Static Kind = iota
	Kinematic
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

func (k Kind) engineType() uint8 {
	switch k {
	case Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

// BodySpec describes a body in screen units: Position in pixels, AngleDeg in
// degrees. Velocity is in world units (m/s) as the exercises set it directly.
type BodySpec struct {
	Kind          Kind
	Position      mgl64.Vec2
	AngleDeg      float64
	Shape         Shape
	Material      Material
	Velocity      mgl64.Vec2
	LinearDamping float64
	Bullet        bool
}

// Body is a handle to an engine body. Positions cross the boundary in pixels.
type Body struct {
	b2       *box2d.B2Body
	shape    Shape
	kind     Kind
	material Material
}

func (b *Body) Kind() Kind { return b.kind }

func (b *Body) Shape() Shape { return b.shape }

func (b *Body) Material() Material { return b.material }

// Position returns the body origin in pixels.
func (b *Body) Position() mgl64.Vec2 {
	return units.ToScreen(b.WorldPosition())
}

// WorldPosition returns the body origin in meters.
func (b *Body) WorldPosition() mgl64.Vec2 {
	p := b.b2.GetPosition()
	return mgl64.Vec2{p.X, p.Y}
}

func (b *Body) AngleDeg() float64 {
	return units.Degrees(b.b2.GetAngle())
}

// SetAngleDeg rotates the body in place.
func (b *Body) SetAngleDeg(deg float64) {
	b.b2.SetTransform(b.b2.GetPosition(), units.Radians(deg))
}

// Velocity returns the linear velocity in m/s.
func (b *Body) Velocity() mgl64.Vec2 {
	v := b.b2.GetLinearVelocity()
	return mgl64.Vec2{v.X, v.Y}
}

func (b *Body) SetVelocity(v mgl64.Vec2) {
	b.b2.SetLinearVelocity(box2d.MakeB2Vec2(v[0], v[1]))
}

func (b *Body) Speed() float64 {
	return b.Velocity().Len()
}

// ApplyForce applies a force in newtons at the center of mass, waking the body.
func (b *Body) ApplyForce(f mgl64.Vec2) {
	b.b2.ApplyForceToCenter(box2d.MakeB2Vec2(f[0], f[1]), true)
}

// ApplyImpulse applies a linear impulse in N·s at the center of mass.
func (b *Body) ApplyImpulse(j mgl64.Vec2) {
	b.b2.ApplyLinearImpulseToCenter(box2d.MakeB2Vec2(j[0], j[1]), true)
}

// Mass in kilograms; zero for static and kinematic bodies.
func (b *Body) Mass() float64 {
	return b.b2.GetMass()
}

func (b *Body) KineticEnergy() float64 {
	v := b.Speed()
	return 0.5 * b.Mass() * v * v
}

// IsFinite reports whether position and velocity are free of NaN/Inf.
func (b *Body) IsFinite() bool {
	p, v := b.WorldPosition(), b.Velocity()
	for _, x := range []float64{p[0], p[1], v[0], v[1], b.b2.GetAngle()} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

package physics

import (
	"fmt"
	"sync"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/units"
)

const (
	DefaultTimestep           = 1.0 / 60.0
	DefaultVelocityIterations = 8
	DefaultPositionIterations = 3
	StandardGravity           = 9.8
)

// WorldConfig holds the global simulation parameters. Gravity is in m/s²
// with +Y pointing down the screen.
type WorldConfig struct {
	Gravity            mgl64.Vec2
	Timestep           float64
	VelocityIterations int
	PositionIterations int
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:            mgl64.Vec2{0, StandardGravity},
		Timestep:           DefaultTimestep,
		VelocityIterations: DefaultVelocityIterations,
		PositionIterations: DefaultPositionIterations,
	}
}

func (c WorldConfig) Validate() error {
	if c.Timestep <= 0 {
		return fmt.Errorf("%w: timestep must be positive, got %f", ErrInvalidWorldConfig, c.Timestep)
	}
	if c.VelocityIterations <= 0 || c.PositionIterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d/%d",
			ErrInvalidWorldConfig, c.VelocityIterations, c.PositionIterations)
	}
	return nil
}

// World owns the engine world and every body created in it.
// It is not safe for concurrent use.
type World struct {
	cfg       WorldConfig
	b2        *box2d.B2World
	bodies    []*Body
	steps     int
	destroyed bool
}

func NewWorld(cfg WorldConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b2 := box2d.MakeB2World(box2d.MakeB2Vec2(cfg.Gravity[0], cfg.Gravity[1]))
	return &World{cfg: cfg, b2: &b2}, nil
}

func (w *World) Config() WorldConfig { return w.cfg }

func (w *World) Gravity() mgl64.Vec2 { return w.cfg.Gravity }

func (w *World) Timestep() float64 { return w.cfg.Timestep }

// Steps returns how many fixed steps have been taken.
func (w *World) Steps() int { return w.steps }

// Time returns simulated seconds elapsed.
func (w *World) Time() float64 { return float64(w.steps) * w.cfg.Timestep }

func (w *World) BodyCount() int { return len(w.bodies) }

// CreateBody adds a body described in pixels to the world.
func (w *World) CreateBody(spec BodySpec) (*Body, error) {
	if w.destroyed {
		return nil, ErrWorldDestroyed
	}
	if err := spec.Shape.Validate(); err != nil {
		return nil, err
	}

	def := box2d.MakeB2BodyDef()
	def.Type = spec.Kind.engineType()
	pos := units.ToWorld(spec.Position)
	def.Position.Set(pos[0], pos[1])
	def.Angle = units.Radians(spec.AngleDeg)
	def.LinearVelocity = box2d.MakeB2Vec2(spec.Velocity[0], spec.Velocity[1])
	def.LinearDamping = spec.LinearDamping
	def.Bullet = spec.Bullet

	b2body := w.b2.CreateBody(&def)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = spec.Shape.engineShape()
	fd.Density = spec.Material.Density
	fd.Friction = spec.Material.Friction
	fd.Restitution = spec.Material.Restitution
	b2body.CreateFixtureFromDef(&fd)

	body := &Body{b2: b2body, shape: spec.Shape, kind: spec.Kind, material: spec.Material}
	b2body.SetUserData(body)
	w.bodies = append(w.bodies, body)
	return body, nil
}

// stepMu serializes engine steps across worlds. The engine keeps
// time-of-impact counters in package variables that every Step writes.
var stepMu sync.Mutex

// Step advances the world by exactly one fixed timestep. Worlds on different
// goroutines may step concurrently; the engine call itself is serialized.
func (w *World) Step() {
	if w.destroyed {
		return
	}
	stepMu.Lock()
	w.b2.Step(w.cfg.Timestep, w.cfg.VelocityIterations, w.cfg.PositionIterations)
	stepMu.Unlock()
	w.steps++
}

// Destroy releases every body. Calling it more than once is a no-op.
func (w *World) Destroy() {
	if w.destroyed {
		return
	}
	for b := w.b2.GetBodyList(); b != nil; {
		next := b.GetNext()
		w.b2.DestroyBody(b)
		b = next
	}
	w.bodies = nil
	w.destroyed = true
}

func (w *World) Destroyed() bool { return w.destroyed }

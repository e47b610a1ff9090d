package scenarios

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
	"github.com/san-kum/rigidlab/internal/units"
)

var (
	cannonPivot  = mgl64.Vec2{30, 300}
	cannonMuzzle = mgl64.Vec2{50, 300}
	barrelSize   = mgl64.Vec2{100, 20}
)

const projectileRadius = 15.0

// Cannon fires balls on Space. Up raises the barrel, Down lowers it; the
// angle is clamped to ±MaxCannonAngle degrees. Angles follow screen
// convention, so positive angles point below the horizontal.
type Cannon struct {
	base
	Impulse float64
	angle   float64
	fired   int
}

func NewCannon(p Params) *Cannon {
	p = p.withDefaults()
	angle := p.CannonAngle
	if angle == 0 {
		angle = DefaultCannonAngle
	}
	return &Cannon{Impulse: p.CannonImpulse, angle: units.Clamp(angle, -MaxCannonAngle, MaxCannonAngle)}
}

func (c *Cannon) Name() string        { return "cannon" }
func (c *Cannon) Gravity() mgl64.Vec2 { return downward }

// Setup only records the world; the cannon has no bodies until it fires.
func (c *Cannon) Setup(w *physics.World) error {
	c.attach(w)
	c.fired = 0
	return nil
}

func (c *Cannon) Angle() float64 { return c.angle }

// AdjustAngle moves the barrel by delta degrees and clamps the result.
func (c *Cannon) AdjustAngle(delta float64) float64 {
	c.angle = units.Clamp(c.angle+delta, -MaxCannonAngle, MaxCannonAngle)
	return c.angle
}

// Fire spawns a projectile at the muzzle and kicks it along the barrel.
// Projectiles are never removed.
func (c *Cannon) Fire() (*scene.Entity, error) {
	e, err := c.spawn("projectile", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: cannonMuzzle,
		Shape:    physics.Circle(projectileRadius),
		Material: physics.Material{Density: 1, Friction: physics.DefaultFriction, Restitution: 0.6},
	}, projectileFill)
	if err != nil {
		return nil, err
	}
	rad := units.Radians(c.angle)
	e.Body.ApplyImpulse(mgl64.Vec2{c.Impulse * math.Cos(rad), c.Impulse * math.Sin(rad)})
	c.fired++
	return e, nil
}

// Projectiles returns every fired ball in firing order.
func (c *Cannon) Projectiles() []*scene.Entity { return c.entities.All() }

func (c *Cannon) Fired() int { return c.fired }

func (c *Cannon) HandleEvent(ev render.Event) {
	if ev.Kind != render.EventKeyPressed {
		return
	}
	switch ev.Key {
	case render.KeySpace:
		// a destroyed world is the only failure and the driver is closing then
		_, _ = c.Fire()
	case render.KeyUp:
		c.AdjustAngle(-CannonAngleStep)
	case render.KeyDown:
		c.AdjustAngle(CannonAngleStep)
	}
}

// Barrel is the cannon's draw command at the current angle.
func (c *Cannon) Barrel() render.Rect {
	return render.Rect{
		Position:    cannonPivot,
		Size:        barrelSize,
		Origin:      mgl64.Vec2{0, barrelSize[1] / 2},
		RotationDeg: c.angle,
		Fill:        render.White,
	}
}

func (c *Cannon) DrawOverlay(canvas render.Canvas) {
	canvas.DrawRect(c.Barrel())
}

package scenarios

import (
	"github.com/san-kum/rigidlab/internal/physics"
)

var obstacleMaterial = physics.Material{Friction: physics.DefaultFriction, Restitution: 0.2}

// Obstacles is Bounce with three static obstacles. After every step the
// ball's velocity is rescaled so its speed stays at TargetSpeed.
type Obstacles struct {
	Bounce
	TargetSpeed float64
}

func NewObstacles(p Params) *Obstacles {
	p = p.withDefaults()
	return &Obstacles{TargetSpeed: p.TargetSpeed}
}

func (o *Obstacles) Name() string { return "obstacles" }

func (o *Obstacles) Setup(w *physics.World) error {
	o.attach(w)
	if err := o.build(); err != nil {
		return err
	}

	blocks := [][4]float64{
		{300, 300, 40, 40},
		{500, 200, 60, 60},
		{250, 450, 50, 50},
	}
	for _, blk := range blocks {
		if _, err := o.spawn("obstacle", staticBox(blk[0], blk[1], blk[2], blk[3], obstacleMaterial), obstacleFill); err != nil {
			return err
		}
	}
	return nil
}

// AfterStep renormalises the ball velocity. A ball at rest stays at rest.
func (o *Obstacles) AfterStep() {
	if o.ball == nil {
		return
	}
	o.ball.Body.SetVelocity(constantSpeed(o.ball.Body.Velocity(), o.TargetSpeed))
}

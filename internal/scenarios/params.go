package scenarios

import "github.com/san-kum/rigidlab/internal/render"

const (
	DefaultInclineAngle  = 15.0
	DefaultPushForce     = 100.0
	DefaultTargetSpeed   = 10.0
	DefaultCannonAngle   = 45.0
	DefaultCannonImpulse = 12.0

	// MaxCannonAngle bounds the cannon in both directions.
	MaxCannonAngle  = 85.0
	CannonAngleStep = 5.0
)

// Params are the tunable knobs shared by the scenarios. Each scenario reads
// only the fields it cares about.
type Params struct {
	InclineAngle  float64 `yaml:"incline_angle"`
	PushForce     float64 `yaml:"push_force"`
	TargetSpeed   float64 `yaml:"target_speed"`
	CannonAngle   float64 `yaml:"cannon_angle"`
	CannonImpulse float64 `yaml:"cannon_impulse"`
}

func DefaultParams() Params {
	return Params{
		InclineAngle:  DefaultInclineAngle,
		PushForce:     DefaultPushForce,
		TargetSpeed:   DefaultTargetSpeed,
		CannonAngle:   DefaultCannonAngle,
		CannonImpulse: DefaultCannonImpulse,
	}
}

// withDefaults fills zero fields from DefaultParams.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.PushForce == 0 {
		p.PushForce = d.PushForce
	}
	if p.TargetSpeed == 0 {
		p.TargetSpeed = d.TargetSpeed
	}
	if p.CannonImpulse == 0 {
		p.CannonImpulse = d.CannonImpulse
	}
	return p
}

var (
	groundFill     = render.White
	boundaryFill   = render.White
	obstacleFill   = render.Blue
	projectileFill = render.Red
)

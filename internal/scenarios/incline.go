package scenarios

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

// Incline tilts the floor by Angle degrees (rising to the right) and lets a
// frictionless box slide down it.
type Incline struct {
	base
	Angle  float64
	ground *scene.Entity
	box    *scene.Entity
}

func NewIncline(p Params) *Incline {
	angle := p.InclineAngle
	if angle == 0 {
		angle = DefaultInclineAngle
	}
	return &Incline{Angle: angle}
}

func (i *Incline) Name() string        { return "incline" }
func (i *Incline) Gravity() mgl64.Vec2 { return downward }

func (i *Incline) Setup(w *physics.World) error {
	i.attach(w)

	ground, err := i.spawn("ground", physics.BodySpec{
		Kind:     physics.Static,
		Position: mgl64.Vec2{400, 500},
		AngleDeg: -i.Angle,
		Shape:    physics.Box(500, 10),
		Material: physics.Material{Friction: 0.5},
	}, groundFill)
	if err != nil {
		return err
	}
	i.ground = ground

	box, err := i.spawn("box", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{400, 450},
		Shape:    physics.Box(20, 20),
		Material: physics.Material{Density: 1, Friction: 0},
	}, render.Red)
	if err != nil {
		return err
	}
	i.box = box
	return nil
}

func (i *Incline) Ground() *scene.Entity { return i.ground }

func (i *Incline) Box() *scene.Entity { return i.box }

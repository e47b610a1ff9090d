package scenarios

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

// Falling drops a box onto a static ground.
type Falling struct {
	base
	box *scene.Entity
}

func NewFalling(Params) *Falling { return &Falling{} }

func (f *Falling) Name() string        { return "falling" }
func (f *Falling) Gravity() mgl64.Vec2 { return downward }

func (f *Falling) Setup(w *physics.World) error {
	f.attach(w)

	if _, err := f.spawn("ground", physics.BodySpec{
		Kind:     physics.Static,
		Position: mgl64.Vec2{400, 550},
		Shape:    physics.Box(400, 10),
		Material: physics.Material{Friction: physics.DefaultFriction},
	}, render.Green); err != nil {
		return err
	}

	box, err := f.spawn("box", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{400, 300},
		Shape:    physics.Box(30, 30),
		Material: physics.Material{Density: 1, Friction: 0.3},
	}, render.Red)
	if err != nil {
		return err
	}
	f.box = box
	return nil
}

func (f *Falling) Box() *scene.Entity { return f.box }

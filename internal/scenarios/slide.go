package scenarios

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

// Slide is a box on a frictional floor, pushed while Left or Right is held.
type Slide struct {
	base
	PushForce float64
	box       *scene.Entity
}

func NewSlide(p Params) *Slide {
	p = p.withDefaults()
	return &Slide{PushForce: p.PushForce}
}

func (s *Slide) Name() string        { return "slide" }
func (s *Slide) Gravity() mgl64.Vec2 { return downward }

func (s *Slide) Setup(w *physics.World) error {
	s.attach(w)

	if _, err := s.spawn("ground", physics.BodySpec{
		Kind:     physics.Static,
		Position: mgl64.Vec2{400, 500},
		Shape:    physics.Box(500, 10),
		Material: physics.Material{Friction: 0.35},
	}, groundFill); err != nil {
		return err
	}

	box, err := s.spawn("box", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{400, 450},
		Shape:    physics.Box(20, 20),
		Material: physics.Material{Density: 1, Friction: 0.35},
	}, render.Red)
	if err != nil {
		return err
	}
	s.box = box
	return nil
}

// ApplyInput pushes the box horizontally for every held arrow key.
func (s *Slide) ApplyInput(in render.Input) {
	if in.IsKeyDown(render.KeyLeft) {
		s.box.Body.ApplyForce(mgl64.Vec2{-s.PushForce, 0})
	}
	if in.IsKeyDown(render.KeyRight) {
		s.box.Body.ApplyForce(mgl64.Vec2{s.PushForce, 0})
	}
}

func (s *Slide) Box() *scene.Entity { return s.box }

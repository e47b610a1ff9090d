package scenarios

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

var wallMaterial = physics.Material{Friction: physics.DefaultFriction, Restitution: 0.5}

// Bounce keeps a ball inside four walls with gravity switched off.
type Bounce struct {
	base
	ball *scene.Entity
}

func NewBounce(Params) *Bounce { return &Bounce{} }

func (b *Bounce) Name() string        { return "bounce" }
func (b *Bounce) Gravity() mgl64.Vec2 { return mgl64.Vec2{} }

func (b *Bounce) Setup(w *physics.World) error {
	b.attach(w)
	return b.build()
}

func (b *Bounce) build() error {
	walls := [][4]float64{
		{400, 0, 800, 20},
		{400, 600, 800, 20},
		{0, 300, 20, 600},
		{800, 300, 20, 600},
	}
	for _, wall := range walls {
		if err := b.addWall(wall[0], wall[1], wall[2], wall[3]); err != nil {
			return err
		}
	}

	ball, err := b.spawn("ball", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{400, 300},
		Shape:    physics.Circle(10),
		Material: physics.Material{Density: 1, Friction: 0, Restitution: 0.8},
		Velocity: mgl64.Vec2{8, -6},
	}, render.Red)
	if err != nil {
		return err
	}
	b.ball = ball
	return nil
}

// addWall places a static wall centred at (x, y).
func (b *Bounce) addWall(x, y, width, height float64) error {
	_, err := b.spawn("wall", staticBox(x, y, width, height, wallMaterial), boundaryFill)
	return err
}

func (b *Bounce) Ball() *scene.Entity { return b.ball }

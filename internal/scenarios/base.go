package scenarios

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

// base carries the world handle and the append-only entity list every
// scenario needs.
type base struct {
	world    *physics.World
	entities scene.List
}

func (b *base) attach(w *physics.World) {
	b.world = w
	b.entities = scene.List{}
}

func (b *base) spawn(label string, spec physics.BodySpec, fill render.Color) (*scene.Entity, error) {
	e, err := scene.Spawn(b.world, label, spec, fill)
	if err != nil {
		return nil, err
	}
	b.entities.Append(e)
	return e, nil
}

func (b *base) Entities() []*scene.Entity { return b.entities.All() }

// staticBox builds a static rectangle centred at (x, y) with full extents
// width x height, the way the exercises lay out walls and obstacles.
func staticBox(x, y, width, height float64, m physics.Material) physics.BodySpec {
	return physics.BodySpec{
		Kind:     physics.Static,
		Position: mgl64.Vec2{x, y},
		Shape:    physics.Box(width/2, height/2),
		Material: m,
	}
}

var downward = mgl64.Vec2{0, physics.StandardGravity}

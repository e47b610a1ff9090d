package loop

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

// Scenario supplies the bodies of one exercise.
type Scenario interface {
	Name() string
	// Gravity is the world gravity in m/s², +Y down.
	Gravity() mgl64.Vec2
	Setup(w *physics.World) error
	// Entities returns everything to draw, in draw order.
	Entities() []*scene.Entity
}

// EventHandler receives discrete events (key presses) drained at the start
// of each iteration.
type EventHandler interface {
	HandleEvent(ev render.Event)
}

// InputHandler applies continuous, held-key forces before the step.
type InputHandler interface {
	ApplyInput(in render.Input)
}

// PostStepper adjusts bodies right after the world steps.
type PostStepper interface {
	AfterStep()
}

// Overlay draws visuals that are not bodies, after the entities.
type Overlay interface {
	DrawOverlay(c render.Canvas)
}

// Frame is what observers see after each presented frame.
type Frame struct {
	Index    int
	Time     float64
	Entities []*scene.Entity
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

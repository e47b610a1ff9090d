// Package physics wraps the Box2D port behind a pixel-space API.
//
// The engine works in meters; callers work in pixels. Every position passed
// to [World.CreateBody] is divided by [units.PixelsPerMeter] and every
// position returned by [Body.Position] is multiplied by it. Velocities,
// forces and impulses stay in engine units because the exercises specify
// them that way.
//
// Shapes are a tagged variant ([Shape]) kept alongside each body so the
// renderer never has to inspect engine fixtures:
//
//	w, _ := physics.NewWorld(physics.DefaultWorldConfig())
//	ball, _ := w.CreateBody(physics.BodySpec{
//	    Kind:     physics.Dynamic,
//	    Position: mgl64.Vec2{400, 300},
//	    Shape:    physics.Circle(10),
//	    Material: physics.Material{Density: 1, Restitution: 0.8},
//	})
//	w.Step()
//	_ = ball.Position()
package physics

// Package scenarios holds the six rigid-body exercises.
//
// Each scenario is a struct that owns its own mutable state (spawned
// projectiles, cannon angle) and builds its bodies in Setup. Scenarios plug
// into the loop driver through [loop.Scenario] and the optional hooks the
// driver detects by type assertion:
//
//	falling    a box dropping onto static ground
//	bounce     a ball bouncing between four walls without gravity
//	obstacles  bounce plus three obstacles, ball speed held constant
//	slide      a box pushed with the arrow keys on a frictional floor
//	incline    a frictionless box sliding down a tilted floor
//	cannon     a cannon firing balls with Space, aimed with Up/Down
//
// Lengths are given in pixels; the physics package converts them to meters.
package scenarios

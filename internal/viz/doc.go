// Package viz shows a running scenario in the terminal.
//
// The [Model] is a Bubble Tea program that steps a [loop.Driver] once per
// tick. The driver draws into a [Screen], a render.Window whose pixels are
// braille dots on a [Canvas], so the same scenarios run unchanged in a
// raylib window, headless, or here.
//
// # Key Bindings
//
//	Arrows, Space - forwarded to the scenario (push, aim, fire)
//	P             - Pause/Resume
//	T             - Cycle color themes
//	Q, Esc        - Quit
//
// Terminals report key presses but not releases, so a pressed arrow counts
// as held for a few frames.
package viz

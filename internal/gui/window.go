package gui

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/view"
)

var ErrWindowInit = errors.New("gui: window init failed")

// Options describe the window. A zero View means the fixed 0,0,Width,Height
// rectangle.
type Options struct {
	Width   int
	Height  int
	Title   string
	FPS     int
	ShowFPS bool
	View    view.View
}

func DefaultOptions(title string) Options {
	return Options{Width: 800, Height: 600, Title: title, FPS: 60}
}

// keyOrder fixes the order key presses are reported in within one frame.
var keyOrder = []struct {
	key  render.Key
	code int32
}{
	{render.KeyLeft, rl.KeyLeft},
	{render.KeyRight, rl.KeyRight},
	{render.KeyUp, rl.KeyUp},
	{render.KeyDown, rl.KeyDown},
	{render.KeySpace, rl.KeySpace},
}

func keyCode(k render.Key) (int32, bool) {
	for _, m := range keyOrder {
		if m.key == k {
			return m.code, true
		}
	}
	return 0, false
}

// Window is a raylib window implementing render.Window. raylib keeps global
// state, so at most one Window may be open at a time and it must be used from
// the goroutine that opened it.
type Window struct {
	opts    Options
	camera  rl.Camera2D
	drawing bool
	closed  bool
}

// Open creates the window, applies the frame-rate limit and fixes the camera.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrWindowInit, opts.Width, opts.Height)
	}
	if opts.View == (view.View{}) {
		opts.View = view.Fixed(float64(opts.Width), float64(opts.Height))
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: %q", ErrWindowInit, opts.Title)
	}
	if opts.FPS > 0 {
		rl.SetTargetFPS(int32(opts.FPS))
	}
	// escape must not close the window; only the close button does
	rl.SetExitKey(0)

	return &Window{opts: opts, camera: camera(opts.View)}, nil
}

func camera(v view.View) rl.Camera2D {
	return rl.NewCamera2D(
		rl.NewVector2(0, 0),
		rl.NewVector2(float32(v.X), float32(v.Y)),
		0,
		float32(v.Zoom()),
	)
}

func (w *Window) PollEvents() []render.Event {
	if w.closed {
		return []render.Event{render.CloseEvent()}
	}
	var events []render.Event
	if rl.WindowShouldClose() {
		events = append(events, render.CloseEvent())
	}
	for _, m := range keyOrder {
		if rl.IsKeyPressed(m.code) {
			events = append(events, render.KeyPressed(m.key))
		}
	}
	return events
}

func (w *Window) IsKeyDown(k render.Key) bool {
	code, ok := keyCode(k)
	return ok && !w.closed && rl.IsKeyDown(code)
}

func (w *Window) begin() {
	if w.drawing {
		return
	}
	rl.BeginDrawing()
	rl.BeginMode2D(w.camera)
	w.drawing = true
}

func (w *Window) Clear(c render.Color) {
	w.begin()
	rl.ClearBackground(toColor(c))
}

func (w *Window) DrawRect(r render.Rect) {
	w.begin()
	rl.DrawRectanglePro(
		rl.NewRectangle(float32(r.Position[0]), float32(r.Position[1]), float32(r.Size[0]), float32(r.Size[1])),
		rl.NewVector2(float32(r.Origin[0]), float32(r.Origin[1])),
		float32(r.RotationDeg),
		toColor(r.Fill),
	)
}

func (w *Window) DrawCircle(c render.Circle) {
	w.begin()
	rl.DrawCircleV(rl.NewVector2(float32(c.Center[0]), float32(c.Center[1])), float32(c.Radius), toColor(c.Fill))
}

// Present ends the frame; raylib blocks here to hold the target frame rate.
func (w *Window) Present() {
	w.begin()
	rl.EndMode2D()
	if w.opts.ShowFPS {
		rl.DrawFPS(10, 10)
	}
	rl.EndDrawing()
	w.drawing = false
}

func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.drawing {
		rl.EndMode2D()
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
	return nil
}

func toColor(c render.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

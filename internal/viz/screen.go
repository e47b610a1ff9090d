package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/view"
)

// holdFrames is how long a terminal key press counts as held. Terminals
// report presses but never releases.
const holdFrames = 8

// Screen is a render.Window backed by a braille Canvas. Key presses are
// queued by the bubbletea model and drained by the driver.
type Screen struct {
	canvas  *Canvas
	view    view.View
	pending []render.Event
	held    map[render.Key]int
	tick    int
	frames  int
	closed  bool
}

// NewScreen maps the world rectangle v onto a cols x rows character canvas.
func NewScreen(cols, rows int, v view.View) *Screen {
	return &Screen{
		canvas: NewCanvas(cols, rows),
		view:   view.New(v.X, v.Y, v.Width, v.Height, float64(cols*2), float64(rows*4)),
		held:   make(map[render.Key]int),
	}
}

// Press queues a key press and treats the key as held for a few frames.
func (s *Screen) Press(k render.Key) {
	s.pending = append(s.pending, render.KeyPressed(k))
	s.held[k] = s.tick + holdFrames
}

func (s *Screen) RequestClose() {
	s.pending = append(s.pending, render.CloseEvent())
}

func (s *Screen) PollEvents() []render.Event {
	s.tick++
	events := s.pending
	s.pending = nil
	if s.closed {
		events = append(events, render.CloseEvent())
	}
	return events
}

func (s *Screen) IsKeyDown(k render.Key) bool {
	return s.held[k] >= s.tick
}

func (s *Screen) Clear(render.Color) { s.canvas.Clear() }

func (s *Screen) dot(p mgl64.Vec2) (int, int) {
	q := s.view.Project(p)
	return int(math.Round(q[0])), int(math.Round(q[1]))
}

func (s *Screen) DrawRect(r render.Rect) {
	corners := r.Corners()
	pts := make([][2]int, len(corners))
	for i, c := range corners {
		x, y := s.dot(c)
		pts[i] = [2]int{x, y}
	}
	s.canvas.DrawPolygon(pts)
}

func (s *Screen) DrawCircle(c render.Circle) {
	x, y := s.dot(c.Center)
	r := int(math.Round(c.Radius * s.view.Zoom()))
	s.canvas.FillCircle(x, y, r)
}

func (s *Screen) Present() { s.frames++ }

func (s *Screen) Close() error {
	s.closed = true
	return nil
}

func (s *Screen) Canvas() *Canvas { return s.canvas }

func (s *Screen) String() string { return s.canvas.String() }

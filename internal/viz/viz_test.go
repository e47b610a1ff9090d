package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/metrics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"github.com/san-kum/rigidlab/internal/view"
)

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 2)

	if !c.Lit(10, 10) || !c.Lit(12, 10) || !c.Lit(10, 8) {
		t.Error("expected dots inside the radius to be lit")
	}
	if c.Lit(12, 12) {
		t.Error("expected corner outside the radius to stay dark")
	}

	c.Clear()
	if c.Lit(10, 10) {
		t.Error("expected clear to reset dots")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 1)
	if got := c.String(); got != "\u2800\u2800\n" {
		t.Errorf("expected blank cells, got %q", got)
	}

	c.Set(1, 0)
	c.Set(2, 3)
	c.Set(40, 40)
	if got := c.String(); got != "\u2808\u2840\n" {
		t.Errorf("expected two dots, got %q", got)
	}
}

func TestCanvasPolygon(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon([][2]int{{1, 1}, {8, 1}, {8, 6}, {1, 6}})

	for _, p := range [][2]int{{1, 1}, {5, 1}, {8, 3}, {1, 6}} {
		if !c.Lit(p[0], p[1]) {
			t.Errorf("expected edge dot %v lit", p)
		}
	}
	if c.Lit(4, 3) {
		t.Error("expected interior to stay dark")
	}
}

func TestScreenProjection(t *testing.T) {
	s := NewScreen(100, 30, view.Fixed(800, 600))
	s.Clear(render.Black)
	s.DrawCircle(render.Circle{Center: mgl64.Vec2{400, 300}, Radius: 10})

	// 800x600 px onto 200x120 dots
	if !s.Canvas().Lit(100, 60) {
		t.Error("expected the centre dot lit")
	}
	if s.Canvas().Lit(0, 0) {
		t.Error("expected the corner dark")
	}
}

func TestScreenHeldKeys(t *testing.T) {
	s := NewScreen(10, 5, view.Fixed(800, 600))
	s.Press(render.KeyRight)

	events := s.PollEvents()
	if len(events) != 1 || events[0] != render.KeyPressed(render.KeyRight) {
		t.Errorf("expected right press, got %v", events)
	}

	held := 0
	for i := 0; i < 3*holdFrames; i++ {
		if s.IsKeyDown(render.KeyRight) {
			held++
		}
		s.PollEvents()
	}
	if held != holdFrames {
		t.Errorf("expected key held for %d frames, got %d", holdFrames, held)
	}
}

func newModel(t *testing.T, sc loop.Scenario) Model {
	t.Helper()
	m, err := New(sc, loop.DefaultConfig(), DefaultOptions("test"), metrics.Set{metrics.NewEntityCount()})
	if err != nil {
		t.Fatalf("new model failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestModelTickSteps(t *testing.T) {
	m := newModel(t, scenarios.NewBounce(scenarios.DefaultParams()))

	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	m = next.(Model)
	if m.Driver().Frame() != 1 {
		t.Errorf("expected 1 frame, got %d", m.Driver().Frame())
	}

	out := m.View()
	if !strings.Contains(out, "TEST") || !strings.Contains(out, "entities") {
		t.Errorf("expected title and metrics in view, got %q", out)
	}
}

func TestModelPause(t *testing.T) {
	m := newModel(t, scenarios.NewBounce(scenarios.DefaultParams()))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	next, _ = next.Update(TickMsg{})
	if next.(Model).Driver().Frame() != 0 {
		t.Error("expected no steps while paused")
	}
}

func TestModelForwardsKeys(t *testing.T) {
	sc := scenarios.NewCannon(scenarios.DefaultParams())
	m := newModel(t, sc)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	next.Update(TickMsg{})

	if len(sc.Projectiles()) != 1 {
		t.Errorf("expected 1 projectile, got %d", len(sc.Projectiles()))
	}
	if sc.Angle() != 40 {
		t.Errorf("expected angle 40, got %f", sc.Angle())
	}
	if !strings.Contains(next.View(), "Angle") {
		t.Error("expected the angle in the stats panel")
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, scenarios.NewFalling(scenarios.DefaultParams()))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).Driver().State() != loop.Closed {
		t.Error("expected driver closed")
	}
}

func TestThemeIndex(t *testing.T) {
	if ThemeIndex("blueprint") != 2 {
		t.Errorf("expected blueprint at 2, got %d", ThemeIndex("ocean"))
	}
	if ThemeIndex("nope") != 0 {
		t.Error("expected unknown theme to fall back to 0")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected a name per theme")
	}
}

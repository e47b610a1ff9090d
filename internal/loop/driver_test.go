package loop

import (
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

type stubWindow struct {
	calls   []string
	batches [][]render.Event
	held    map[render.Key]bool
	closes  int
	cleared []render.Color
	drawn   int
}

func (w *stubWindow) PollEvents() []render.Event {
	w.calls = append(w.calls, "poll")
	if len(w.batches) == 0 {
		return nil
	}
	b := w.batches[0]
	w.batches = w.batches[1:]
	return b
}

func (w *stubWindow) IsKeyDown(k render.Key) bool { return w.held[k] }

func (w *stubWindow) Clear(c render.Color) {
	w.calls = append(w.calls, "clear")
	w.cleared = append(w.cleared, c)
}

func (w *stubWindow) DrawRect(r render.Rect) {
	w.calls = append(w.calls, "draw")
	w.drawn++
}

func (w *stubWindow) DrawCircle(c render.Circle) {
	w.calls = append(w.calls, "draw")
	w.drawn++
}

func (w *stubWindow) Present() { w.calls = append(w.calls, "present") }

func (w *stubWindow) Close() error {
	w.closes++
	return nil
}

type stubScenario struct {
	win      *stubWindow
	world    *physics.World
	entities []*scene.Entity
	events   []render.Event
	setupErr error
	gravity  mgl64.Vec2
}

func (s *stubScenario) Name() string        { return "stub" }
func (s *stubScenario) Gravity() mgl64.Vec2 { return s.gravity }

func (s *stubScenario) Setup(w *physics.World) error {
	if s.setupErr != nil {
		return s.setupErr
	}
	s.world = w
	e, err := scene.Spawn(w, "ball", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{400, 300},
		Shape:    physics.Circle(10),
		Material: physics.Material{Density: 1},
	}, render.Red)
	if err != nil {
		return err
	}
	s.entities = append(s.entities, e)
	return nil
}

func (s *stubScenario) Entities() []*scene.Entity { return s.entities }

func (s *stubScenario) HandleEvent(ev render.Event) {
	s.win.calls = append(s.win.calls, "event")
	s.events = append(s.events, ev)
}

func (s *stubScenario) ApplyInput(in render.Input) {
	s.win.calls = append(s.win.calls, "input")
	if in.IsKeyDown(render.KeyRight) {
		s.entities[0].Body.ApplyForce(mgl64.Vec2{100, 0})
	}
}

func (s *stubScenario) AfterStep() {
	s.win.calls = append(s.win.calls, "step")
}

func (s *stubScenario) DrawOverlay(c render.Canvas) {
	s.win.calls = append(s.win.calls, "overlay")
}

func newDriver(t *testing.T, win *stubWindow) (*Driver, *stubScenario) {
	t.Helper()
	sc := &stubScenario{win: win}
	d, err := New(win, sc, DefaultConfig())
	if err != nil {
		t.Fatalf("new driver failed: %v", err)
	}
	return d, sc
}

func TestStepOrder(t *testing.T) {
	win := &stubWindow{batches: [][]render.Event{{render.KeyPressed(render.KeySpace)}}}
	d, _ := newDriver(t, win)

	if state := d.Step(); state != Running {
		t.Fatalf("expected running, got %s", state)
	}

	expected := []string{"poll", "event", "input", "step", "clear", "draw", "overlay", "present"}
	if len(win.calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, win.calls)
	}
	for i := range expected {
		if win.calls[i] != expected[i] {
			t.Errorf("call %d: expected %s, got %s", i, expected[i], win.calls[i])
		}
	}
	if d.World().Steps() != 1 {
		t.Errorf("expected 1 world step, got %d", d.World().Steps())
	}
	if d.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", d.Frame())
	}
	if win.cleared[0] != render.Black {
		t.Errorf("expected black clear, got %v", win.cleared[0])
	}
}

func TestCloseEventEndsRun(t *testing.T) {
	win := &stubWindow{batches: [][]render.Event{
		nil,
		{render.CloseEvent(), render.KeyPressed(render.KeySpace)},
	}}
	d, sc := newDriver(t, win)

	if d.Step() != Running {
		t.Fatal("expected first frame to run")
	}
	if d.Step() != Closed {
		t.Fatal("expected close event to close the driver")
	}
	if len(sc.events) != 0 {
		t.Errorf("expected events after close to be dropped, got %v", sc.events)
	}
	if d.World().Steps() != 1 {
		t.Errorf("expected no step after close, got %d steps", d.World().Steps())
	}
	if d.Step() != Closed {
		t.Error("closed is terminal")
	}
}

func TestRunUntilClose(t *testing.T) {
	batches := make([][]render.Event, 10)
	batches[9] = []render.Event{render.CloseEvent()}
	win := &stubWindow{batches: batches}
	d, _ := newDriver(t, win)

	var frames []int
	d.AddObserver(ObserverFunc(func(f Frame) {
		frames = append(frames, f.Index)
		if len(f.Entities) != 1 {
			t.Errorf("expected 1 entity, got %d", len(f.Entities))
		}
	}))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(frames) != 9 {
		t.Errorf("expected 9 frames, got %d", len(frames))
	}
	if frames[len(frames)-1] != 9 {
		t.Errorf("expected last frame 9, got %d", frames[len(frames)-1])
	}
}

func TestRunCanceled(t *testing.T) {
	win := &stubWindow{}
	d, _ := newDriver(t, win)

	ctx, cancel := context.WithCancel(context.Background())
	d.AddObserver(ObserverFunc(func(f Frame) {
		if f.Index == 3 {
			cancel()
		}
	}))

	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if d.State() != Closed {
		t.Errorf("expected closed, got %s", d.State())
	}
}

func TestHeldInputAppliesForce(t *testing.T) {
	win := &stubWindow{held: map[render.Key]bool{render.KeyRight: true}}
	d, sc := newDriver(t, win)

	d.Step()

	if sc.entities[0].Body.Velocity()[0] <= 0 {
		t.Errorf("expected rightward velocity, got %v", sc.entities[0].Body.Velocity())
	}
}

func TestNewNilWindow(t *testing.T) {
	_, err := New(nil, &stubScenario{}, DefaultConfig())
	if !errors.Is(err, ErrWindowUnavailable) {
		t.Errorf("expected ErrWindowUnavailable, got %v", err)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	win := &stubWindow{}
	cfg := DefaultConfig()
	cfg.Timestep = 0

	_, err := New(win, &stubScenario{win: win}, cfg)
	if !errors.Is(err, ErrWorldUnavailable) {
		t.Errorf("expected ErrWorldUnavailable, got %v", err)
	}
	if !errors.Is(err, physics.ErrInvalidWorldConfig) {
		t.Errorf("expected wrapped ErrInvalidWorldConfig, got %v", err)
	}
	if win.closes != 1 {
		t.Errorf("expected window closed once, got %d", win.closes)
	}
}

func TestNewSetupFailure(t *testing.T) {
	win := &stubWindow{}
	boom := errors.New("boom")

	_, err := New(win, &stubScenario{win: win, setupErr: boom}, DefaultConfig())
	if !errors.Is(err, ErrSetupFailed) {
		t.Errorf("expected ErrSetupFailed, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}

	var se *StartupError
	if !errors.As(err, &se) || se.Scenario != "stub" {
		t.Errorf("expected StartupError for stub, got %v", err)
	}
	if win.closes != 1 {
		t.Errorf("expected window closed once, got %d", win.closes)
	}
}

func TestCloseReleasesOnce(t *testing.T) {
	win := &stubWindow{}
	d, _ := newDriver(t, win)

	if err := d.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if win.closes != 1 {
		t.Errorf("expected window closed once, got %d", win.closes)
	}
	if !d.World().Destroyed() {
		t.Error("expected world destroyed")
	}
	if d.State() != Closed {
		t.Error("expected closed state")
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Closed.String() != "closed" {
		t.Error("unexpected state names")
	}
}

package loop

import (
	"context"
	"fmt"

	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
)

type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "closed"
}

// Config fixes the frame budget and solver quality for a run.
type Config struct {
	Timestep           float64
	VelocityIterations int
	PositionIterations int
	Background         render.Color
}

func DefaultConfig() Config {
	return Config{
		Timestep:           physics.DefaultTimestep,
		VelocityIterations: physics.DefaultVelocityIterations,
		PositionIterations: physics.DefaultPositionIterations,
		Background:         render.Black,
	}
}

// Driver owns a window and a physics world and runs the fixed-timestep
// simulate-then-render loop for one scenario. It is single-threaded; nothing
// else may touch the window or world while it is alive.
type Driver struct {
	win       render.Window
	world     *physics.World
	scenario  Scenario
	cfg       Config
	state     State
	frame     int
	observers []Observer
	released  bool
}

// New takes ownership of win, creates the world and runs scenario setup.
// On any failure everything acquired so far, including win, is released and
// a *StartupError is returned.
func New(win render.Window, sc Scenario, cfg Config) (*Driver, error) {
	name := "scenario"
	if sc != nil {
		name = sc.Name()
	}
	if win == nil {
		return nil, &StartupError{Scenario: name, Stage: ErrWindowUnavailable}
	}
	if sc == nil {
		_ = win.Close()
		return nil, &StartupError{Scenario: name, Stage: ErrSetupFailed, Wrapped: fmt.Errorf("nil scenario")}
	}

	world, err := physics.NewWorld(physics.WorldConfig{
		Gravity:            sc.Gravity(),
		Timestep:           cfg.Timestep,
		VelocityIterations: cfg.VelocityIterations,
		PositionIterations: cfg.PositionIterations,
	})
	if err != nil {
		_ = win.Close()
		return nil, &StartupError{Scenario: name, Stage: ErrWorldUnavailable, Wrapped: err}
	}

	if err := sc.Setup(world); err != nil {
		world.Destroy()
		_ = win.Close()
		return nil, &StartupError{Scenario: name, Stage: ErrSetupFailed, Wrapped: err}
	}

	return &Driver{
		win:      win,
		world:    world,
		scenario: sc,
		cfg:      cfg,
		state:    Running,
	}, nil
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) State() State { return d.state }

// Frame returns the number of completed iterations.
func (d *Driver) Frame() int { return d.frame }

func (d *Driver) World() *physics.World { return d.world }

func (d *Driver) Scenario() Scenario { return d.scenario }

// Step runs one iteration: drain events, apply held input, step the world,
// clear, draw, present. A close event moves the driver to Closed and the
// rest of the iteration is skipped.
func (d *Driver) Step() State {
	if d.state == Closed {
		return Closed
	}

	handler, _ := d.scenario.(EventHandler)
	for _, ev := range d.win.PollEvents() {
		if ev.Kind == render.EventClose {
			d.state = Closed
			continue
		}
		if handler != nil && d.state == Running {
			handler.HandleEvent(ev)
		}
	}
	if d.state == Closed {
		return Closed
	}

	if ih, ok := d.scenario.(InputHandler); ok {
		ih.ApplyInput(d.win)
	}

	d.world.Step()
	if ps, ok := d.scenario.(PostStepper); ok {
		ps.AfterStep()
	}

	d.win.Clear(d.background())
	entities := d.scenario.Entities()
	scene.DrawAll(d.win, entities)
	if ov, ok := d.scenario.(Overlay); ok {
		ov.DrawOverlay(d.win)
	}
	d.win.Present()

	d.frame++
	if len(d.observers) > 0 {
		f := Frame{Index: d.frame, Time: d.world.Time(), Entities: entities}
		for _, o := range d.observers {
			o.OnFrame(f)
		}
	}
	return d.state
}

// Run steps until a close event arrives or ctx is canceled.
func (d *Driver) Run(ctx context.Context) error {
	for d.state == Running {
		select {
		case <-ctx.Done():
			d.state = Closed
			return ctx.Err()
		default:
		}
		d.Step()
	}
	return nil
}

// RequestClose moves the driver to Closed without waiting for a window event.
func (d *Driver) RequestClose() { d.state = Closed }

// Close releases the world and the window. It is safe to call more than once.
func (d *Driver) Close() error {
	d.state = Closed
	if d.released {
		return nil
	}
	d.released = true
	d.world.Destroy()
	return d.win.Close()
}

func (d *Driver) background() render.Color {
	if d.cfg.Background == (render.Color{}) {
		return render.Black
	}
	return d.cfg.Background
}

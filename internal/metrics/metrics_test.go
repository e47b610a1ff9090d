package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/rigidlab/internal/headless"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"github.com/san-kum/rigidlab/internal/scene"
)

func ballFrame(t *testing.T, v mgl64.Vec2) loop.Frame {
	t.Helper()
	cfg := physics.DefaultWorldConfig()
	cfg.Gravity = mgl64.Vec2{}
	w, err := physics.NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Destroy)

	ball, err := scene.Spawn(w, "ball", physics.BodySpec{
		Kind:     physics.Dynamic,
		Position: mgl64.Vec2{100, 100},
		Shape:    physics.Circle(15),
		Material: physics.Material{Density: 1},
		Velocity: v,
	}, render.Red)
	if err != nil {
		t.Fatal(err)
	}
	ground, err := scene.Spawn(w, "ground", physics.BodySpec{
		Kind:     physics.Static,
		Position: mgl64.Vec2{100, 500},
		Shape:    physics.Box(100, 10),
	}, render.White)
	if err != nil {
		t.Fatal(err)
	}
	return loop.Frame{Index: 1, Entities: []*scene.Entity{ball, ground}}
}

func TestMeanSpeedIgnoresStaticBodies(t *testing.T) {
	m := NewMeanSpeed()
	m.Observe(ballFrame(t, mgl64.Vec2{3, 4}))

	if math.Abs(m.Value()-5) > 1e-9 {
		t.Errorf("expected mean speed 5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestKineticEnergy(t *testing.T) {
	f := ballFrame(t, mgl64.Vec2{2, 0})
	mass := f.Entities[0].Body.Mass()

	k := NewKineticEnergy()
	k.Observe(f)
	expected := 0.5 * mass * 4
	if math.Abs(k.Value()-expected) > 1e-9 {
		t.Errorf("expected %f, got %f", expected, k.Value())
	}
}

func TestEnergyDrift(t *testing.T) {
	f := ballFrame(t, mgl64.Vec2{2, 0})
	d := NewEnergyDrift()
	d.Observe(f)

	f.Entities[0].Body.SetVelocity(mgl64.Vec2{1, 0})
	d.Observe(f)

	if math.Abs(d.Value()-0.75) > 1e-9 {
		t.Errorf("expected drift 0.75, got %f", d.Value())
	}
}

func TestSpeedDeviation(t *testing.T) {
	f := ballFrame(t, mgl64.Vec2{6, 8})
	s := NewSpeedDeviation("ball", 12)
	s.Observe(f)
	if math.Abs(s.Value()-2) > 1e-9 {
		t.Errorf("expected deviation 2, got %f", s.Value())
	}
}

func TestStabilityAndCount(t *testing.T) {
	f := ballFrame(t, mgl64.Vec2{1, 1})
	set := Set{NewStability(), NewEntityCount()}
	set.OnFrame(f)

	values := set.Values()
	if values["stability"] != 1 {
		t.Errorf("expected stability 1, got %f", values["stability"])
	}
	if values["entities"] != 2 {
		t.Errorf("expected 2 entities, got %f", values["entities"])
	}

	names := set.Names()
	if names[0] != "entities" || names[1] != "stability" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestDefaultOnObstaclesRun(t *testing.T) {
	p := scenarios.DefaultParams()
	set := Default("obstacles", p.TargetSpeed)

	_, err := headless.Run(context.Background(), scenarios.NewObstacles(p), headless.Script{MaxFrames: 120}, loop.DefaultConfig(), set)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	values := set.Values()
	if values["speed_deviation"] > 1e-9 {
		t.Errorf("expected speed held at target, deviation %f", values["speed_deviation"])
	}
	if math.Abs(values["mean_speed"]-10) > 1e-9 {
		t.Errorf("expected mean speed 10, got %f", values["mean_speed"])
	}
	if values["entities"] != 8 {
		t.Errorf("expected 8 entities, got %f", values["entities"])
	}
}

func TestReachTracksDynamicBodies(t *testing.T) {
	r := NewReach()
	if r.Value() != 0 {
		t.Errorf("expected 0 before any frame, got %f", r.Value())
	}

	r.Observe(ballFrame(t, mgl64.Vec2{}))
	if math.Abs(r.Value()-100) > 1e-6 {
		t.Errorf("expected reach 100, got %f", r.Value())
	}
}

func TestDefaultOnCannonRun(t *testing.T) {
	set := Default("cannon", 0)
	var script headless.Script
	script.MaxFrames = 60
	script.Press(1, render.KeySpace)

	_, err := headless.Run(context.Background(), scenarios.NewCannon(scenarios.DefaultParams()), script, loop.DefaultConfig(), set)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if reach := set.Values()["max_x"]; reach <= 50 {
		t.Errorf("expected the projectile to travel right of the muzzle, got %f", reach)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario           = "bounce"
	DefaultWidth              = 800
	DefaultHeight             = 600
	DefaultFPS                = 60
	DefaultVelocityIterations = physics.DefaultVelocityIterations
	DefaultPositionIterations = physics.DefaultPositionIterations
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Scenario string           `yaml:"scenario"`
	Window   WindowConfig     `yaml:"window"`
	Physics  PhysicsConfig    `yaml:"physics"`
	Params   scenarios.Params `yaml:"params"`
	Record   RecordConfig     `yaml:"record"`
}

type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	FPS     int    `yaml:"fps"`
	ShowFPS bool   `yaml:"show_fps"`
}

type PhysicsConfig struct {
	Timestep           float64 `yaml:"timestep"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

// RecordConfig controls headless runs started from the CLI.
type RecordConfig struct {
	Frames  int    `yaml:"frames"`
	DataDir string `yaml:"data_dir"`
	DB      string `yaml:"db"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: DefaultScenario,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Physics: PhysicsConfig{
			Timestep:           physics.DefaultTimestep,
			VelocityIterations: DefaultVelocityIterations,
			PositionIterations: DefaultPositionIterations,
		},
		Params: scenarios.DefaultParams(),
		Record: RecordConfig{
			Frames:  600,
			DataDir: "./data",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := scenarios.New(c.Scenario, c.Params); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Window.FPS)
	}
	if c.Physics.Timestep <= 0 {
		return fmt.Errorf("%w: timestep %f", ErrInvalidConfig, c.Physics.Timestep)
	}
	if c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0 {
		return fmt.Errorf("%w: iterations %d/%d", ErrInvalidConfig, c.Physics.VelocityIterations, c.Physics.PositionIterations)
	}
	if c.Params.CannonAngle < -scenarios.MaxCannonAngle || c.Params.CannonAngle > scenarios.MaxCannonAngle {
		return fmt.Errorf("%w: cannon angle %f", ErrInvalidConfig, c.Params.CannonAngle)
	}
	return nil
}

// WindowTitle falls back to the scenario's own title.
func (c *Config) WindowTitle() string {
	if c.Window.Title != "" {
		return c.Window.Title
	}
	return scenarios.Title(c.Scenario)
}

func (c *Config) LoopConfig() loop.Config {
	lc := loop.DefaultConfig()
	lc.Timestep = c.Physics.Timestep
	lc.VelocityIterations = c.Physics.VelocityIterations
	lc.PositionIterations = c.Physics.PositionIterations
	return lc
}

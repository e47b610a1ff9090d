package config

import (
	"sort"

	"github.com/san-kum/rigidlab/internal/scenarios"
)

func preset(scenario string, mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Scenario = scenario
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

var Presets = map[string]map[string]*Config{
	"falling": {
		"classic": preset("falling", nil),
		"slowmo": preset("falling", func(c *Config) {
			c.Physics.Timestep = 1.0 / 240.0
		}),
	},
	"bounce": {
		"classic": preset("bounce", nil),
		"coarse": preset("bounce", func(c *Config) {
			c.Physics.VelocityIterations = 2
			c.Physics.PositionIterations = 1
		}),
	},
	"obstacles": {
		"classic": preset("obstacles", nil),
		"fast": preset("obstacles", func(c *Config) {
			c.Params.TargetSpeed = 20
		}),
		"crawl": preset("obstacles", func(c *Config) {
			c.Params.TargetSpeed = 3
		}),
	},
	"slide": {
		"classic": preset("slide", nil),
		"strong": preset("slide", func(c *Config) {
			c.Params.PushForce = 250
		}),
		"gentle": preset("slide", func(c *Config) {
			c.Params.PushForce = 20
		}),
	},
	"incline": {
		"classic": preset("incline", nil),
		"steep": preset("incline", func(c *Config) {
			c.Params.InclineAngle = 35
		}),
		"shallow": preset("incline", func(c *Config) {
			c.Params.InclineAngle = 5
		}),
	},
	"cannon": {
		"classic": preset("cannon", nil),
		"flat": preset("cannon", func(c *Config) {
			c.Params.CannonAngle = -5
		}),
		"mortar": preset("cannon", func(c *Config) {
			c.Params.CannonAngle = -scenarios.MaxCannonAngle
			c.Params.CannonImpulse = 20
		}),
	},
}

func GetPreset(scenario, name string) *Config {
	byScenario, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := byScenario[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets(scenario string) []string {
	byScenario, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byScenario))
	for name := range byScenario {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

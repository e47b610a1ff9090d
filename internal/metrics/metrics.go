// Package metrics summarises a run frame by frame. Every metric is a
// loop.Observer through Set.
package metrics

import (
	"sort"

	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/scene"
)

type Metric interface {
	Name() string
	Observe(f loop.Frame)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics.
type Set []Metric

func (s Set) OnFrame(f loop.Frame) {
	for _, m := range s {
		m.Observe(f)
	}
}

func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns metric names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, m := range s {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Default returns the metrics worth reporting for a scenario.
func Default(scenario string, targetSpeed float64) Set {
	set := Set{
		NewMeanSpeed(),
		NewKineticEnergy(),
		NewEnergyDrift(),
		NewEntityCount(),
		NewStability(),
	}
	switch scenario {
	case "obstacles":
		set = append(set, NewSpeedDeviation("ball", targetSpeed))
	case "cannon", "slide", "incline":
		set = append(set, NewReach())
	}
	return set
}

func dynamic(entities []*scene.Entity) []*scene.Entity {
	out := entities[:0:0]
	for _, e := range entities {
		if e.Body.Kind() == physics.Dynamic {
			out = append(out, e)
		}
	}
	return out
}

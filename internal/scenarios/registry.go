package scenarios

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/rigidlab/internal/loop"
)

var ErrUnknownScenario = errors.New("unknown scenario")

type entry struct {
	title string
	build func(Params) loop.Scenario
}

var registry = map[string]entry{
	"falling":   {"Box2D and SFML Simulation", func(p Params) loop.Scenario { return NewFalling(p) }},
	"bounce":    {"Bouncing Ball Simulation", func(p Params) loop.Scenario { return NewBounce(p) }},
	"obstacles": {"Bouncing Ball Simulation with Obstacles", func(p Params) loop.Scenario { return NewObstacles(p) }},
	"slide":     {"Box2D Sliding Box Simulation with Friction", func(p Params) loop.Scenario { return NewSlide(p) }},
	"incline":   {"Box2D Inclined Plane Simulation with Friction", func(p Params) loop.Scenario { return NewIncline(p) }},
	"cannon":    {"Cannon Game", func(p Params) loop.Scenario { return NewCannon(p) }},
}

// New builds the named scenario.
func New(name string, p Params) (loop.Scenario, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return e.build(p), nil
}

// Names lists the registered scenarios in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Title is the window title of the named scenario, or "" if unknown.
func Title(name string) string {
	return registry[name].title
}

package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/rigidlab/internal/storage"
)

var (
	ErrUnknownAxis = errors.New("unknown axis")
	ErrNoSamples   = errors.New("no samples")
)

type Axis string

const (
	AxisX     Axis = "x"
	AxisY     Axis = "y"
	AxisAngle Axis = "angle"
	AxisVX    Axis = "vx"
	AxisVY    Axis = "vy"
	AxisSpeed Axis = "speed"
)

var Axes = []Axis{AxisX, AxisY, AxisAngle, AxisVX, AxisVY, AxisSpeed}

func ParseAxis(name string) (Axis, error) {
	for _, a := range Axes {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAxis, name)
}

func (a Axis) value(s storage.Sample) float64 {
	switch a {
	case AxisX:
		return s.X
	case AxisY:
		return s.Y
	case AxisAngle:
		return s.Angle
	case AxisVX:
		return s.VX
	case AxisVY:
		return s.VY
	default:
		return math.Hypot(s.VX, s.VY)
	}
}

// Extract returns the axis values and times of one entity, in trace order.
func Extract(samples []storage.Sample, entity int, axis Axis) ([]float64, []float64, error) {
	if _, err := ParseAxis(string(axis)); err != nil {
		return nil, nil, err
	}
	var vals, times []float64
	for _, s := range samples {
		if s.Entity != entity {
			continue
		}
		vals = append(vals, axis.value(s))
		times = append(times, s.Time)
	}
	if len(vals) == 0 {
		return nil, nil, fmt.Errorf("%w: entity %d", ErrNoSamples, entity)
	}
	return vals, times, nil
}

// FindEntity returns the index of the first entity with the given label,
// or -1.
func FindEntity(samples []storage.Sample, label string) int {
	for _, s := range samples {
		if s.Label == label {
			return s.Entity
		}
	}
	return -1
}

type Point struct{ X, Y float64 }

// Path returns an entity's positions in trace order.
func Path(samples []storage.Sample, entity int) []Point {
	var pts []Point
	for _, s := range samples {
		if s.Entity == entity {
			pts = append(pts, Point{s.X, s.Y})
		}
	}
	return pts
}

package metrics

import (
	"math"

	"github.com/san-kum/rigidlab/internal/loop"
)

// MeanSpeed averages the speed of every dynamic body over every frame.
type MeanSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(f loop.Frame) {
	for _, e := range dynamic(f.Entities) {
		m.total += e.Body.Speed()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// SpeedDeviation tracks the worst |speed - target| of the entity with the
// given label.
type SpeedDeviation struct {
	name   string
	label  string
	target float64
	worst  float64
}

func NewSpeedDeviation(label string, target float64) *SpeedDeviation {
	return &SpeedDeviation{name: "speed_deviation", label: label, target: target}
}

func (s *SpeedDeviation) Name() string { return s.name }

func (s *SpeedDeviation) Observe(f loop.Frame) {
	for _, e := range f.Entities {
		if e.Label != s.label {
			continue
		}
		s.worst = math.Max(s.worst, math.Abs(e.Body.Speed()-s.target))
	}
}

func (s *SpeedDeviation) Value() float64 { return s.worst }

func (s *SpeedDeviation) Reset() { s.worst = 0 }

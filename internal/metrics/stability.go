package metrics

import "github.com/san-kum/rigidlab/internal/loop"

// Stability is the fraction of frames in which every body had a finite
// transform and velocity.
type Stability struct {
	name       string
	violations int
	samples    int
}

func NewStability() *Stability {
	return &Stability{name: "stability"}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(f loop.Frame) {
	s.samples++
	for _, e := range f.Entities {
		if !e.Body.IsFinite() {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

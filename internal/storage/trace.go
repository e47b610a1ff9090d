package storage

import (
	"github.com/san-kum/rigidlab/internal/loop"
)

// Sample is one entity's state in one frame. Positions are in pixels, the
// angle in degrees and velocities in m/s.
type Sample struct {
	Frame  int     `json:"frame"`
	Time   float64 `json:"time"`
	Entity int     `json:"entity"`
	Label  string  `json:"label"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
}

// Sink receives the samples of each recorded frame.
type Sink interface {
	WriteFrame(samples []Sample) error
}

// Recorder is a loop.Observer that samples every Every-th frame (every
// frame when Every <= 1). The first sink error stops forwarding and is
// reported by Err.
type Recorder struct {
	Every   int
	samples []Sample
	sinks   []Sink
	err     error
}

func NewRecorder(every int, sinks ...Sink) *Recorder {
	return &Recorder{Every: every, sinks: sinks}
}

func (r *Recorder) OnFrame(f loop.Frame) {
	if r.Every > 1 && f.Index%r.Every != 0 {
		return
	}
	frame := make([]Sample, 0, len(f.Entities))
	for i, e := range f.Entities {
		pos, vel := e.Body.Position(), e.Body.Velocity()
		frame = append(frame, Sample{
			Frame:  f.Index,
			Time:   f.Time,
			Entity: i,
			Label:  e.Label,
			Kind:   e.Body.Kind().String(),
			X:      pos[0],
			Y:      pos[1],
			Angle:  e.Body.AngleDeg(),
			VX:     vel[0],
			VY:     vel[1],
		})
	}
	r.samples = append(r.samples, frame...)

	if r.err != nil {
		return
	}
	for _, s := range r.sinks {
		if err := s.WriteFrame(frame); err != nil {
			r.err = err
			return
		}
	}
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Frames is the number of distinct recorded frames.
func (r *Recorder) Frames() int {
	n, last := 0, -1
	for _, s := range r.samples {
		if s.Frame != last {
			n++
			last = s.Frame
		}
	}
	return n
}

func (r *Recorder) Err() error { return r.err }

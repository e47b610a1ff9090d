package metrics

import "github.com/san-kum/rigidlab/internal/loop"

// Reach is the furthest x, in pixels, any dynamic body has reached.
type Reach struct {
	name string
	max  float64
	seen bool
}

func NewReach() *Reach {
	return &Reach{name: "max_x"}
}

func (r *Reach) Name() string { return r.name }

func (r *Reach) Observe(f loop.Frame) {
	for _, e := range dynamic(f.Entities) {
		x := e.Body.Position()[0]
		if !r.seen || x > r.max {
			r.max = x
			r.seen = true
		}
	}
}

// Value is 0 until a dynamic body has been seen.
func (r *Reach) Value() float64 { return r.max }

func (r *Reach) Reset() {
	r.max = 0
	r.seen = false
}

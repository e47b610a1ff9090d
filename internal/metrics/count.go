package metrics

import "github.com/san-kum/rigidlab/internal/loop"

// EntityCount reports the entity count of the latest frame.
type EntityCount struct {
	name  string
	count int
}

func NewEntityCount() *EntityCount {
	return &EntityCount{name: "entities"}
}

func (c *EntityCount) Name() string { return c.name }

func (c *EntityCount) Observe(f loop.Frame) { c.count = len(f.Entities) }

func (c *EntityCount) Value() float64 { return float64(c.count) }

func (c *EntityCount) Reset() { c.count = 0 }

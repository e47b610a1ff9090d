// Package sweep runs one scenario headless across a range of parameter
// values, one independent world per value, and ranks the results by a
// metric.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/rigidlab/internal/headless"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/metrics"
	"github.com/san-kum/rigidlab/internal/scenarios"
)

var (
	ErrUnknownParam = errors.New("sweep: unknown parameter")
	ErrNoValues     = errors.New("sweep: no values")
)

// Params lists the sweepable parameters by their config keys.
var Params = []string{"incline_angle", "push_force", "target_speed", "cannon_angle", "cannon_impulse"}

// Set returns p with the named parameter replaced.
func Set(p scenarios.Params, name string, v float64) (scenarios.Params, error) {
	switch name {
	case "incline_angle":
		p.InclineAngle = v
	case "push_force":
		p.PushForce = v
	case "target_speed":
		p.TargetSpeed = v
	case "cannon_angle":
		p.CannonAngle = v
	case "cannon_impulse":
		p.CannonImpulse = v
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return p, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Point is the outcome of one value.
type Point struct {
	Value   float64
	Metrics map[string]float64
	Err     error
}

// Sweep describes the runs. The Script is shared read-only by every run.
type Sweep struct {
	Scenario string
	Param    string
	Values   []float64
	Base     scenarios.Params
	Script   headless.Script
	Config   loop.Config
	Workers  int
}

// Run executes every value and returns the points in Values order. A
// failing value is reported in its Point; Run itself fails only on bad
// input or when ctx is done.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Values) == 0 {
		return nil, ErrNoValues
	}
	if _, err := Set(s.Base, s.Param, 0); err != nil {
		return nil, err
	}
	if _, err := scenarios.New(s.Scenario, s.Base); err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(s.Values))

	points := make([]Point, len(s.Values))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				points[idx] = s.runOne(ctx, s.Values[idx])
			}
		}()
	}

	for i := range s.Values {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *Sweep) runOne(ctx context.Context, v float64) Point {
	pt := Point{Value: v}
	p, _ := Set(s.Base, s.Param, v)

	sc, err := scenarios.New(s.Scenario, p)
	if err != nil {
		pt.Err = err
		return pt
	}

	target := p.TargetSpeed
	if target == 0 {
		target = scenarios.DefaultTargetSpeed
	}
	set := metrics.Default(s.Scenario, target)

	if _, err := headless.Run(ctx, sc, s.Script, s.Config, set); err != nil {
		pt.Err = err
		return pt
	}
	pt.Metrics = set.Values()
	return pt
}

// Best returns the point with the lowest metric, or the highest when
// maximize is set. Failed points are skipped.
func Best(points []Point, metric string, maximize bool) (Point, bool) {
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	var bestPoint Point
	found := false
	for _, pt := range points {
		if pt.Err != nil {
			continue
		}
		val, ok := pt.Metrics[metric]
		if !ok {
			continue
		}
		if (maximize && val > best) || (!maximize && val < best) {
			best = val
			bestPoint = pt
			found = true
		}
	}
	return bestPoint, found
}

package scenarios

import "github.com/go-gl/mathgl/mgl64"

// constantSpeed rescales v to the given magnitude, keeping its direction.
// The zero vector has no direction and is returned unchanged.
func constantSpeed(v mgl64.Vec2, speed float64) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(speed / l)
}

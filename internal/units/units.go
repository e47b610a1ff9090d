// Package units converts between the physics world's meters and screen pixels.
//
// Every length crossing the physics boundary goes through this package:
// setup positions are divided by [PixelsPerMeter], positions read back for
// drawing are multiplied by it.
package units

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PixelsPerMeter is the fixed ratio between screen pixels and world meters.
const PixelsPerMeter = 30.0

func Meters(px float64) float64 { return px / PixelsPerMeter }

func Pixels(m float64) float64 { return m * PixelsPerMeter }

// ToWorld converts a pixel-space point to world meters.
func ToWorld(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{Meters(p[0]), Meters(p[1])}
}

// ToScreen converts a world-space point in meters to pixels.
func ToScreen(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{Pixels(p[0]), Pixels(p[1])}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package render defines the boundary between the loop and a rendering engine.
//
// A [Window] is the surface the driver owns: it yields input events, reports
// held keys, and accepts draw commands between Clear and Present. The raylib
// window (package gui), the headless recorder (package headless) and the
// terminal viewer (package viz) all implement it.
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Color = color.RGBA

var (
	Black = Color{R: 0, G: 0, B: 0, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Red   = Color{R: 255, G: 0, B: 0, A: 255}
	Green = Color{R: 0, G: 255, B: 0, A: 255}
	Blue  = Color{R: 0, G: 0, B: 255, A: 255}
)

// Rect is a filled rectangle. Origin is relative to the rectangle's top-left
// corner; it is placed at Position and is the pivot for RotationDeg.
type Rect struct {
	Position    mgl64.Vec2
	Size        mgl64.Vec2
	Origin      mgl64.Vec2
	RotationDeg float64
	Fill        Color
}

// Corners returns the four corners in drawing order after rotation.
func (r Rect) Corners() [4]mgl64.Vec2 {
	rot := mgl64.Rotate2D(r.RotationDeg * math.Pi / 180.0)
	local := [4]mgl64.Vec2{
		{0, 0},
		{r.Size[0], 0},
		{r.Size[0], r.Size[1]},
		{0, r.Size[1]},
	}
	var out [4]mgl64.Vec2
	for i, p := range local {
		out[i] = r.Position.Add(rot.Mul2x1(p.Sub(r.Origin)))
	}
	return out
}

type Circle struct {
	Center mgl64.Vec2
	Radius float64
	Fill   Color
}

// Canvas accepts draw commands in view pixels.
type Canvas interface {
	DrawRect(r Rect)
	DrawCircle(c Circle)
}

type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

var keyNames = map[Key]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey is the inverse of Key.String.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

type EventKind int

const (
	EventClose EventKind = iota + 1
	EventKeyPressed
)

type Event struct {
	Kind EventKind
	Key  Key
}

func CloseEvent() Event { return Event{Kind: EventClose} }

func KeyPressed(k Key) Event { return Event{Kind: EventKeyPressed, Key: k} }

// Input answers whether a key is currently held.
type Input interface {
	IsKeyDown(k Key) bool
}

// Window is the rendering surface owned by the loop driver.
type Window interface {
	Canvas
	Input
	// PollEvents drains every event pending since the previous call.
	PollEvents() []Event
	Clear(c Color)
	// Present shows the frame; it may block for frame-rate limiting.
	Present()
	Close() error
}

// Package view maps the fixed camera rectangle onto the window's pixels.
package view

import (
	"github.com/go-gl/mathgl/mgl64"
)

// View is a rectangle of screen-space pixels shown in a viewport.
// It is set once at startup and never changes while the loop runs.
type View struct {
	X, Y, Width, Height float64
	ViewportWidth       float64
	ViewportHeight      float64
}

func New(x, y, width, height, viewportWidth, viewportHeight float64) View {
	return View{
		X: x, Y: y, Width: width, Height: height,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// Fixed returns the view every exercise uses: the rectangle (0, 0, w, h)
// shown in a w×h window.
func Fixed(width, height float64) View {
	return New(0, 0, width, height, width, height)
}

// Matrix returns the affine transform from view pixels to viewport pixels.
func (v View) Matrix() mgl64.Mat3 {
	return mgl64.Scale2D(v.ViewportWidth/v.Width, v.ViewportHeight/v.Height).
		Mul3(mgl64.Translate2D(-v.X, -v.Y))
}

// Project maps a point in view pixels to viewport pixels.
func (v View) Project(p mgl64.Vec2) mgl64.Vec2 {
	return v.Matrix().Mul3x1(p.Vec3(1)).Vec2()
}

// Unproject maps a viewport pixel back to view pixels.
func (v View) Unproject(p mgl64.Vec2) mgl64.Vec2 {
	return v.Matrix().Inv().Mul3x1(p.Vec3(1)).Vec2()
}

// Zoom is the uniform scale of the view. Non-uniform views report the
// horizontal factor.
func (v View) Zoom() float64 {
	return v.ViewportWidth / v.Width
}

func (v View) Center() mgl64.Vec2 {
	return mgl64.Vec2{v.X + v.Width/2, v.Y + v.Height/2}
}

// Contains reports whether p, in view pixels, falls inside the rectangle.
func (v View) Contains(p mgl64.Vec2) bool {
	return p[0] >= v.X && p[0] <= v.X+v.Width && p[1] >= v.Y && p[1] <= v.Y+v.Height
}

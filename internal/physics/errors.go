package physics

import "errors"

var (
	// ErrInvalidWorldConfig indicates a non-positive timestep or iteration count.
	ErrInvalidWorldConfig = errors.New("physics: invalid world configuration")

	// ErrInvalidShape indicates a shape with a missing kind or non-positive extents.
	ErrInvalidShape = errors.New("physics: invalid shape")

	// ErrWorldDestroyed is returned when creating bodies after Destroy.
	ErrWorldDestroyed = errors.New("physics: world destroyed")
)

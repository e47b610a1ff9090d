package loop

import "errors"

var (
	// ErrWindowUnavailable indicates the rendering surface could not be acquired.
	ErrWindowUnavailable = errors.New("loop: window unavailable")

	// ErrWorldUnavailable indicates the physics world could not be created.
	ErrWorldUnavailable = errors.New("loop: physics world unavailable")

	// ErrSetupFailed indicates the scenario could not build its bodies.
	ErrSetupFailed = errors.New("loop: scenario setup failed")
)

// StartupError wraps a fatal failure while constructing a driver.
type StartupError struct {
	Scenario string
	Stage    error
	Wrapped  error
}

func (e *StartupError) Error() string {
	if e.Wrapped == nil {
		return e.Scenario + ": " + e.Stage.Error()
	}
	return e.Scenario + ": " + e.Stage.Error() + ": " + e.Wrapped.Error()
}

// Is matches the stage sentinel so callers can test errors.Is(err, ErrSetupFailed).
func (e *StartupError) Is(target error) bool {
	return target == e.Stage
}

func (e *StartupError) Unwrap() error {
	return e.Wrapped
}

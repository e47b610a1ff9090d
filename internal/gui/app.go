// Package gui runs scenarios in a raylib window.
package gui

import (
	"context"

	"github.com/san-kum/rigidlab/internal/loop"
)

// Run opens a window, drives sc until the window is closed or ctx is done,
// and releases everything on return. Observers are attached before the
// first frame.
func Run(ctx context.Context, sc loop.Scenario, opts Options, cfg loop.Config, observers ...loop.Observer) error {
	win, err := Open(opts)
	if err != nil {
		return &loop.StartupError{Scenario: sc.Name(), Stage: loop.ErrWindowUnavailable, Wrapped: err}
	}

	d, err := loop.New(win, sc, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	for _, o := range observers {
		d.AddObserver(o)
	}
	return d.Run(ctx)
}

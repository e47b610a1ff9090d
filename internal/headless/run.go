package headless

import (
	"context"

	"github.com/san-kum/rigidlab/internal/loop"
)

// Run drives sc against a scripted window until the script closes it or ctx
// is done. The window is returned so callers can inspect the last frame.
func Run(ctx context.Context, sc loop.Scenario, script Script, cfg loop.Config, observers ...loop.Observer) (*Window, error) {
	win := New(script)
	d, err := loop.New(win, sc, cfg)
	if err != nil {
		return win, err
	}
	defer d.Close()

	for _, o := range observers {
		d.AddObserver(o)
	}
	return win, d.Run(ctx)
}

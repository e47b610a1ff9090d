// Package loop runs the fixed-timestep simulate-then-render loop.
//
// A [Driver] owns one [render.Window] and one [physics.World]. Each
// iteration, in order:
//
//  1. drain window events; a close event ends the run, key presses go to
//     the scenario's [EventHandler]
//  2. apply held-key forces through [InputHandler]
//  3. step the world once (1/60 s, 8 velocity and 3 position iterations)
//     then call [PostStepper]
//  4. clear the frame
//  5. draw every entity from its current transform, then the [Overlay]
//  6. present
//
// The only states are [Running] and [Closed]. The driver is not safe for
// concurrent use.
//
//	win, _ := gui.Open(cfg)
//	d, err := loop.New(win, scenarios.NewBounce(), loop.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//	return d.Run(ctx)
package loop

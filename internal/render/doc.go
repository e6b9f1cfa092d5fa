// Package render paints clock frames and drives them to a screen.
//
// A [Renderer] owns one canvas and turns a terminal size plus a time of day
// into a serialized frame:
//
//	resize → clear → dial → second → minute → hour → serialize
//
// A [Loop] repeats that forever against a [Screen], reading the time from an
// injected clock:
//
//	r := render.NewRenderer(params)
//	loop := render.NewLoop(r, terminal.New(os.Stdout), clockwork.NewRealClock(), logger)
//	_, err := loop.Run(ctx, render.Config{})
//
// # Frame rate
//
// A zero [Config.Interval] runs frames back to back with no pause. A
// positive interval sleeps on the clock between frames.
//
// # Failures
//
// A frame that panics is recovered, logged and counted; the loop goes on to
// the next frame. Cancelling the context is the only way out of Run.
package render

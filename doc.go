// Package cue is a per-actor animation scheduler for frame-driven hosts.
//
// Cue lets a host register named actors (mutable bags of float64 properties
// with a draw hook) and queue timed operations against each actor
// independently: property tweens, delays, and callbacks. A single [Stage.Tick]
// call, made once per frame by whatever loop the host prefers, advances every
// actor's queue in lockstep, mutates properties according to elapsed
// wall-clock time and an easing curve, and triggers a redraw.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the stage at the display's frame rate:
//
//	stage := cue.NewStage()
//	stage.Register("box", cue.NewActor(map[string]float64{"x": 0, "y": 0}, drawBox))
//	stage.Animate("box", time.Second, map[string]float64{"x": 100})
//
//	cue.Run(stage, cue.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, drive the stage yourself: call [Stage.Tick] from your own
// loop, or start a [TickerDriver] for a fixed-interval loop with no window.
//
// # Queues
//
// Each actor owns a strict FIFO queue. Only the head operation is ever
// active; later operations wait until everything ahead of them completes.
// Chaining a delay, a tween, and a callback therefore reads in order:
//
//	stage.Delay("box", 200*time.Millisecond)
//	stage.Animate("box", time.Second, map[string]float64{"x": 100})
//	stage.Callback("box", func() { log.Println("landed") })
//
// A tween snapshots its starting values on its first tick, not when it is
// enqueued, so a tween queued behind another tween of the same property
// continues from wherever the first one finished.
//
// # Easing
//
// The only built-in easing is "linear". The registry is open: adapt curves
// from github.com/tanema/gween/ease with [FromTweenFunc], or any unit curve
// such as github.com/fogleman/ease with [FromUnitFunc], then register them
// with [Stage.RegisterEasing] and select them via [Stage.AnimateEase].
//
// # Storyboards
//
// Whole timelines can be described declaratively in YAML and enqueued in one
// call; see [ParseStoryboard].
//
// Cue is single-threaded: a Stage must be driven and inspected from one
// goroutine at a time.
package cue

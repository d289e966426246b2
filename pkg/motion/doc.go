// Package motion is a small declarative animation engine.
//
// Effects describe property keyframes for a Target: a Tween moves named
// properties (opacity, y, scale, ...) between values over a duration, and a
// Burst fans particles out around a parent. Effects are collected into a
// Timeline, which runs on its own ticker goroutine once Replay is called.
//
// Example:
//
//	tl, _ := motion.New(motion.WithFrameRate(60))
//	tl.Add(
//	    motion.Html(button, motion.HtmlOptions{
//	        Duration: 300 * time.Millisecond,
//	        Easing:   motion.EaseOut,
//	        Props:    motion.Props{motion.PropScale: motion.Between(1.3, 1)},
//	    }),
//	)
//	tl.Replay()
//
// The engine never blocks its caller. Hosts that need property writes to
// happen on their own event loop pass WithScheduler.
package motion

// Package clap provides a headless clap counter widget.
//
// Users import this package for the state machine (Controller), the prop
// getters that wire elements to it, the anchor registry, the animation
// trigger (Animator), and the Scope used to share all of these implicitly
// through a context.Context.
package clap

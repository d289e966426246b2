// Package term is the small slice of terminal handling the clap demo needs:
// raw mode, polling key input, and writing full-screen frames.
package term

package clap

// AfterMount returns a function that drops its first call and forwards
// every later call to fn. Use it to skip the run an observer gets when it
// is registered, so fn only sees real transitions.
//
// The latch is one-shot and not safe for concurrent callers.
func AfterMount[T any](fn func(T)) func(T) {
	mounting := true
	return func(v T) {
		if mounting {
			mounting = false
			return
		}
		fn(v)
	}
}

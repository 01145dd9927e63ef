package ctrlc

// ///////////////////////////////////////////////
// Options
// ///////////////////////////////////////////////

// options collects the capability toggles accepted by the registration entry
// points.
type options struct {
	// termination widens the watched set beyond the primary interrupt:
	// SIGTERM and SIGHUP on Unix, console close/logoff/shutdown events on
	// Windows.
	termination bool
}

// Option configures a handler registration.
type Option func(*options)

// WithTermination enables handling of termination requests in addition to the
// primary interrupt: SIGTERM and SIGHUP on Unix, and console
// close/logoff/shutdown events on Windows.
func WithTermination() Option {
	return func(o *options) {
		o.termination = true
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

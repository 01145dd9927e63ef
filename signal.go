package ctrlc

// ///////////////////////////////////////////////
// Signal Kinds
// ///////////////////////////////////////////////

// Signal identifies which interrupt condition fired. Not every kind exists on
// every platform: Terminate and Hangup are Unix signals (Windows maps console
// close/logoff/shutdown events to Terminate when termination handling is
// enabled), and Break only occurs on Windows.
type Signal int

const (
	// Interrupt is the primary interrupt request: SIGINT on Unix,
	// CTRL_C_EVENT on Windows.
	Interrupt Signal = iota
	// Terminate is a termination request: SIGTERM on Unix, or a console
	// close/logoff/shutdown event on Windows.
	Terminate
	// Hangup is SIGHUP, delivered when the controlling terminal goes away.
	// Unix only.
	Hangup
	// Break is CTRL_BREAK_EVENT. Windows only.
	Break
)

// String returns the conventional name of the signal kind.
func (s Signal) String() string {
	switch s {
	case Interrupt:
		return "interrupt"
	case Terminate:
		return "terminate"
	case Hangup:
		return "hangup"
	case Break:
		return "break"
	default:
		return "unknown"
	}
}

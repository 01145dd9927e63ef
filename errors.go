package ctrlc

import (
	"errors"
	"fmt"
)

// ///////////////////////////////////////////////
// Error Taxonomy
// ///////////////////////////////////////////////

// ErrMultipleHandlers is returned when a handler registration conflicts with
// one that already owns the slot: either a second call to [SetHandler] /
// [TrySetHandler] in this process, or (via [TrySetHandler] on Unix) a signal
// disposition inherited from the parent process that the caller asked not to
// overwrite. Recoverable — the caller decides whether to proceed without a
// handler.
var ErrMultipleHandlers = errors.New("ctrlc: a handler already exists for the interrupt signals")

// SystemError wraps an OS-level failure during handler installation or while
// waiting for a signal. It is unrecoverable for the affected dispatcher: when
// it occurs inside the wait loop the dispatch goroutine panics with it rather
// than resuming on a broken wait primitive.
type SystemError struct {
	// Op names the operation that failed, e.g. "SetConsoleCtrlHandler".
	Op string
	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *SystemError) Error() string {
	return fmt.Sprintf("ctrlc: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying OS error so callers can match it with
// [errors.Is] and [errors.As].
func (e *SystemError) Unwrap() error {
	return e.Err
}

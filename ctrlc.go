// Package ctrlc delivers a single cross-platform notification when the user
// requests process interruption, exposed to caller code as a plain callback
// instead of raw OS signal machinery.
//
// [SetHandler] registers a handler closure that is executed each time an
// interrupt condition occurs. On Unix this corresponds to SIGINT (plus
// SIGTERM and SIGHUP when [WithTermination] is supplied); on Windows it
// corresponds to CTRL_C_EVENT and CTRL_BREAK_EVENT from the console control
// chain. Registration starts one dedicated dispatch goroutine that owns the
// handler; there can be only one synchronous handler per process, typically
// set at the start of the program.
//
// Example:
//
//	var running atomic.Bool
//	running.Store(true)
//
//	handle, err := ctrlc.SetHandler(func() bool {
//		running.Store(false)
//		return true
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for running.Load() {
//		// work
//	}
//	handle.Wait()
package ctrlc

// ///////////////////////////////////////////////
// Handle
// ///////////////////////////////////////////////

// Handle is a join-able reference to the dispatch goroutine spawned by
// [SetHandler] or [TrySetHandler]. The library never joins it internally;
// waiting on it is entirely the caller's choice.
type Handle struct {
	// done is closed by the dispatch goroutine after the handler has
	// reported completion and the loop has exited.
	done chan struct{}
}

// Wait blocks until the handler has signaled completion (returned true) and
// the dispatch goroutine has exited. If the handler never returns true, Wait
// blocks for the remainder of the process lifetime.
func (h *Handle) Wait() {
	<-h.done
}

// Done returns a channel that is closed when the dispatch goroutine exits,
// for use in select statements.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// ///////////////////////////////////////////////
// Registration
// ///////////////////////////////////////////////

// SetHandler registers handler for interrupt signals and starts the dedicated
// dispatch goroutine. The handler is invoked once per delivered interrupt; it
// returns true to stop listening (the dispatch goroutine then exits) or false
// to keep listening.
//
// On Unix an existing inherited signal disposition is overwritten. Use
// [TrySetHandler] to fail instead. On Windows the console control chain
// permits stacked handlers, so no overwrite question arises.
//
// Calling SetHandler a second time after a successful registration returns
// [ErrMultipleHandlers]; the process-wide registration happens at most once.
//
// A panic inside the handler is not recovered and will crash the process, so
// caller bugs stay visible.
func SetHandler(handler func() bool, opts ...Option) (*Handle, error) {
	return setHandler(handler, true, opts)
}

// TrySetHandler is the same as [SetHandler] but refuses to install when a
// foreign disposition already claims one of the watched signals (Unix: an
// inherited ignore disposition). It returns [ErrMultipleHandlers] in that
// case.
func TrySetHandler(handler func() bool, opts ...Option) (*Handle, error) {
	return setHandler(handler, false, opts)
}

func setHandler(handler func() bool, overwrite bool, opts []Option) (*Handle, error) {
	o := buildOptions(opts)
	return defaultRegistry.registerOnce(func() (*Handle, error) {
		n := newOSNotifier(o)
		if err := n.install(overwrite); err != nil {
			return nil, err
		}
		return spawnDispatcher(n, handler), nil
	})
}

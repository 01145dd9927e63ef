package ctrlc

import "log/slog"

// ///////////////////////////////////////////////
// Platform Abstraction
// ///////////////////////////////////////////////

// notifier bridges the OS-specific interrupt delivery primitive into a
// goroutine-blocking wait. Each platform provides one implementation via the
// build-tagged newOSNotifier constructor; tests inject fakes.
type notifier interface {
	// install claims the OS-level notification path. With overwrite false it
	// must fail with [ErrMultipleHandlers] when a foreign disposition is
	// already present, on platforms where that is observable.
	install(overwrite bool) error
	// wait blocks until the next watched interrupt condition and reports
	// which kind occurred. It must be safe to call in a loop indefinitely.
	wait() (Signal, error)
}

// ///////////////////////////////////////////////
// Dispatch Loop
// ///////////////////////////////////////////////

// spawnDispatcher starts the dedicated dispatch goroutine that owns handler.
// The loop blocks in n.wait(), invokes the handler once per wakeup, and exits
// when the handler returns true. Wakeups arriving while the handler is still
// running coalesce inside the notifier; the handler is never invoked
// concurrently with itself.
func spawnDispatcher(n notifier, handler func() bool) *Handle {
	h := &Handle{done: make(chan struct{})}

	go func() {
		defer close(h.done)
		for {
			sig, err := n.wait()
			if err != nil {
				// A broken wait primitive cannot be resumed. Crash loudly
				// instead of spinning or swallowing the failure.
				panic(&SystemError{Op: "wait for interrupt", Err: err})
			}
			slog.Debug("interrupt signal dispatched", "signal", sig.String())
			if handler() {
				return
			}
		}
	}()

	return h
}

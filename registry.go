package ctrlc

import (
	"sync"
	"sync/atomic"
)

// ///////////////////////////////////////////////
// Registration Guard
// ///////////////////////////////////////////////

// registry guards the process-wide "install OS handler and spawn dispatcher"
// step so it runs at most once per process lifetime, even under concurrent
// callers. There is no unregister operation; once installed, the registration
// lives until the process exits.
type registry struct {
	// installed is the lock-free fast path: once true, registration is
	// refused without taking mu.
	installed atomic.Bool
	// mu serializes the install attempt itself.
	mu sync.Mutex
}

// defaultRegistry is the singleton backing [SetHandler] and [TrySetHandler].
var defaultRegistry registry

// registerOnce runs install at most once. The first caller to win the lock
// runs it; on success the installed flag is published and the resulting
// handle returned. Every other caller — concurrent or later — receives
// [ErrMultipleHandlers]. If install fails, the registry stays uninitialized
// and its error is propagated, so the caller may retry.
func (r *registry) registerOnce(install func() (*Handle, error)) (*Handle, error) {
	if r.installed.Load() {
		return nil, ErrMultipleHandlers
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the lock: another caller may have completed the
	// installation between the unsynchronized read above and lock acquisition.
	if r.installed.Load() {
		return nil, ErrMultipleHandlers
	}

	h, err := install()
	if err != nil {
		return nil, err
	}
	r.installed.Store(true)
	return h, nil
}

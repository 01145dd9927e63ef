// registry_test.go verifies the process-wide registration guard: at most one
// successful installation under concurrency, conflict errors for every other
// caller, and retryability after an installer failure.

package ctrlc

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// ///////////////////////////////////////////////
// Concurrent Registration
// ///////////////////////////////////////////////

func TestRegisterOnceConcurrent(t *testing.T) {
	const racers = 32

	var r registry
	var installs atomic.Int32

	var wins atomic.Int32
	var conflicts atomic.Int32

	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			h, err := r.registerOnce(func() (*Handle, error) {
				installs.Add(1)
				return &Handle{done: make(chan struct{})}, nil
			})
			switch {
			case err == nil:
				if h == nil {
					t.Error("successful registration returned nil handle")
				}
				wins.Add(1)
			case errors.Is(err, ErrMultipleHandlers):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Errorf("successful registrations = %d, want 1", got)
	}
	if got := conflicts.Load(); got != racers-1 {
		t.Errorf("conflict errors = %d, want %d", got, racers-1)
	}
	if got := installs.Load(); got != 1 {
		t.Errorf("installer invocations = %d, want 1", got)
	}
}

// ///////////////////////////////////////////////
// Sequential Behavior
// ///////////////////////////////////////////////

func TestRegisterOnceSecondCallConflicts(t *testing.T) {
	var r registry

	if _, err := r.registerOnce(func() (*Handle, error) {
		return &Handle{done: make(chan struct{})}, nil
	}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// The second call must always report the conflict, never silently
	// succeed and never run the installer again.
	_, err := r.registerOnce(func() (*Handle, error) {
		t.Error("installer ran for second registration")
		return nil, nil
	})
	if !errors.Is(err, ErrMultipleHandlers) {
		t.Errorf("second registration error = %v, want ErrMultipleHandlers", err)
	}
}

func TestRegisterOnceRetryAfterFailure(t *testing.T) {
	var r registry

	installErr := errors.New("mask manipulation failed")
	_, err := r.registerOnce(func() (*Handle, error) {
		return nil, installErr
	})
	if !errors.Is(err, installErr) {
		t.Fatalf("failed registration error = %v, want installer error", err)
	}

	// A failed installation must leave the registry uninitialized so the
	// caller can retry.
	h, err := r.registerOnce(func() (*Handle, error) {
		return &Handle{done: make(chan struct{})}, nil
	})
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if h == nil {
		t.Fatal("retry returned nil handle")
	}
}

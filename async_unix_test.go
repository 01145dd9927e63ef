// async_unix_test.go exercises the async bridge with real signal delivery.
// Unix only: the tests send SIGTERM/SIGHUP to their own process. SIGINT is
// deliberately avoided so these tests cannot interact with the synchronous
// end-to-end test, which claims SIGINT for the process lifetime.

//go:build !windows

package ctrlc

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

// ///////////////////////////////////////////////
// Termination Race
// ///////////////////////////////////////////////

func TestSetAsyncHandlerTerminationFiresOnce(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32
	h := SetAsyncHandler(ctx, func(context.Context) {
		calls.Add(1)
	}, WithTermination())

	// Fire the terminate source before any interrupt ever occurs. The
	// handler must run exactly once regardless of which raced source the
	// select resolves (implementation-defined).
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("deliver SIGTERM: %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not complete after SIGTERM")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("handler invocations = %d, want 1", got)
	}
}

// ///////////////////////////////////////////////
// Unguarded Multiplicity
// ///////////////////////////////////////////////

func TestSetAsyncHandlerIndependentBridges(t *testing.T) {
	// The async path intentionally has no registration guard: two bridges
	// watch independently and a single signal fires both.
	ctx := context.Background()

	var calls atomic.Int32
	h1 := SetAsyncHandler(ctx, func(context.Context) { calls.Add(1) }, WithTermination())
	h2 := SetAsyncHandler(ctx, func(context.Context) { calls.Add(1) }, WithTermination())

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatalf("deliver SIGHUP: %v", err)
	}

	for i, h := range []*AsyncHandle{h1, h2} {
		select {
		case <-h.Done():
		case <-time.After(5 * time.Second):
			t.Fatalf("bridge %d did not complete after SIGHUP", i+1)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("handler invocations = %d, want 2 (one per bridge)", got)
	}
}

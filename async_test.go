// async_test.go covers the platform-neutral behavior of the async bridge:
// context cancellation abandons the wait without running the handler.

package ctrlc

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// ///////////////////////////////////////////////
// Cancellation
// ///////////////////////////////////////////////

func TestSetAsyncHandlerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	h := SetAsyncHandler(ctx, func(context.Context) {
		calls.Add(1)
	})

	cancel()

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not exit after context cancellation")
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("handler invocations = %d, want 0 (canceled before any signal)", got)
	}
}

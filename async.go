package ctrlc

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

// ///////////////////////////////////////////////
// Async Bridge
// ///////////////////////////////////////////////

// AsyncHandle is a join-able reference to the watcher goroutine spawned by
// [SetAsyncHandler].
type AsyncHandle struct {
	// done is closed when the watcher goroutine finishes, whether the
	// handler ran or the context was canceled first.
	done chan struct{}
}

// Done returns a channel that is closed when the watcher goroutine exits.
func (h *AsyncHandle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the watcher goroutine exits.
func (h *AsyncHandle) Wait() {
	<-h.done
}

// SetAsyncHandler registers a one-shot interrupt handler on a watcher
// goroutine instead of the dedicated dispatch loop used by [SetHandler].
//
// The watcher races the interrupt notification sources — always the primary
// interrupt, plus separate terminate and hangup streams on Unix when
// [WithTermination] is supplied (Windows only exposes the primary source on
// this path) — against ctx. The first source to fire wins; handler then runs
// exactly once and the watcher exits. A second interrupt after the handler
// has fired is not observed: there is no re-arming loop on this path.
// Canceling ctx abandons the wait without invoking the handler.
//
// The sources are registered before SetAsyncHandler returns, so a signal
// delivered immediately after the call is not lost.
//
// Unlike the synchronous path, no process-wide registration guard applies
// here: every call spawns an independent watcher with its own one-shot
// delivery, and a single interrupt will fire all of them. This asymmetry is
// deliberate — it allows multiple independent interrupt-aware components —
// but callers wanting strict single-owner semantics should use [SetHandler].
func SetAsyncHandler(ctx context.Context, handler func(context.Context), opts ...Option) *AsyncHandle {
	o := buildOptions(opts)
	h := &AsyncHandle{done: make(chan struct{})}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var terminate, hangup <-chan os.Signal
	stop := func() {}
	if o.termination {
		terminate, hangup, stop = terminationChannels()
	}

	go func() {
		defer close(h.done)
		defer signal.Stop(interrupt)
		defer stop()

		// A nil channel blocks forever, so the disabled sources simply never
		// win the race.
		var won Signal
		select {
		case <-ctx.Done():
			return
		case <-interrupt:
			won = Interrupt
		case <-terminate:
			won = Terminate
		case <-hangup:
			won = Hangup
		}

		slog.Debug("interrupt signal dispatched", "signal", won.String(), "path", "async")
		handler(ctx)
	}()

	return h
}

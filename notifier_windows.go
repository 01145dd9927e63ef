// Windows interrupt delivery via the console control chain.
//
// This file is compiled only on Windows. Instead of os/signal, the notifier
// registers its own console control handler with SetConsoleCtrlHandler so
// that CTRL_C_EVENT and CTRL_BREAK_EVENT can be told apart (the Go runtime
// folds both into os.Interrupt). The console model permits stacked handlers
// called last-registered first, so unlike Unix there is no foreign-handler
// conflict to detect and the overwrite flag carries no enforcement here.

//go:build windows

package ctrlc

import (
	"golang.org/x/sys/windows"
)

// ///////////////////////////////////////////////
// Windows Notifier
// ///////////////////////////////////////////////

// winNotifier implements [notifier] via a raw console control handler.
type winNotifier struct {
	// termination additionally maps console close/logoff/shutdown events to
	// [Terminate].
	termination bool
	// ch receives mapped signal kinds from the console callback. The buffer
	// size of 1 means events arriving while the handler is busy coalesce.
	ch chan Signal
}

// newOSNotifier returns the platform notifier for the given options.
func newOSNotifier(o options) notifier {
	return &winNotifier{termination: o.termination}
}

// install registers the console control callback. The overwrite flag is
// accepted for cross-platform API symmetry but has no meaning on Windows;
// installation fails only on a system error.
func (n *winNotifier) install(overwrite bool) error {
	_ = overwrite
	n.ch = make(chan Signal, 1)
	cb := windows.NewCallback(n.consoleHandler)
	if err := windows.SetConsoleCtrlHandler(cb, true); err != nil {
		return &SystemError{Op: "SetConsoleCtrlHandler", Err: err}
	}
	return nil
}

// consoleHandler is the HandlerRoutine invoked by the OS on a thread it
// injects into the process. Only minimal, non-blocking work is allowed here:
// map the event and hand it to the waiting goroutine. Returning 1 marks the
// event handled and stops the chain (including the Go runtime's own handler,
// which would otherwise exit the process); returning 0 passes it on.
func (n *winNotifier) consoleHandler(ctrlType uint32) uintptr {
	var sig Signal
	switch ctrlType {
	case windows.CTRL_C_EVENT:
		sig = Interrupt
	case windows.CTRL_BREAK_EVENT:
		sig = Break
	case windows.CTRL_CLOSE_EVENT, windows.CTRL_LOGOFF_EVENT, windows.CTRL_SHUTDOWN_EVENT:
		if !n.termination {
			return 0
		}
		sig = Terminate
	default:
		return 0
	}

	select {
	case n.ch <- sig:
	default:
		// Handler still busy with an earlier event; coalesce.
	}
	return 1
}

// wait blocks until the console callback delivers the next mapped event.
func (n *winNotifier) wait() (Signal, error) {
	return <-n.ch, nil
}

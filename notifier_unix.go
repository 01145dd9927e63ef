// Unix/Darwin interrupt delivery.
//
// This file is compiled on all non-Windows platforms (Linux, macOS, *BSD).
// The Go runtime already performs the signal-safe trampoline work: its signal
// handler does nothing beyond arming a wakeup that os/signal turns into a
// channel send. All real work therefore happens in ordinary goroutine context
// after the channel receive, never inside an asynchronous signal handler body.

//go:build !windows

package ctrlc

import (
	"os"
	"os/signal"
	"syscall"
)

// ///////////////////////////////////////////////
// Unix Notifier
// ///////////////////////////////////////////////

// unixNotifier implements [notifier] on top of os/signal.
type unixNotifier struct {
	// signals is the watched set: SIGINT always, plus SIGTERM and SIGHUP
	// when termination handling is enabled.
	signals []os.Signal
	// ch receives delivered signals. The buffer size of 1 means signals
	// arriving while the handler is busy coalesce rather than queue.
	ch chan os.Signal
}

// newOSNotifier returns the platform notifier for the given options.
func newOSNotifier(o options) notifier {
	sigs := []os.Signal{syscall.SIGINT}
	if o.termination {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGHUP)
	}
	return &unixNotifier{signals: sigs}
}

// install routes the watched signals to the notifier's channel. With
// overwrite false, an ignore disposition inherited from the parent process
// (the one foreign handler state observable from Go) causes installation to
// fail with [ErrMultipleHandlers] instead of being clobbered.
//
// The disposition is never restored: signal delivery stays claimed for the
// remainder of the process lifetime, which is what keeps further interrupts
// from killing the process after the handler has reported completion.
func (n *unixNotifier) install(overwrite bool) error {
	if !overwrite {
		for _, s := range n.signals {
			if signal.Ignored(s) {
				return ErrMultipleHandlers
			}
		}
	}
	n.ch = make(chan os.Signal, 1)
	signal.Notify(n.ch, n.signals...)
	return nil
}

// wait blocks until the next watched signal arrives and maps it to a
// [Signal] kind. Receiving from an os/signal channel cannot fail, so the
// error result exists only for interface parity with the Windows notifier.
func (n *unixNotifier) wait() (Signal, error) {
	s := <-n.ch
	switch s {
	case syscall.SIGTERM:
		return Terminate, nil
	case syscall.SIGHUP:
		return Hangup, nil
	default:
		return Interrupt, nil
	}
}

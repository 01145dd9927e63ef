// Unix termination sources for the async bridge.
//
// This file is compiled on all non-Windows platforms. Terminate and hangup
// are delivered on individual channels so the bridge races distinct sources
// rather than multiplexing everything onto one stream; which source wins a
// simultaneous delivery is implementation-defined.

//go:build !windows

package ctrlc

import (
	"os"
	"os/signal"
	"syscall"
)

// ///////////////////////////////////////////////
// Termination Sources
// ///////////////////////////////////////////////

// terminationChannels returns individually registered channels for SIGTERM
// and SIGHUP plus a stop function that releases both registrations.
func terminationChannels() (terminate, hangup <-chan os.Signal, stop func()) {
	term := make(chan os.Signal, 1)
	signal.Notify(term, syscall.SIGTERM)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	return term, hup, func() {
		signal.Stop(term)
		signal.Stop(hup)
	}
}

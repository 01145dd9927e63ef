// Windows termination sources for the async bridge.
//
// This file is compiled only on Windows, where the async path exposes only
// the primary interrupt source: the Go runtime already folds Ctrl+Break and
// console-close events into os.Interrupt, and there is no SIGTERM/SIGHUP
// equivalent to race separately.

//go:build windows

package ctrlc

import "os"

// ///////////////////////////////////////////////
// Termination Sources
// ///////////////////////////////////////////////

// terminationChannels returns nil channels on Windows; nil channels never
// become ready, so the bridge's race reduces to the primary interrupt source.
func terminationChannels() (terminate, hangup <-chan os.Signal, stop func()) {
	return nil, nil, func() {}
}

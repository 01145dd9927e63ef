// Unix/Darwin advisory locking for the PID file.
//
// This file is compiled on all non-Windows platforms. flock(2) with LOCK_NB
// gives an immediate EWOULDBLOCK when another process holds the lock, which
// is how the daemon detects a running instance without parsing and trusting
// stale PID contents.

//go:build !windows

package main

import (
	"fmt"
	"os"
	"syscall"
)

// ///////////////////////////////////////////////
// File Locking
// ///////////////////////////////////////////////

// lockFile takes an exclusive, non-blocking advisory lock on f.
func lockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		return fmt.Errorf("flock %s: %w", f.Name(), err)
	}
	return nil
}

// unlockFile releases the advisory lock on f. Closing the descriptor also
// releases it implicitly.
func unlockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("unlock %s: %w", f.Name(), err)
	}
	return nil
}

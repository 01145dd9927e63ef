package main

import (
	"os"
	"path/filepath"

	"github.com/ssrlive/rust-ctrlc/internal/config"
)

// ///////////////////////////////////////////////
// Data Directory Layout
// ///////////////////////////////////////////////

// dataPaths resolves the daemon's on-disk layout inside its data directory.
// Path construction is platform-independent; filepath.Join handles
// OS-specific separators.
type dataPaths struct {
	root string
}

func (p dataPaths) config() string { return filepath.Join(p.root, config.FileName) }
func (p dataPaths) log() string    { return filepath.Join(p.root, "ctrlcd.log") }
func (p dataPaths) pid() string    { return filepath.Join(p.root, "ctrlcd.pid") }

// defaultDataDir returns ~/.ctrlcd, falling back to ./.ctrlcd when the home
// directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ctrlcd")
	}
	return filepath.Join(home, ".ctrlcd")
}

// Package main implements ctrlcd, a small daemon that demonstrates graceful
// interrupt handling built on the ctrlc library: the first Ctrl+C (or
// termination request) starts a bounded drain, a second one forces immediate
// shutdown.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	ctrlc "github.com/ssrlive/rust-ctrlc"
	"github.com/ssrlive/rust-ctrlc/internal/config"
	"github.com/ssrlive/rust-ctrlc/internal/logger"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via -ldflags "-X main.version=...". When left
// at "dev", resolveVersion falls back to the VCS revision the Go toolchain
// embeds, so bare builds still report something useful.
var version = "dev"

// resolveVersion returns the build version string.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// PID Management
// ///////////////////////////////////////////////

// pidToken generates a random hex token proving ownership of the PID file,
// so removePID only deletes a file this instance wrote.
func pidToken() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// writePID creates or opens the PID file, takes an exclusive advisory lock,
// and writes "PID:TOKEN". The returned handle must stay open for the daemon's
// lifetime to hold the lock.
func writePID(paths dataPaths, token string) (*os.File, error) {
	f, err := os.OpenFile(paths.pid(), os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open PID file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock PID file: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("truncate PID file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%d:%s", os.Getpid(), token); err != nil {
		_ = unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("write PID file: %w", err)
	}
	return f, nil
}

// removePID releases the lock, closes the handle, and deletes the PID file
// only when the stored token matches this instance.
func removePID(paths dataPaths, token string, f *os.File) {
	if f != nil {
		_ = unlockFile(f)
		f.Close()
	}
	data, err := os.ReadFile(paths.pid())
	if err != nil {
		return
	}
	parts := strings.SplitN(string(data), ":", 2)
	if len(parts) == 2 && parts[1] == token {
		os.Remove(paths.pid())
	}
}

// checkStalePID reports whether another instance is running by probing the
// advisory lock. A successful probe means any previous instance is dead, so
// the stale file is removed.
func checkStalePID(paths dataPaths) (alive bool, pid int) {
	f, err := os.OpenFile(paths.pid(), os.O_RDWR, 0o600)
	if err != nil {
		return false, 0
	}

	if lockErr := lockFile(f); lockErr != nil {
		data, _ := os.ReadFile(paths.pid())
		f.Close()
		if parts := strings.SplitN(string(data), ":", 2); len(parts) >= 1 {
			if p, convErr := strconv.Atoi(parts[0]); convErr == nil {
				return true, p
			}
		}
		return true, 0
	}

	_ = unlockFile(f)
	f.Close()
	os.Remove(paths.pid())
	return false, 0
}

// ///////////////////////////////////////////////
// Interrupt Handler
// ///////////////////////////////////////////////

// interruptHandler returns the callback that runs on the library's dispatch
// goroutine. The first interrupt requests a graceful drain and keeps
// listening; the second stops the dispatch loop, which the run loop treats
// as a force-quit.
func interruptHandler(presses *atomic.Int32, drain chan<- struct{}) func() bool {
	return func() bool {
		if presses.Add(1) > 1 {
			return true
		}
		select {
		case drain <- struct{}{}:
		default:
		}
		return false
	}
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

func main() {
	dataDir := flag.String("data-dir", defaultDataDir(), "Data directory for config, PID file, and logs")
	flag.Parse()

	paths := dataPaths{root: *dataDir}

	if err := os.MkdirAll(paths.root, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: create data dir: %v\n", err)
		os.Exit(1)
	}

	if alive, pid := checkStalePID(paths); alive {
		fmt.Fprintf(os.Stderr, "daemon already running (pid %d)\n", pid)
		os.Exit(1)
	}

	if _, err := os.Stat(paths.config()); os.IsNotExist(err) {
		if writeErr := os.WriteFile(paths.config(), config.DefaultTOML, 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write default config: %v\n", writeErr)
		}
	}

	cfg, err := config.Load(paths.root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: load config: %v\n", err)
		os.Exit(1)
	}

	level := new(slog.LevelVar)
	level.Set(logger.ParseLevel(cfg.Log.Level))
	log, logCloser := logger.New(paths.log(), level, cfg.Log.MaxSizeMB, os.Stderr)
	defer logCloser.Close()
	slog.SetDefault(log)

	slog.Info("ctrlcd starting", "version", resolveVersion(), "data_dir", paths.root, "pid", os.Getpid())

	token := pidToken()
	pidFile, err := writePID(paths, token)
	if err != nil {
		slog.Error("failed to write PID file", "error", err)
		os.Exit(1)
	}
	defer removePID(paths, token, pidFile)

	var opts []ctrlc.Option
	if cfg.Shutdown.Termination {
		opts = append(opts, ctrlc.WithTermination())
	}

	drain := make(chan struct{}, 1)
	var presses atomic.Int32
	handle, err := ctrlc.SetHandler(interruptHandler(&presses, drain), opts...)
	if err != nil {
		slog.Error("failed to set interrupt handler", "error", err)
		os.Exit(1)
	}

	watcher, err := config.Watch(paths.root)
	if err != nil {
		slog.Warn("config hot-reload disabled", "error", err)
		watcher = nil
	}

	run(handle, cfg, level, watcher, drain, paths)
	slog.Info("ctrlcd stopped")
}

// ///////////////////////////////////////////////
// Event Loop
// ///////////////////////////////////////////////

// run is the daemon's main loop: heartbeat logging, config hot-reload, and
// the two-stage interrupt shutdown. It returns when the drain window elapses
// or a second interrupt ends the dispatch loop.
func run(
	handle *ctrlc.Handle,
	cfg *config.Config,
	level *slog.LevelVar,
	watcher *config.Watcher,
	drain <-chan struct{},
	paths dataPaths,
) {
	heartbeat := time.NewTicker(cfg.HeartbeatInterval())
	defer heartbeat.Stop()

	// A nil watcher leaves events nil; receiving from a nil channel blocks
	// forever, so the select below simply never sees reload events.
	var events <-chan struct{}
	if watcher != nil {
		defer watcher.Close()
		events = watcher.Events()
	}

	start := time.Now()
	for {
		select {
		case <-heartbeat.C:
			slog.Info("heartbeat", "uptime", time.Since(start).Round(time.Second).String())

		case <-events:
			reloadLogLevel(paths, level)

		case <-drain:
			slog.Info("interrupt received, draining", "grace_period", cfg.GracePeriod().String())
			select {
			case <-time.After(cfg.GracePeriod()):
				slog.Info("drain complete")
			case <-handle.Done():
				slog.Warn("second interrupt, forcing immediate shutdown")
			}
			return
		}
	}
}

// reloadLogLevel re-reads the config file and applies a changed log level.
// All other settings require a restart; this keeps reload semantics trivial.
func reloadLogLevel(paths dataPaths, level *slog.LevelVar) {
	cfg, err := config.Load(paths.root)
	if err != nil {
		slog.Warn("config reload failed", "error", err)
		return
	}
	next := logger.ParseLevel(cfg.Log.Level)
	if next != level.Level() {
		level.Set(next)
		slog.Info("log level updated", "level", cfg.Log.Level)
	}
}

// Package config provides configuration loading and defaults for the ctrlcd
// daemon.
//
// Configuration is loaded from a TOML file in the daemon's data directory.
// The package handles logging, shutdown, and heartbeat settings with
// sensible defaults, and exposes a file watcher so the daemon can re-apply
// the log level when the file changes.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file name inside the data directory.
const FileName = "config.toml"

// DefaultTOML holds the raw bytes of config.default.toml, embedded at build
// time. The daemon copies it into the data directory on first run.
//
//go:embed config.default.toml
var DefaultTOML []byte

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level daemon configuration.
type Config struct {
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
	// Shutdown holds interrupt-handling and drain settings.
	Shutdown ShutdownConfig `toml:"shutdown"`
	// Heartbeat holds liveness-logging settings.
	Heartbeat HeartbeatConfig `toml:"heartbeat"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `toml:"level"`
	// MaxSizeMB is the rotating log file size limit in megabytes.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ShutdownConfig holds interrupt-handling settings.
type ShutdownConfig struct {
	// Termination also watches termination requests (SIGTERM/SIGHUP on
	// Unix, console close/logoff/shutdown on Windows) in addition to the
	// primary interrupt.
	Termination bool `toml:"termination"`
	// GracePeriodSeconds is the drain window after the first interrupt; a
	// second interrupt inside the window forces immediate shutdown.
	GracePeriodSeconds int `toml:"grace_period_seconds"`
}

// HeartbeatConfig holds liveness-logging settings.
type HeartbeatConfig struct {
	// IntervalSeconds is the delay between heartbeat log lines.
	IntervalSeconds int `toml:"interval_seconds"`
}

// ///////////////////////////////////////////////
// Defaults
// ///////////////////////////////////////////////

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "info", MaxSizeMB: 5},
		Shutdown:  ShutdownConfig{Termination: true, GracePeriodSeconds: 5},
		Heartbeat: HeartbeatConfig{IntervalSeconds: 30},
	}
}

// applyDefaults fills zero values and clamps out-of-range settings so a
// partial or hand-edited file still yields a usable configuration.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.MaxSizeMB < 1 {
		c.Log.MaxSizeMB = d.Log.MaxSizeMB
	}
	if c.Shutdown.GracePeriodSeconds < 0 {
		c.Shutdown.GracePeriodSeconds = d.Shutdown.GracePeriodSeconds
	}
	if c.Heartbeat.IntervalSeconds < 1 {
		c.Heartbeat.IntervalSeconds = d.Heartbeat.IntervalSeconds
	}
}

// ///////////////////////////////////////////////
// Loading
// ///////////////////////////////////////////////

// Load reads and decodes the configuration file from dir, applying defaults
// for missing or out-of-range values. Unknown keys are rejected so typos in
// hand-edited files surface instead of being silently ignored.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// ///////////////////////////////////////////////
// Durations
// ///////////////////////////////////////////////

// GracePeriod returns the drain window as a duration.
func (c *Config) GracePeriod() time.Duration {
	return time.Duration(c.Shutdown.GracePeriodSeconds) * time.Second
}

// HeartbeatInterval returns the heartbeat delay as a duration.
func (c *Config) HeartbeatInterval() time.Duration {
	return time.Duration(c.Heartbeat.IntervalSeconds) * time.Second
}

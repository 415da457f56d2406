// Package config holds user-tunable settings with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/mindprint/internal/session"
)

// Settings holds all application configuration.
type Settings struct {
	// DataDir is where session files live.
	DataDir string

	// ExportDir is where exported results are written.
	ExportDir string

	// SessionTimeout is how long an incomplete session stays resumable.
	SessionTimeout time.Duration

	// Retention is how long session files are kept before cleanup.
	Retention time.Duration
}

// Default returns Settings with sensible defaults. DataDir resolution
// follows the env/XDG chain; ExportDir defaults to ~/Documents/Mindprint.
func Default() (Settings, error) {
	dataDir, err := session.DefaultDataDir()
	if err != nil {
		return Settings{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve home dir: %w", err)
	}

	return Settings{
		DataDir:        dataDir,
		ExportDir:      filepath.Join(home, "Documents", "Mindprint"),
		SessionTimeout: session.DefaultTimeout,
		Retention:      session.DefaultRetention,
	}, nil
}

// FromEnv builds Settings from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Settings, error) {
	cfg, err := Default()
	if err != nil {
		return Settings{}, err
	}

	if d := os.Getenv("MINDPRINT_EXPORT_DIR"); d != "" {
		cfg.ExportDir = d
	}
	if t := os.Getenv("MINDPRINT_SESSION_TIMEOUT"); t != "" {
		dur, err := time.ParseDuration(t)
		if err != nil {
			return Settings{}, fmt.Errorf("MINDPRINT_SESSION_TIMEOUT: %w", err)
		}
		cfg.SessionTimeout = dur
	}
	if t := os.Getenv("MINDPRINT_RETENTION"); t != "" {
		dur, err := time.ParseDuration(t)
		if err != nil {
			return Settings{}, fmt.Errorf("MINDPRINT_RETENTION: %w", err)
		}
		cfg.Retention = dur
	}

	return cfg, nil
}

// Validate checks that durations are sane.
func (s Settings) Validate() error {
	if s.SessionTimeout <= 0 {
		return fmt.Errorf("session timeout must be positive, got %s", s.SessionTimeout)
	}
	if s.Retention < s.SessionTimeout {
		return fmt.Errorf("retention %s shorter than session timeout %s", s.Retention, s.SessionTimeout)
	}
	return nil
}

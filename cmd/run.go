package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindprint/internal/app"
	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/config"
	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/session"
)

// buildDeps loads config, verifies the question bank, opens the session
// manager, and sweeps expired session files.
func buildDeps(cmd *cobra.Command) (*session.Manager, *export.Exporter, error) {
	if err := catalog.Load(); err != nil {
		return nil, nil, fmt.Errorf("load question bank: %w", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	mgr, err := session.NewManager(cfg.DataDir, cfg.SessionTimeout, cfg.Retention)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}

	if n := mgr.CleanupExpired(func(err error) {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
	}); n > 0 {
		fmt.Fprintf(os.Stderr, "removed %d expired session file(s)\n", n)
	}

	return mgr, export.NewExporter(cfg.ExportDir), nil
}

// runApp builds dependencies and launches the TUI, optionally starting
// a test or resuming a session directly.
func runApp(cmd *cobra.Command, startLength *catalog.Length, resumeID string) error {
	mgr, exporter, err := buildDeps(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Manager:     mgr,
		Exporter:    exporter,
		StartLength: startLength,
		ResumeID:    resumeID,
	})
}

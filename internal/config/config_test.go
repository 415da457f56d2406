package config

import (
	"testing"
	"time"

	"github.com/abhisek/mindprint/internal/session"
)

func TestDefaults(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir == "" || cfg.ExportDir == "" {
		t.Error("expected non-empty directories")
	}
	if cfg.SessionTimeout != session.DefaultTimeout {
		t.Errorf("timeout %s", cfg.SessionTimeout)
	}
	if cfg.Retention != session.DefaultRetention {
		t.Errorf("retention %s", cfg.Retention)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MINDPRINT_DATA", "/tmp/mindprint-test/sessions")
	t.Setenv("MINDPRINT_EXPORT_DIR", "/tmp/mindprint-test/exports")
	t.Setenv("MINDPRINT_SESSION_TIMEOUT", "45m")
	t.Setenv("MINDPRINT_RETENTION", "72h")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/tmp/mindprint-test/sessions" {
		t.Errorf("data dir %s", cfg.DataDir)
	}
	if cfg.ExportDir != "/tmp/mindprint-test/exports" {
		t.Errorf("export dir %s", cfg.ExportDir)
	}
	if cfg.SessionTimeout != 45*time.Minute {
		t.Errorf("timeout %s", cfg.SessionTimeout)
	}
	if cfg.Retention != 72*time.Hour {
		t.Errorf("retention %s", cfg.Retention)
	}
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("MINDPRINT_SESSION_TIMEOUT", "soon")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for unparsable duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		keep    time.Duration
		wantErr bool
	}{
		{"sane", 30 * time.Minute, 7 * 24 * time.Hour, false},
		{"zero timeout", 0, time.Hour, true},
		{"negative timeout", -time.Minute, time.Hour, true},
		{"retention below timeout", time.Hour, time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{
				DataDir:        "/tmp/x",
				ExportDir:      "/tmp/y",
				SessionTimeout: tt.timeout,
				Retention:      tt.keep,
			}
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

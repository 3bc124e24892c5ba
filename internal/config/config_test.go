package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Filter != "all" {
		t.Errorf("expected default filter 'all', got %q", cfg.Defaults.Filter)
	}
	if cfg.Defaults.Sort != "date_desc" {
		t.Errorf("expected default sort 'date_desc', got %q", cfg.Defaults.Sort)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
	if time.Duration(cfg.Notifications.DueWindow) != 24*time.Hour {
		t.Errorf("expected default due window 24h, got %v", cfg.Notifications.DueWindow)
	}
	if cfg.Storage.DataDir != "~/.taskmaster" {
		t.Errorf("expected default data dir '~/.taskmaster', got %q", cfg.Storage.DataDir)
	}
}

func TestDefaultThemeConfig(t *testing.T) {
	theme := DefaultThemeConfig()

	if theme.ColorAccent == "" || theme.ColorOverdue == "" {
		t.Error("default theme colors should be set")
	}
	if theme.IconTask == "" || theme.IconDone == "" {
		t.Error("default theme icons should be set")
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"24h0m0s", 24 * time.Hour},
		{"90m", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var d Duration
			if err := d.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
			}
			if time.Duration(d) != tt.want {
				t.Errorf("parsed %v, want %v", time.Duration(d), tt.want)
			}

			out, err := d.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			parsed, err := time.ParseDuration(string(out))
			if err != nil || parsed != tt.want {
				t.Errorf("marshaled %q does not round-trip", out)
			}
		})
	}

	var d Duration
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText should reject non-durations")
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{DataDir: "/tmp/tm"}}
	if got := GetDBPath(cfg); got != "/tmp/tm/taskmaster.db" {
		t.Errorf("GetDBPath() = %q", got)
	}
}

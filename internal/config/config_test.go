package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("TRACKER_URL", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ListenAddr != ":8089" {
		t.Errorf("ListenAddr = %q, want :8089", cfg.ListenAddr)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.Tracker.RequestDelay != 2*time.Second {
		t.Errorf("RequestDelay = %v, want 2s", cfg.Tracker.RequestDelay)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("TRACKER_URL", "https://tracker.example.com")
	t.Setenv("TRACKER_TOKEN", "secret")
	t.Setenv("TRACKER_REQUEST_DELAY_SECONDS", "5")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("POLL_INTERVAL_SECONDS", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Tracker.BaseURL != "https://tracker.example.com" {
		t.Errorf("BaseURL = %q", cfg.Tracker.BaseURL)
	}
	if cfg.Tracker.Token != "secret" {
		t.Errorf("Token = %q", cfg.Tracker.Token)
	}
	if cfg.Tracker.RequestDelay != 5*time.Second {
		t.Errorf("RequestDelay = %v, want 5s", cfg.Tracker.RequestDelay)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q, want :9999", cfg.ListenAddr)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Errorf("PollInterval = %v, want 45s", cfg.PollInterval)
	}
}

func TestLoad_InvalidPollIntervalFallsBack(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("POLL_INTERVAL_SECONDS", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s fallback", cfg.PollInterval)
	}
}

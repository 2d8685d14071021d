package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AppName != "mentortrack" {
		t.Errorf("unexpected app name %q", cfg.AppName)
	}
	if cfg.Session.CookieName != "mt_session" {
		t.Errorf("unexpected cookie name %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
	}
	if cfg.Database.URL == "" {
		t.Error("database URL must be derived when DATABASE_URL is unset")
	}
	if cfg.Migrations.Path != "./assets/migrations" {
		t.Errorf("unexpected migrations path %q", cfg.Migrations.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=disable")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := cfg.Address(); got != "127.0.0.1:9090" {
		t.Errorf("unexpected address %q", got)
	}
	if cfg.Session.TTL != time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/app?sslmode=disable" {
		t.Errorf("explicit DATABASE_URL must win, got %q", cfg.Database.URL)
	}
	if cfg.Migrations.Enabled {
		t.Error("RUN_MIGRATIONS=false must disable migrations")
	}
}

func TestGetDurationAcceptsBareSeconds(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Context.RequestTimeout != 30*time.Second {
		t.Errorf("bare integer must be read as seconds, got %v", cfg.Context.RequestTimeout)
	}
}

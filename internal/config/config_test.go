package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr=%s", cfg.App.Addr())
	}
	if cfg.Postgres.MaxConns != 10 || !cfg.Postgres.RunMigrations {
		t.Fatalf("postgres defaults not applied: %+v", cfg.Postgres)
	}
	if cfg.Lifecycle.LockTTL() != 15*time.Second {
		t.Fatalf("lock ttl=%s", cfg.Lifecycle.LockTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_MAX_CONNS", "25")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("LIFECYCLE_LOCK_TTL_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9090" || cfg.Postgres.MaxConns != 25 {
		t.Fatalf("overrides not applied: %+v %+v", cfg.App, cfg.Postgres)
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Fatalf("timeout=%s", cfg.App.RequestTimeout())
	}
	if cfg.Lifecycle.LockTTL() != 3*time.Second {
		t.Fatalf("lock ttl=%s", cfg.Lifecycle.LockTTL())
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}

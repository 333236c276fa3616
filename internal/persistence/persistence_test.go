package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/config"
)

func TestReadMigrationsOrdersSQLFiles(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"002_seed.sql":   "SELECT 2;",
		"001_schema.sql": "SELECT 1;",
		"README.md":      "not a migration",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	migrations, err := readMigrations(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].name != "001_schema.sql" || migrations[1].sql != "SELECT 2;" {
		t.Fatalf("unexpected order: %+v", migrations)
	}
}

func TestReadMigrationsMissingDir(t *testing.T) {
	if _, err := readMigrations(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRepoMigrationsParse(t *testing.T) {
	migrations, err := readMigrations(filepath.Join("..", "..", "migrations"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected at least one migration")
	}
}

func TestUnconfiguredBackends(t *testing.T) {
	logger := zap.NewNop()
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, logger)
	if err != nil {
		t.Fatalf("new postgres: %v", err)
	}
	if pg.Configured() || pg.Ping(context.Background()) == nil {
		t.Fatal("expected unconfigured postgres")
	}
	pg.Close()

	r := NewRedis(context.Background(), config.RedisConfig{}, logger)
	if r.Configured() || r.Ping(context.Background()) == nil {
		t.Fatal("expected unconfigured redis")
	}
	r.Close()

	if err := RunMigrations(context.Background(), nil, "migrations", logger); err != nil {
		t.Fatalf("expected migrations to be skipped, got %v", err)
	}
}

func TestEmployeeLockWithoutClient(t *testing.T) {
	lock := NewEmployeeLock(nil, "", time.Second)
	if got := lock.key(42); got != "staff-service:lifecycle:employee:42" {
		t.Fatalf("unexpected key %q", got)
	}
	if _, err := lock.Acquire(context.Background(), 42); err == nil {
		t.Fatal("expected error without client")
	}
}

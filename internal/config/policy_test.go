package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicy(t *testing.T) {
	t.Run("empty path -> defaults", func(t *testing.T) {
		p, err := LoadPolicy("")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if p.MinimumAgeYears != 18 || p.RehireCoolingOffDays != 90 || p.MaxPayRate.String() != "500" {
			t.Fatalf("unexpected defaults: %+v", p)
		}
	})

	t.Run("missing file -> defaults", func(t *testing.T) {
		p, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if p.MaxVacationHours != 240 || p.MaxSickHours != 480 {
			t.Fatalf("unexpected defaults: %+v", p)
		}
	})

	t.Run("overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		content := "rehire_cooling_off_days: 30\nmax_pay_rate: 750.50\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		p, err := LoadPolicy(path)
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if p.RehireCoolingOffDays != 30 {
			t.Fatalf("cooling off=%d", p.RehireCoolingOffDays)
		}
		if p.MaxPayRate.String() != "750.5" {
			t.Fatalf("max rate=%s", p.MaxPayRate)
		}
		if p.MinimumAgeYears != 18 {
			t.Fatalf("unset keys must keep defaults")
		}
	})

	t.Run("invalid limits rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		if err := os.WriteFile(path, []byte("new_hire_vacation_hours: 999\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadPolicy(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		if err := os.WriteFile(path, []byte("max_sick_hours: [1, 2"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadPolicy(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreDriver != DriverMemory || cfg.Addr() != ":8080" || cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	w, err := cfg.WorkingHours()
	if err != nil {
		t.Fatalf("WorkingHours failed: %v", err)
	}
	if w != schedule.DefaultWorkingHours() {
		t.Fatalf("expected default working hours, got %+v", w)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SLOT_GRANULARITY_MINUTES", "15")
	t.Setenv("WORK_START", "08:00")
	t.Setenv("WORK_END", "24:00")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("STORE_DRIVER", DriverPostgres)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	w, _ := cfg.WorkingHours()
	if w.Granularity != 15 || w.Start != schedule.MustClock("08:00") || w.End != schedule.MinutesPerDay {
		t.Fatalf("unexpected working hours %+v", w)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m session ttl, got %s", cfg.SessionTTL)
	}
}

func TestLoadRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"driver", "STORE_DRIVER", "mongo", "STORE_DRIVER"},
		{"work start", "WORK_START", "9am", "WORK_START"},
		{"lunch outside day", "LUNCH_START", "07:00", "lunch"},
		{"timezone", "TIMEZONE", "Mars/Olympus", "TIMEZONE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestProductionRequiresStrongSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}

	t.Setenv("JWT_SECRET", strings.Repeat("k", 32))
	if _, err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

package seed

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
barbers:
  - id: 1
    name: John Smith
    specialty: Haircuts, Beard Trims
  - id: 2
    name: Mike Johnson
    active: false
services:
  - id: 3
    name: Hair & Beard
    category: Combo
    duration_minutes: 50
    price: 35
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	barbers := f.BookingBarbers()
	if len(barbers) != 2 || !barbers[0].Active || barbers[1].Active {
		t.Fatalf("unexpected barbers %+v", barbers)
	}
	services := f.BookingServices()
	if len(services) != 1 || services[0].DurationMinutes != 50 || !services[0].Active {
		t.Fatalf("unexpected services %+v", services)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "barbers: [", "unmarshal"},
		{"no services", "barbers:\n  - id: 1\n    name: A\n", "validation"},
		{"zero duration", "barbers:\n  - id: 1\n    name: A\nservices:\n  - id: 1\n    name: Cut\n    duration_minutes: 0\n", "DurationMinutes"},
		{"duplicate barber", "barbers:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\nservices:\n  - id: 1\n    name: Cut\n    duration_minutes: 30\n", "duplicate barber"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadShippedSeed(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "cmd", "api", "etc", "seed.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(f.Barbers) != 3 || len(f.Services) != 5 {
		t.Fatalf("expected 3 barbers and 5 services, got %d and %d", len(f.Barbers), len(f.Services))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

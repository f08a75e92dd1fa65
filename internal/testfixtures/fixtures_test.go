package testfixtures

import (
	"context"
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(time.Time{})
	if !c.Now().Equal(ReferenceTime()) {
		t.Fatalf("expected ReferenceTime, got %v", c.Now())
	}

	got := c.Advance(90 * time.Minute)
	if want := ReferenceTime().Add(90 * time.Minute); !got.Equal(want) || !c.Now().Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIDGeneratorSequence(t *testing.T) {
	g := NewIDGenerator("")
	if a, b := g.Next(), g.Next(); a != "appt-1" || b != "appt-2" {
		t.Fatalf("unexpected ids %q %q", a, b)
	}
}

func TestNewShopCatalog(t *testing.T) {
	shop := NewShop()
	svc, err := shop.Catalog.GetService(context.Background(), HairAndBeard)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if svc.DurationMinutes != 50 {
		t.Fatalf("expected 50 minutes, got %d", svc.DurationMinutes)
	}
	if ReferenceDate().String() != "2023-06-12" {
		t.Fatalf("unexpected reference date %s", ReferenceDate())
	}
}

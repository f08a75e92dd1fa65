package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

func TestTransitions(t *testing.T) {
	now := time.Date(2023, 6, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		from   Status
		action func(*Appointment, time.Time) error
		want   Status
		ok     bool
	}{
		{"cancel pending", StatusPending, Cancel, StatusCancelled, true},
		{"cancel confirmed", StatusConfirmed, Cancel, StatusCancelled, true},
		{"cancel completed", StatusCompleted, Cancel, StatusCompleted, false},
		{"cancel cancelled", StatusCancelled, Cancel, StatusCancelled, false},
		{"confirm pending", StatusPending, Confirm, StatusConfirmed, true},
		{"confirm confirmed", StatusConfirmed, Confirm, StatusConfirmed, false},
		{"complete confirmed", StatusConfirmed, Complete, StatusCompleted, true},
		{"complete pending", StatusPending, Complete, StatusCompleted, true},
		{"complete cancelled", StatusCancelled, Complete, StatusCancelled, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ap := &Appointment{Status: tc.from}
			err := tc.action(ap, now)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !domain.IsInvalidState(err) {
				t.Fatalf("expected InvalidStateError, got %v", err)
			}
			if ap.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, ap.Status)
			}
		})
	}
}

func TestCancelStampsTime(t *testing.T) {
	now := time.Date(2023, 6, 12, 10, 0, 0, 0, time.UTC)
	ap := &Appointment{Status: InitialStatus()}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected CancelledAt %s, got %v", now, ap.CancelledAt)
	}
}

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()

	if _, err := r.Get(ctx, "missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	day := schedule.MustDate("2023-06-12")
	seed := []Appointment{
		{ID: "c", CustomerID: 7, BarberID: 1, Date: day.AddDays(1), Time: schedule.MustClock("09:00"), Status: StatusPending},
		{ID: "a", CustomerID: 7, BarberID: 1, Date: day, Time: schedule.MustClock("11:00"), Status: StatusCancelled},
		{ID: "b", CustomerID: 8, BarberID: 2, Date: day, Time: schedule.MustClock("09:00"), Status: StatusPending},
	}
	for _, ap := range seed {
		if err := r.Create(ctx, ap); err != nil {
			t.Fatalf("Create(%s) failed: %v", ap.ID, err)
		}
	}
	if err := r.Create(ctx, seed[0]); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	all, _ := r.List(ctx, Filter{})
	if got := ids(all); got != "b,a,c" {
		t.Fatalf("expected date/time ordering b,a,c, got %s", got)
	}

	customer := uint(7)
	pending := StatusPending
	mine, _ := r.List(ctx, Filter{CustomerID: &customer, Status: &pending})
	if got := ids(mine); got != "c" {
		t.Fatalf("expected c, got %s", got)
	}

	if err := r.Update(ctx, Appointment{ID: "zzz"}); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on update, got %v", err)
	}
}

func ids(aps []Appointment) string {
	out := ""
	for i, ap := range aps {
		if i > 0 {
			out += ","
		}
		out += ap.ID
	}
	return out
}

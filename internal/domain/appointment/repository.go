package appointment

import (
	"context"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

// Filter narrows List; nil fields match everything.
type Filter struct {
	CustomerID *uint
	BarberID   *uint
	Date       *schedule.Date
	Status     *Status
}

func (f Filter) Match(ap Appointment) bool {
	if f.CustomerID != nil && ap.CustomerID != *f.CustomerID {
		return false
	}
	if f.BarberID != nil && ap.BarberID != *f.BarberID {
		return false
	}
	if f.Date != nil && ap.Date != *f.Date {
		return false
	}
	if f.Status != nil && ap.Status != *f.Status {
		return false
	}
	return true
}

// Registry is the canonical owner of appointments.
type Registry interface {
	Create(ctx context.Context, ap Appointment) error

	// Get fails with a domain NotFoundError for unknown ids.
	Get(ctx context.Context, id string) (Appointment, error)

	Update(ctx context.Context, ap Appointment) error

	// Delete exists to compensate a failed multi-step operation.
	Delete(ctx context.Context, id string) error

	// List returns matches ordered by date, then time.
	List(ctx context.Context, f Filter) ([]Appointment, error)
}

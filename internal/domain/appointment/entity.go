package appointment

import (
	"time"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

type Appointment struct {
	ID         string `json:"id"`
	BarberID   uint   `json:"barber_id"`
	CustomerID uint   `json:"customer_id"`
	ServiceID  uint   `json:"service_id"`

	Date            schedule.Date  `json:"date"`
	Time            schedule.Clock `json:"time"`
	DurationMinutes int            `json:"duration_minutes"`

	Status Status `json:"status"`

	// RescheduledTo points at the replacement booking when this one was moved.
	RescheduledTo string `json:"rescheduled_to,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (a Appointment) Key() schedule.DayKey {
	return schedule.DayKey{BarberID: a.BarberID, Date: a.Date}
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *Appointment, now time.Time) error {
	if err := CanCancel(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCancelled
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *Appointment, now time.Time) error {
	if err := CanConfirm(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusConfirmed
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *Appointment, now time.Time) error {
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCompleted
	ap.CompletedAt = &now
	return nil
}

package appointment

import "github.com/BruksfildServices01/slot-scheduler/internal/domain"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Live appointments hold booked slots.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel allows cancelling (and therefore rescheduling) a live appointment.
func CanCancel(current Status) error {
	if !current.IsLive() {
		return domain.InvalidState("appointment_terminal", "cannot cancel a %s appointment", current)
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return domain.InvalidState("invalid_transition", "cannot confirm a %s appointment", current)
	}
	return nil
}

// CanComplete accepts pending too: a walk-in may be served before anyone confirms it.
func CanComplete(current Status) error {
	if !current.IsLive() {
		return domain.InvalidState("appointment_terminal", "cannot complete a %s appointment", current)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

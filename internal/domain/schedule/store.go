package schedule

import "context"

// AvailabilityStore persists the slot grid per barber and day. It performs
// no business validation beyond the slot invariants; callers serialize
// access per day.
type AvailabilityStore interface {
	// GetDay returns the day's slots, or an empty schedule when none are configured.
	GetDay(ctx context.Context, barberID uint, date Date) (DaySchedule, error)

	// SetSlotState fails with a domain NotFoundError when no slot exists at t.
	// Leaving SlotBooked clears the occupant; entering it requires one.
	SetSlotState(ctx context.Context, barberID uint, date Date, t Clock, state SlotState, occupant string) (DaySchedule, error)

	// InsertSlot adds an open slot, failing with a domain DuplicateSlotError
	// when t is already present.
	InsertSlot(ctx context.Context, barberID uint, date Date, t Clock) (DaySchedule, error)

	// ReplaceDay swaps a whole day in one step.
	ReplaceDay(ctx context.Context, day DaySchedule) error
}

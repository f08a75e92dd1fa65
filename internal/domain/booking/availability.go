package booking

import (
	"context"
	"fmt"
	"iter"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

// ComputeAvailableSlots yields, in ascending order, every start time at
// which a service of durationMinutes fits in open contiguous slots.
//
// The sequence is lazy and restartable. Each iteration snapshots the day
// under a shared lock and yields from the snapshot, so a slot yielded here
// may be taken by the time the caller books it.
func (r *Resolver) ComputeAvailableSlots(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	durationMinutes int,
) (iter.Seq2[schedule.Clock, error], error) {
	if durationMinutes <= 0 {
		return nil, domain.InvalidState("invalid_duration", "duration must be positive, got %d", durationMinutes)
	}
	g := r.Granularity()
	need := schedule.SlotsRequired(durationMinutes, g)

	return func(yield func(schedule.Clock, error) bool) {
		day, err := r.GetDay(ctx, barberID, date)
		if err != nil {
			yield(0, err)
			return
		}
		for _, s := range day.Slots {
			if s.State != schedule.SlotOpen {
				continue
			}
			if firstConflict(day, schedule.Run(s.Time, need, g), "") != nil {
				continue
			}
			if !yield(s.Time, nil) {
				return
			}
		}
	}, nil
}

// AvailableSlots collects ComputeAvailableSlots into a slice.
func (r *Resolver) AvailableSlots(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	durationMinutes int,
) ([]schedule.Clock, error) {
	seq, err := r.ComputeAvailableSlots(ctx, barberID, date, durationMinutes)
	if err != nil {
		return nil, err
	}

	out := []schedule.Clock{}
	for t, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ServiceAvailability sizes the run from the service catalog.
func (r *Resolver) ServiceAvailability(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	serviceID uint,
) ([]schedule.Clock, error) {
	svc, err := r.eligible(ctx, barberID, serviceID)
	if err != nil {
		return nil, err
	}
	return r.AvailableSlots(ctx, barberID, date, svc.DurationMinutes)
}

// GetDay reads one day under the shared lock.
func (r *Resolver) GetDay(ctx context.Context, barberID uint, date schedule.Date) (schedule.DaySchedule, error) {
	unlock := r.locks.RLock(ctx, schedule.DayKey{BarberID: barberID, Date: date})
	defer unlock()

	day, err := r.store.GetDay(ctx, barberID, date)
	if err != nil {
		return schedule.DaySchedule{}, fmt.Errorf("loading day %d/%s: %w", barberID, date, err)
	}
	return day, nil
}

// Week returns the seven days starting at the Sunday on or before date.
func (r *Resolver) Week(ctx context.Context, barberID uint, date schedule.Date) ([]schedule.DaySchedule, error) {
	start := date.StartOfWeek()
	out := make([]schedule.DaySchedule, 0, 7)
	for i := range 7 {
		day, err := r.GetDay(ctx, barberID, start.AddDays(i))
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

// OpenDay lays the working-hours grid over a day with no slots and reports
// whether it did. A day that already has slots is returned unchanged.
func (r *Resolver) OpenDay(ctx context.Context, barberID uint, date schedule.Date) (schedule.DaySchedule, bool, error) {
	if _, err := r.barbers.GetBarber(ctx, barberID); err != nil {
		return schedule.DaySchedule{}, false, err
	}

	key := schedule.DayKey{BarberID: barberID, Date: date}
	unlock := r.locks.Lock(ctx, key)
	defer unlock()

	day, err := r.store.GetDay(ctx, barberID, date)
	if err != nil {
		return schedule.DaySchedule{}, false, fmt.Errorf("loading day %s: %w", key, err)
	}
	if len(day.Slots) > 0 {
		return day, false, nil
	}

	day.Slots = r.hours.Grid()
	if err := r.store.ReplaceDay(ctx, day); err != nil {
		return schedule.DaySchedule{}, false, fmt.Errorf("opening day %s: %w", key, err)
	}
	return day, true, nil
}

// InsertSlot adds an ad-hoc open slot to a day. The time must sit on the
// working-hours grid.
func (r *Resolver) InsertSlot(ctx context.Context, barberID uint, date schedule.Date, t schedule.Clock) (schedule.DaySchedule, error) {
	if !t.Valid() {
		return schedule.DaySchedule{}, schedule.ErrInvalidClock
	}
	// Runs only check grid steps, so an off-grid slot could overlap a booking
	// without ever being seen as taken.
	if !r.hours.OnGrid(t) {
		return schedule.DaySchedule{}, domain.InvalidState("off_grid",
			"slot %s is not on the %d-minute grid starting at %s", t, r.hours.Granularity, r.hours.Start)
	}

	unlock := r.locks.Lock(ctx, schedule.DayKey{BarberID: barberID, Date: date})
	defer unlock()

	return r.store.InsertSlot(ctx, barberID, date, t)
}

// ToggleManualAvailability flips a slot between open and blocked. Booked
// slots are never touched; cancel the appointment instead.
func (r *Resolver) ToggleManualAvailability(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	t schedule.Clock,
) (schedule.TimeSlot, error) {
	key := schedule.DayKey{BarberID: barberID, Date: date}
	unlock := r.locks.Lock(ctx, key)
	defer unlock()

	day, err := r.store.GetDay(ctx, barberID, date)
	if err != nil {
		return schedule.TimeSlot{}, fmt.Errorf("loading day %s: %w", key, err)
	}
	slot, ok := day.Slot(t)
	if !ok {
		return schedule.TimeSlot{}, domain.NotFound("slot", key.String()+" "+t.String())
	}

	var next schedule.SlotState
	switch slot.State {
	case schedule.SlotOpen:
		next = schedule.SlotBlocked
	case schedule.SlotBlocked:
		next = schedule.SlotOpen
	default:
		return slot, domain.InvalidState("slot_booked", "slot %s on %s holds appointment %s", t, date, slot.Occupant)
	}

	day, err = r.store.SetSlotState(ctx, barberID, date, t, next, "")
	if err != nil {
		return slot, err
	}
	updated, _ := day.Slot(t)
	return updated, nil
}

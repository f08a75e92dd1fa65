package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

// Options tunes a Resolver. Zero values fall back to the default working
// hours, time.Now and random UUIDs.
type Options struct {
	Hours schedule.WorkingHours
	Now   func() time.Time
	NewID func() string
}

// Resolver is the only component that decides whether a booking is legal.
// Every read-validate-write sequence runs inside the exclusive section of
// the (barber, date) it touches.
type Resolver struct {
	store    schedule.AvailabilityStore
	registry appointment.Registry
	services ServiceCatalog
	barbers  BarberDirectory
	locks    *schedule.DayLocks

	hours schedule.WorkingHours
	now   func() time.Time
	newID func() string
}

func NewResolver(
	store schedule.AvailabilityStore,
	registry appointment.Registry,
	services ServiceCatalog,
	barbers BarberDirectory,
	opts Options,
) *Resolver {
	if opts.Hours.Granularity <= 0 {
		opts.Hours = schedule.DefaultWorkingHours()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &Resolver{
		store:    store,
		registry: registry,
		services: services,
		barbers:  barbers,
		locks:    schedule.NewDayLocks(),
		hours:    opts.Hours,
		now:      opts.Now,
		newID:    opts.NewID,
	}
}

func (r *Resolver) Granularity() int {
	return r.hours.Granularity
}

func (r *Resolver) WorkingHours() schedule.WorkingHours {
	return r.hours
}

type BookRequest struct {
	BarberID   uint
	CustomerID uint
	ServiceID  uint
	Date       schedule.Date
	Time       schedule.Clock
}

// Book reserves the run of slots the service needs starting at req.Time and
// returns a pending appointment occupying them.
func (r *Resolver) Book(ctx context.Context, req BookRequest) (appointment.Appointment, error) {
	if !req.Time.Valid() {
		return appointment.Appointment{}, schedule.ErrInvalidClock
	}

	svc, err := r.eligible(ctx, req.BarberID, req.ServiceID)
	if err != nil {
		return appointment.Appointment{}, err
	}
	run := r.run(req.Time, svc.DurationMinutes)

	key := schedule.DayKey{BarberID: req.BarberID, Date: req.Date}
	unlock := r.locks.Lock(ctx, key)
	defer unlock()

	day, err := r.store.GetDay(ctx, key.BarberID, key.Date)
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("loading day %s: %w", key, err)
	}
	if err := firstConflict(day, run, ""); err != nil {
		return appointment.Appointment{}, err
	}

	ap := appointment.Appointment{
		ID:              r.newID(),
		BarberID:        req.BarberID,
		CustomerID:      req.CustomerID,
		ServiceID:       svc.ID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: svc.DurationMinutes,
		Status:          appointment.InitialStatus(),
		CreatedAt:       r.now(),
	}

	if err := r.occupy(ctx, day, run, ap.ID); err != nil {
		return appointment.Appointment{}, errors.Join(err, r.restore(ctx, day))
	}
	if err := r.registry.Create(ctx, ap); err != nil {
		return appointment.Appointment{}, errors.Join(
			fmt.Errorf("creating appointment: %w", err),
			r.restore(ctx, day),
		)
	}

	return ap, nil
}

// Cancel moves a live appointment to cancelled and frees every slot it
// occupies. Either both changes land or neither does.
func (r *Resolver) Cancel(ctx context.Context, id string) (appointment.Appointment, error) {
	ap, err := r.registry.Get(ctx, id)
	if err != nil {
		return appointment.Appointment{}, err
	}

	unlock := r.locks.Lock(ctx, ap.Key())
	defer unlock()

	// Re-read: a concurrent writer may have moved it on while we queued.
	if ap, err = r.registry.Get(ctx, id); err != nil {
		return appointment.Appointment{}, err
	}
	prev := ap
	if err := appointment.Cancel(&ap, r.now()); err != nil {
		return prev, err
	}

	day, err := r.store.GetDay(ctx, ap.BarberID, ap.Date)
	if err != nil {
		return prev, fmt.Errorf("loading day %s: %w", ap.Key(), err)
	}
	if err := r.vacate(ctx, day, ap.ID); err != nil {
		return prev, errors.Join(err, r.restore(ctx, day))
	}
	if err := r.registry.Update(ctx, ap); err != nil {
		return prev, errors.Join(fmt.Errorf("updating appointment: %w", err), r.restore(ctx, day))
	}

	return ap, nil
}

// Reschedule books the same service for the same customer and barber at a
// new date and time, then cancels the original. The new run is validated
// before anything changes; slots held by the original count as free.
// On failure the original booking is untouched.
func (r *Resolver) Reschedule(
	ctx context.Context,
	id string,
	newDate schedule.Date,
	newTime schedule.Clock,
) (appointment.Appointment, error) {
	if !newTime.Valid() {
		return appointment.Appointment{}, schedule.ErrInvalidClock
	}

	current, err := r.registry.Get(ctx, id)
	if err != nil {
		return appointment.Appointment{}, err
	}
	if err := appointment.CanCancel(current.Status); err != nil {
		return current, err
	}

	svc, err := r.eligible(ctx, current.BarberID, current.ServiceID)
	if err != nil {
		return current, err
	}
	run := r.run(newTime, svc.DurationMinutes)

	oldKey := current.Key()
	newKey := schedule.DayKey{BarberID: current.BarberID, Date: newDate}
	unlock := r.locks.Lock(ctx, oldKey, newKey)
	defer unlock()

	if current, err = r.registry.Get(ctx, id); err != nil {
		return appointment.Appointment{}, err
	}
	if err := appointment.CanCancel(current.Status); err != nil {
		return current, err
	}

	oldDay, err := r.store.GetDay(ctx, oldKey.BarberID, oldKey.Date)
	if err != nil {
		return current, fmt.Errorf("loading day %s: %w", oldKey, err)
	}
	touched := []schedule.DaySchedule{oldDay}
	newDay := oldDay
	if newKey != oldKey {
		if newDay, err = r.store.GetDay(ctx, newKey.BarberID, newKey.Date); err != nil {
			return current, fmt.Errorf("loading day %s: %w", newKey, err)
		}
		touched = append(touched, newDay)
	}

	if err := firstConflict(newDay, run, current.ID); err != nil {
		return current, err
	}

	now := r.now()
	replacement := appointment.Appointment{
		ID:              r.newID(),
		BarberID:        current.BarberID,
		CustomerID:      current.CustomerID,
		ServiceID:       current.ServiceID,
		Date:            newDate,
		Time:            newTime,
		DurationMinutes: svc.DurationMinutes,
		Status:          appointment.InitialStatus(),
		CreatedAt:       now,
	}
	cancelled := current
	if err := appointment.Cancel(&cancelled, now); err != nil {
		return current, err
	}
	cancelled.RescheduledTo = replacement.ID

	fail := func(err error) (appointment.Appointment, error) {
		return current, errors.Join(err, r.restore(ctx, touched...))
	}

	if err := r.vacate(ctx, oldDay, current.ID); err != nil {
		return fail(err)
	}
	if err := r.occupy(ctx, newDay, run, replacement.ID); err != nil {
		return fail(err)
	}
	if err := r.registry.Create(ctx, replacement); err != nil {
		return fail(fmt.Errorf("creating appointment: %w", err))
	}
	if err := r.registry.Update(ctx, cancelled); err != nil {
		return fail(errors.Join(
			fmt.Errorf("updating appointment: %w", err),
			r.registry.Delete(ctx, replacement.ID),
		))
	}

	return replacement, nil
}

// Confirm marks a pending appointment as confirmed by the barber.
func (r *Resolver) Confirm(ctx context.Context, id string) (appointment.Appointment, error) {
	return r.transition(ctx, id, appointment.Confirm)
}

// Complete records service delivery. The slots stay booked.
func (r *Resolver) Complete(ctx context.Context, id string) (appointment.Appointment, error) {
	return r.transition(ctx, id, appointment.Complete)
}

func (r *Resolver) Get(ctx context.Context, id string) (appointment.Appointment, error) {
	return r.registry.Get(ctx, id)
}

func (r *Resolver) List(ctx context.Context, f appointment.Filter) ([]appointment.Appointment, error) {
	return r.registry.List(ctx, f)
}

func (r *Resolver) transition(
	ctx context.Context,
	id string,
	apply func(*appointment.Appointment, time.Time) error,
) (appointment.Appointment, error) {
	ap, err := r.registry.Get(ctx, id)
	if err != nil {
		return appointment.Appointment{}, err
	}

	unlock := r.locks.Lock(ctx, ap.Key())
	defer unlock()

	if ap, err = r.registry.Get(ctx, id); err != nil {
		return appointment.Appointment{}, err
	}
	prev := ap
	if err := apply(&ap, r.now()); err != nil {
		return prev, err
	}
	if err := r.registry.Update(ctx, ap); err != nil {
		return prev, fmt.Errorf("updating appointment: %w", err)
	}
	return ap, nil
}

// eligible checks the barber can take bookings and returns the service.
func (r *Resolver) eligible(ctx context.Context, barberID, serviceID uint) (Service, error) {
	barber, err := r.barbers.GetBarber(ctx, barberID)
	if err != nil {
		return Service{}, err
	}
	if !barber.Active {
		return Service{}, domain.InvalidState("barber_inactive", "barber %d is not taking bookings", barberID)
	}

	svc, err := r.services.GetService(ctx, serviceID)
	if err != nil {
		return Service{}, err
	}
	if !svc.Active {
		return Service{}, domain.InvalidState("service_inactive", "service %d is not offered", serviceID)
	}
	if svc.DurationMinutes <= 0 {
		return Service{}, domain.InvalidState("invalid_duration", "service %d has no duration", serviceID)
	}
	return svc, nil
}

func (r *Resolver) run(start schedule.Clock, durationMinutes int) []schedule.Clock {
	g := r.Granularity()
	return schedule.Run(start, schedule.SlotsRequired(durationMinutes, g), g)
}

// firstConflict returns a ConflictError for the first time in run that is
// missing or not open. Slots held by self are treated as open.
func firstConflict(day schedule.DaySchedule, run []schedule.Clock, self string) error {
	for _, t := range run {
		slot, ok := day.Slot(t)
		switch {
		case !ok:
			return &domain.ConflictError{BarberID: day.BarberID, Date: day.Date.String(), Time: t.String()}
		case slot.State == schedule.SlotOpen:
		case slot.State == schedule.SlotBooked && self != "" && slot.Occupant == self:
		default:
			return &domain.ConflictError{
				BarberID: day.BarberID,
				Date:     day.Date.String(),
				Time:     t.String(),
				State:    string(slot.State),
			}
		}
	}
	return nil
}

func (r *Resolver) occupy(ctx context.Context, day schedule.DaySchedule, run []schedule.Clock, id string) error {
	for _, t := range run {
		if _, err := r.store.SetSlotState(ctx, day.BarberID, day.Date, t, schedule.SlotBooked, id); err != nil {
			return fmt.Errorf("booking slot %s: %w", t, err)
		}
	}
	return nil
}

func (r *Resolver) vacate(ctx context.Context, day schedule.DaySchedule, id string) error {
	for _, t := range day.OccupiedBy(id) {
		if _, err := r.store.SetSlotState(ctx, day.BarberID, day.Date, t, schedule.SlotOpen, ""); err != nil {
			return fmt.Errorf("freeing slot %s: %w", t, err)
		}
	}
	return nil
}

// restore puts snapshots back after a partially applied mutation.
func (r *Resolver) restore(ctx context.Context, days ...schedule.DaySchedule) error {
	var errs []error
	for _, d := range days {
		if err := r.store.ReplaceDay(ctx, d); err != nil {
			errs = append(errs, fmt.Errorf("restoring day %d/%s: %w", d.BarberID, d.Date, err))
		}
	}
	return errors.Join(errs...)
}

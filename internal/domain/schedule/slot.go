package schedule

import (
	"cmp"
	"fmt"
	"slices"
)

type SlotState string

const (
	SlotOpen    SlotState = "open"
	SlotBooked  SlotState = "booked"
	SlotBlocked SlotState = "blocked"
)

func (s SlotState) Valid() bool {
	switch s {
	case SlotOpen, SlotBooked, SlotBlocked:
		return true
	}
	return false
}

// TimeSlot is one granularity-sized unit of a barber's day.
// Occupant holds the appointment id and is set iff State is SlotBooked.
type TimeSlot struct {
	Time     Clock     `json:"time"`
	State    SlotState `json:"state"`
	Occupant string    `json:"occupant,omitempty"`
}

// DaySchedule is the slot list of one barber for one date, sorted by time
// with no duplicates.
type DaySchedule struct {
	BarberID uint       `json:"barber_id"`
	Date     Date       `json:"date"`
	Slots    []TimeSlot `json:"slots"`
}

func (d DaySchedule) Find(t Clock) (int, bool) {
	return slices.BinarySearchFunc(d.Slots, t, func(s TimeSlot, target Clock) int {
		return cmp.Compare(s.Time, target)
	})
}

func (d DaySchedule) Slot(t Clock) (TimeSlot, bool) {
	i, ok := d.Find(t)
	if !ok {
		return TimeSlot{}, false
	}
	return d.Slots[i], true
}

func (d DaySchedule) Clone() DaySchedule {
	d.Slots = slices.Clone(d.Slots)
	if d.Slots == nil {
		d.Slots = []TimeSlot{}
	}
	return d
}

// OccupiedBy returns the times held by the given appointment.
func (d DaySchedule) OccupiedBy(appointmentID string) []Clock {
	var out []Clock
	for _, s := range d.Slots {
		if s.State == SlotBooked && s.Occupant == appointmentID {
			out = append(out, s.Time)
		}
	}
	return out
}

// Validate checks ordering, uniqueness and the occupant/state invariant.
func (d DaySchedule) Validate() error {
	for i, s := range d.Slots {
		if !s.Time.Valid() {
			return fmt.Errorf("slot %d: %w", i, ErrInvalidClock)
		}
		if !s.State.Valid() {
			return fmt.Errorf("slot %s: unknown state %q", s.Time, s.State)
		}
		if (s.State == SlotBooked) != (s.Occupant != "") {
			return fmt.Errorf("slot %s: occupant must be set iff booked", s.Time)
		}
		if i > 0 && d.Slots[i-1].Time >= s.Time {
			return fmt.Errorf("slot %s: slots not strictly ascending", s.Time)
		}
	}
	return nil
}

package schedule

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
)

// DayKey identifies one barber's day.
type DayKey struct {
	BarberID uint
	Date     Date
}

func (k DayKey) String() string {
	return fmt.Sprintf("%d/%s", k.BarberID, k.Date)
}

// MemoryStore is the in-process AvailabilityStore.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[DayKey][]TimeSlot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[DayKey][]TimeSlot)}
}

func (s *MemoryStore) GetDay(_ context.Context, barberID uint, date Date) (DaySchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day(DayKey{barberID, date}), nil
}

func (s *MemoryStore) SetSlotState(
	_ context.Context,
	barberID uint,
	date Date,
	t Clock,
	state SlotState,
	occupant string,
) (DaySchedule, error) {
	if err := CheckSlotWrite(state, occupant); err != nil {
		return DaySchedule{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := DayKey{barberID, date}
	day := s.day(key)
	i, ok := day.Find(t)
	if !ok {
		return DaySchedule{}, domain.NotFound("slot", key.String()+" "+t.String())
	}

	if state != SlotBooked {
		occupant = ""
	}
	day.Slots[i] = TimeSlot{Time: t, State: state, Occupant: occupant}
	s.days[key] = day.Slots
	return day.Clone(), nil
}

func (s *MemoryStore) InsertSlot(_ context.Context, barberID uint, date Date, t Clock) (DaySchedule, error) {
	if !t.Valid() {
		return DaySchedule{}, fmt.Errorf("%w: %d", ErrInvalidClock, int(t))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := DayKey{barberID, date}
	day := s.day(key)
	i, ok := day.Find(t)
	if ok {
		return DaySchedule{}, &domain.DuplicateSlotError{BarberID: barberID, Date: date.String(), Time: t.String()}
	}

	day.Slots = slices.Insert(day.Slots, i, TimeSlot{Time: t, State: SlotOpen})
	s.days[key] = day.Slots
	return day.Clone(), nil
}

func (s *MemoryStore) ReplaceDay(_ context.Context, day DaySchedule) error {
	if err := day.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := DayKey{day.BarberID, day.Date}
	if len(day.Slots) == 0 {
		delete(s.days, key)
		return nil
	}
	s.days[key] = slices.Clone(day.Slots)
	return nil
}

// day returns a private copy; callers hold s.mu.
func (s *MemoryStore) day(key DayKey) DaySchedule {
	return DaySchedule{
		BarberID: key.BarberID,
		Date:     key.Date,
		Slots:    s.days[key],
	}.Clone()
}

// CheckSlotWrite rejects unknown states and a booked state without an occupant.
func CheckSlotWrite(state SlotState, occupant string) error {
	if !state.Valid() {
		return domain.InvalidState("unknown_slot_state", "%q", state)
	}
	if state == SlotBooked && occupant == "" {
		return domain.InvalidState("missing_occupant", "a booked slot needs an occupant")
	}
	return nil
}

var _ AvailabilityStore = (*MemoryStore)(nil)

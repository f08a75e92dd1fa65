package schedule

import (
	"errors"
	"fmt"
)

// DefaultGranularity is the slot length used when none is configured.
const DefaultGranularity = 30

// WorkingHours describes the daily grid a barber's day is seeded from.
// Lunch is disabled when LunchEnd <= LunchStart.
type WorkingHours struct {
	Start       Clock
	End         Clock
	LunchStart  Clock
	LunchEnd    Clock
	Granularity int
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Start:       MustClock("09:00"),
		End:         MustClock("18:00"),
		LunchStart:  MustClock("13:00"),
		LunchEnd:    MustClock("13:30"),
		Granularity: DefaultGranularity,
	}
}

func (w WorkingHours) HasLunch() bool {
	return w.LunchEnd > w.LunchStart
}

func (w WorkingHours) Validate() error {
	if w.Granularity <= 0 || w.Granularity > MinutesPerDay {
		return fmt.Errorf("granularity must be between 1 and %d minutes", MinutesPerDay)
	}
	if !w.Start.Valid() || w.End < 0 || w.End > MinutesPerDay {
		return errors.New("working hours out of range")
	}
	if w.End <= w.Start {
		return errors.New("working hours end must be after start")
	}
	if w.HasLunch() && (w.LunchStart < w.Start || w.LunchEnd > w.End) {
		return errors.New("lunch break must fall within working hours")
	}
	return nil
}

// OnGrid reports whether t falls on a step of the grid anchored at Start.
// Times before Start count when they are a whole number of steps away.
func (w WorkingHours) OnGrid(t Clock) bool {
	return w.Granularity > 0 && (int(t)-int(w.Start))%w.Granularity == 0
}

// Grid builds the slots of a fresh day: one open slot per granularity step
// that fits before End, with steps overlapping lunch blocked.
func (w WorkingHours) Grid() []TimeSlot {
	slots := []TimeSlot{}
	for cur := w.Start; cur.Add(w.Granularity) <= w.End; cur = cur.Add(w.Granularity) {
		state := SlotOpen
		end := cur.Add(w.Granularity)
		if w.HasLunch() && cur < w.LunchEnd && end > w.LunchStart {
			state = SlotBlocked
		}
		slots = append(slots, TimeSlot{Time: cur, State: state})
	}
	return slots
}

// SlotsRequired is the number of consecutive slots a service of the given
// length consumes; partial slots round up.
func SlotsRequired(durationMinutes, granularity int) int {
	if durationMinutes <= 0 || granularity <= 0 {
		return 0
	}
	return (durationMinutes + granularity - 1) / granularity
}

// Run lists the n grid times starting at start.
func Run(start Clock, n, granularity int) []Clock {
	out := make([]Clock, n)
	for i := range out {
		out[i] = start.Add(i * granularity)
	}
	return out
}

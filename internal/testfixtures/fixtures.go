package testfixtures

import (
	"time"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

// Service ids used by Services.
const (
	Haircut      uint = 1
	BeardTrim    uint = 2
	HairAndBeard uint = 3
	HotTowel     uint = 4
	HairColoring uint = 5
)

// ReferenceTime is Monday 2023-06-12 08:00 UTC.
func ReferenceTime() time.Time {
	return time.Date(2023, time.June, 12, 8, 0, 0, 0, time.UTC)
}

// ReferenceDate is the calendar day of ReferenceTime.
func ReferenceDate() schedule.Date {
	return schedule.DateOf(ReferenceTime())
}

// Services is the shop's default menu. Hair coloring is switched off.
func Services() []booking.Service {
	return []booking.Service{
		{ID: Haircut, Name: "Haircut", Category: "Hair", DurationMinutes: 30, Price: 25, Active: true},
		{ID: BeardTrim, Name: "Beard Trim", Category: "Beard", DurationMinutes: 20, Price: 15, Active: true},
		{ID: HairAndBeard, Name: "Hair & Beard", Category: "Combo", DurationMinutes: 50, Price: 35, Active: true},
		{ID: HotTowel, Name: "Hot Towel Shave", Category: "Shave", DurationMinutes: 30, Price: 20, Active: true},
		{ID: HairColoring, Name: "Hair Coloring", Category: "Color", DurationMinutes: 60, Price: 50, Active: false},
	}
}

func Barbers() []booking.Barber {
	return []booking.Barber{
		{ID: 1, Name: "John Smith", Specialty: "Haircuts, Beard Trims", Active: true},
		{ID: 2, Name: "Mike Johnson", Specialty: "Hair Coloring, Styling", Active: true},
		{ID: 3, Name: "David Wilson", Specialty: "Beard Design, Hot Towel Shave", Active: true},
	}
}

// Shop bundles an in-memory resolver with the collaborators tests poke at.
type Shop struct {
	Store    *schedule.MemoryStore
	Registry *appointment.MemoryRegistry
	Catalog  *booking.MemoryCatalog
	Clock    *Clock
	IDs      *IDGenerator
	Resolver *booking.Resolver
}

// NewShop wires a resolver over empty memory stores, the default menu and
// the default working hours.
func NewShop() *Shop {
	s := &Shop{
		Store:    schedule.NewMemoryStore(),
		Registry: appointment.NewMemoryRegistry(),
		Catalog:  booking.NewMemoryCatalog(Services(), Barbers()),
		Clock:    NewClock(time.Time{}),
		IDs:      NewIDGenerator("appt"),
	}
	s.Resolver = booking.NewResolver(s.Store, s.Registry, s.Catalog, s.Catalog, booking.Options{
		Hours: schedule.DefaultWorkingHours(),
		Now:   s.Clock.Now,
		NewID: s.IDs.Next,
	})
	return s
}

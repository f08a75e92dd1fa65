package booking

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
)

// Service is immutable reference data consulted to size a booking.
type Service struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

type Barber struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Active    bool   `json:"active"`
}

// ServiceCatalog resolves service ids. GetService fails with a domain
// NotFoundError for unknown ids.
type ServiceCatalog interface {
	GetService(ctx context.Context, id uint) (Service, error)
	ListServices(ctx context.Context) ([]Service, error)
}

// BarberDirectory resolves barber identities for display and eligibility.
type BarberDirectory interface {
	GetBarber(ctx context.Context, id uint) (Barber, error)
	ListBarbers(ctx context.Context) ([]Barber, error)
}

// MemoryCatalog serves both lookups from memory, typically loaded from the seed file.
type MemoryCatalog struct {
	mu       sync.RWMutex
	services map[uint]Service
	barbers  map[uint]Barber
}

func NewMemoryCatalog(services []Service, barbers []Barber) *MemoryCatalog {
	c := &MemoryCatalog{
		services: make(map[uint]Service, len(services)),
		barbers:  make(map[uint]Barber, len(barbers)),
	}
	for _, s := range services {
		c.services[s.ID] = s
	}
	for _, b := range barbers {
		c.barbers[b.ID] = b
	}
	return c
}

func (c *MemoryCatalog) GetService(_ context.Context, id uint) (Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.services[id]
	if !ok {
		return Service{}, domain.NotFound("service", strconv.FormatUint(uint64(id), 10))
	}
	return s, nil
}

func (c *MemoryCatalog) ListServices(_ context.Context) ([]Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Service) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (c *MemoryCatalog) GetBarber(_ context.Context, id uint) (Barber, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.barbers[id]
	if !ok {
		return Barber{}, domain.NotFound("barber", strconv.FormatUint(uint64(id), 10))
	}
	return b, nil
}

func (c *MemoryCatalog) ListBarbers(_ context.Context) ([]Barber, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Barber, 0, len(c.barbers))
	for _, b := range c.barbers {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b Barber) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

var (
	_ ServiceCatalog  = (*MemoryCatalog)(nil)
	_ BarberDirectory = (*MemoryCatalog)(nil)
)

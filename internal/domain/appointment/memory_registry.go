package appointment

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
)

type MemoryRegistry struct {
	mu    sync.RWMutex
	items map[string]Appointment
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{items: make(map[string]Appointment)}
}

func (r *MemoryRegistry) Create(_ context.Context, ap Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[ap.ID]; ok {
		return domain.InvalidState("appointment_exists", "appointment %s already exists", ap.ID)
	}
	r.items[ap.ID] = ap
	return nil
}

func (r *MemoryRegistry) Get(_ context.Context, id string) (Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.items[id]
	if !ok {
		return Appointment{}, domain.NotFound("appointment", id)
	}
	return ap, nil
}

func (r *MemoryRegistry) Update(_ context.Context, ap Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[ap.ID]; !ok {
		return domain.NotFound("appointment", ap.ID)
	}
	r.items[ap.ID] = ap
	return nil
}

func (r *MemoryRegistry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *MemoryRegistry) List(_ context.Context, f Filter) ([]Appointment, error) {
	r.mu.RLock()
	out := make([]Appointment, 0, len(r.items))
	for _, ap := range r.items {
		if f.Match(ap) {
			out = append(out, ap)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Appointment) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			cmp.Compare(a.Time, b.Time),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out, nil
}

var _ Registry = (*MemoryRegistry)(nil)

package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type ToggleSlot struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewToggleSlot(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *ToggleSlot {
	return &ToggleSlot{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// Execute flips an open slot to blocked or back. Booked slots are refused.
func (uc *ToggleSlot) Execute(
	ctx context.Context,
	actor usecase.Actor,
	barberID uint,
	date string,
	at string,
) (domain.TimeSlot, error) {

	if !actor.CanManage(barberID) {
		return domain.TimeSlot{}, httperr.ErrForbidden
	}
	d, err := usecase.ParseDate(date)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	t, err := usecase.ParseTime(at)
	if err != nil {
		return domain.TimeSlot{}, err
	}

	slot, err := uc.engine.ToggleManualAvailability(ctx, barberID, d, t)
	uc.metrics.TogglesTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "toggle slot", err, zap.Uint("barber_id", barberID), zap.String("date", date), zap.String("time", at))
		return domain.TimeSlot{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "slot_toggled",
		Entity:    "slot",
		EntityID:  domain.DayKey{BarberID: barberID, Date: d}.String() + " " + t.String(),
		Metadata:  map[string]any{"state": slot.State},
	})

	return slot, nil
}

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

type OpenDay struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewOpenDay(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *OpenDay {
	return &OpenDay{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// Execute lays the working-hours grid over an unconfigured day. Days that
// already have slots come back unchanged.
func (uc *OpenDay) Execute(
	ctx context.Context,
	actor usecase.Actor,
	barberID uint,
	date string,
) (domain.DaySchedule, error) {

	if !actor.CanManage(barberID) {
		return domain.DaySchedule{}, httperr.ErrForbidden
	}
	d, err := usecase.ParseDate(date)
	if err != nil {
		return domain.DaySchedule{}, err
	}

	day, created, err := uc.engine.OpenDay(ctx, barberID, d)
	if err != nil {
		usecase.LogFailure(uc.log, "open day", err, zap.Uint("barber_id", barberID), zap.String("date", date))
		return domain.DaySchedule{}, err
	}
	if !created {
		return day, nil
	}

	uc.metrics.DaysOpenedTotal.Inc()
	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "day_opened",
		Entity:    "schedule",
		EntityID:  domain.DayKey{BarberID: barberID, Date: d}.String(),
		Metadata:  map[string]any{"slots": len(day.Slots)},
	})

	return day, nil
}

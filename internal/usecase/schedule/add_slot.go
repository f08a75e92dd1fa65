package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type AddSlot struct {
	engine *booking.Resolver
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewAddSlot(engine *booking.Resolver, audit *audit.Dispatcher, log *zap.Logger) *AddSlot {
	return &AddSlot{engine: engine, audit: audit, log: log}
}

// Execute adds an ad-hoc open slot, e.g. an evening appointment outside
// working hours.
func (uc *AddSlot) Execute(
	ctx context.Context,
	actor usecase.Actor,
	barberID uint,
	date string,
	at string,
) (domain.DaySchedule, error) {

	if !actor.CanManage(barberID) {
		return domain.DaySchedule{}, httperr.ErrForbidden
	}
	d, err := usecase.ParseDate(date)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	t, err := usecase.ParseTime(at)
	if err != nil {
		return domain.DaySchedule{}, err
	}

	day, err := uc.engine.InsertSlot(ctx, barberID, d, t)
	if err != nil {
		usecase.LogFailure(uc.log, "add slot", err, zap.Uint("barber_id", barberID), zap.String("date", date), zap.String("time", at))
		return domain.DaySchedule{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "slot_added",
		Entity:    "slot",
		EntityID:  domain.DayKey{BarberID: barberID, Date: d}.String() + " " + t.String(),
	})

	return day, nil
}

package schedule

import (
	"context"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type ViewSchedule struct {
	engine *booking.Resolver
}

func NewViewSchedule(engine *booking.Resolver) *ViewSchedule {
	return &ViewSchedule{engine: engine}
}

func (uc *ViewSchedule) Day(
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
	return uc.engine.GetDay(ctx, barberID, d)
}

// Week returns Sunday through Saturday around date.
func (uc *ViewSchedule) Week(
	ctx context.Context,
	actor usecase.Actor,
	barberID uint,
	date string,
) ([]domain.DaySchedule, error) {

	if !actor.CanManage(barberID) {
		return nil, httperr.ErrForbidden
	}
	d, err := usecase.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return uc.engine.Week(ctx, barberID, d)
}

package appointment

import (
	"context"

	apperr "github.com/BruksfildServices01/slot-scheduler/internal/domain"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

// visible loads the appointment, reporting one the actor may not see as missing.
func visible(
	ctx context.Context,
	engine *booking.Resolver,
	actor usecase.Actor,
	appointmentID string,
) (domain.Appointment, error) {

	ap, err := engine.Get(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !actor.CanSee(ap) {
		return domain.Appointment{}, apperr.NotFound("appointment", appointmentID)
	}
	return ap, nil
}

package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	apperr "github.com/BruksfildServices01/slot-scheduler/internal/domain"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type CompleteAppointment struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewCompleteAppointment(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor usecase.Actor,
	appointmentID string,
) (domain.Appointment, error) {

	ap, err := barberOwned(ctx, uc.engine, actor, appointmentID)
	if err == nil {
		ap, err = uc.engine.Complete(ctx, appointmentID)
	}
	uc.metrics.TransitionsTotal.WithLabelValues(string(domain.StatusCompleted), metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "complete appointment", err, zap.String("appointment_id", appointmentID))
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return ap, nil
}

// barberOwned loads an appointment on a schedule the actor manages.
func barberOwned(
	ctx context.Context,
	engine *booking.Resolver,
	actor usecase.Actor,
	appointmentID string,
) (domain.Appointment, error) {

	ap, err := engine.Get(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !actor.CanManage(ap.BarberID) {
		return domain.Appointment{}, apperr.NotFound("appointment", appointmentID)
	}
	return ap, nil
}

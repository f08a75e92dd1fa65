package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type ConfirmAppointment struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewConfirmAppointment(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// Execute is the barber acknowledging a pending booking.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor usecase.Actor,
	appointmentID string,
) (domain.Appointment, error) {

	ap, err := barberOwned(ctx, uc.engine, actor, appointmentID)
	if err == nil {
		ap, err = uc.engine.Confirm(ctx, appointmentID)
	}
	uc.metrics.TransitionsTotal.WithLabelValues(string(domain.StatusConfirmed), metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "confirm appointment", err, zap.String("appointment_id", appointmentID))
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "appointment_confirmed",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return ap, nil
}

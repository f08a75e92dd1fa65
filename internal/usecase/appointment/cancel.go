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

type CancelAppointment struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewCancelAppointment(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// Execute cancels an appointment the actor can see and frees its slots.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor usecase.Actor,
	appointmentID string,
) (domain.Appointment, error) {

	ap, err := visible(ctx, uc.engine, actor, appointmentID)
	if err == nil {
		ap, err = uc.engine.Cancel(ctx, appointmentID)
	}
	uc.metrics.CancellationsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "cancel appointment", err, zap.String("appointment_id", appointmentID))
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  ap.ID,
	})

	return ap, nil
}

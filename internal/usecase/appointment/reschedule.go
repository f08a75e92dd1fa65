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

type RescheduleAppointmentInput struct {
	AppointmentID string
	Date          string
	Time          string
}

type RescheduleAppointment struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewRescheduleAppointment(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// Execute moves the appointment and returns its replacement.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in RescheduleAppointmentInput,
) (domain.Appointment, error) {

	date, err := usecase.ParseDate(in.Date)
	if err != nil {
		return domain.Appointment{}, err
	}
	start, err := usecase.ParseTime(in.Time)
	if err != nil {
		return domain.Appointment{}, err
	}

	_, err = visible(ctx, uc.engine, actor, in.AppointmentID)
	var moved domain.Appointment
	if err == nil {
		moved, err = uc.engine.Reschedule(ctx, in.AppointmentID, date, start)
	}
	uc.metrics.ReschedulesTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "reschedule appointment", err,
			zap.String("appointment_id", in.AppointmentID),
			zap.String("date", in.Date),
			zap.String("time", in.Time),
		)
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "appointment_rescheduled",
		Entity:    "appointment",
		EntityID:  in.AppointmentID,
		Metadata: map[string]any{
			"rescheduled_to": moved.ID,
			"date":           moved.Date,
			"time":           moved.Time,
		},
	})

	return moved, nil
}

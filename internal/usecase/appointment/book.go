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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BarberID  uint
	ServiceID uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	engine  *booking.Resolver
	audit   *audit.Dispatcher
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewBookAppointment(
	engine *booking.Resolver,
	audit *audit.Dispatcher,
	m *metrics.Collector,
	log *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		engine:  engine,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books for the calling customer.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in BookAppointmentInput,
) (domain.Appointment, error) {

	date, err := usecase.ParseDate(in.Date)
	if err != nil {
		return domain.Appointment{}, err
	}
	start, err := usecase.ParseTime(in.Time)
	if err != nil {
		return domain.Appointment{}, err
	}

	ap, err := uc.engine.Book(ctx, booking.BookRequest{
		BarberID:   in.BarberID,
		CustomerID: actor.ID,
		ServiceID:  in.ServiceID,
		Date:       date,
		Time:       start,
	})
	uc.metrics.BookingsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		usecase.LogFailure(uc.log, "book appointment", err,
			zap.Uint("barber_id", in.BarberID),
			zap.String("date", in.Date),
			zap.String("time", in.Time),
		)
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.ID,
		ActorRole: string(actor.Role),
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  ap.ID,
		Metadata: map[string]any{
			"barber_id":  ap.BarberID,
			"service_id": ap.ServiceID,
			"date":       ap.Date,
			"time":       ap.Time,
		},
	})

	return ap, nil
}

package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/dto"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

// ListAppointmentsInput fields are optional. BarberID is honoured for admins only.
type ListAppointmentsInput struct {
	Date     string
	Status   string
	BarberID uint
}

type ListAppointments struct {
	engine   *booking.Resolver
	services booking.ServiceCatalog
	barbers  booking.BarberDirectory
}

func NewListAppointments(
	engine *booking.Resolver,
	services booking.ServiceCatalog,
	barbers booking.BarberDirectory,
) *ListAppointments {
	return &ListAppointments{
		engine:   engine,
		services: services,
		barbers:  barbers,
	}
}

// Execute lists customers' own bookings, barbers' own chairs, or anything for admins.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	var f domain.Filter
	switch actor.Role {
	case session.RoleCustomer:
		f.CustomerID = &actor.ID
	case session.RoleBarber:
		f.BarberID = &actor.ID
	case session.RoleAdmin:
		if in.BarberID != 0 {
			f.BarberID = &in.BarberID
		}
	}

	if in.Date != "" {
		date, err := usecase.ParseDate(in.Date)
		if err != nil {
			return nil, err
		}
		f.Date = &date
	}
	if in.Status != "" {
		status, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		f.Status = &status
	}

	appointments, err := uc.engine.List(ctx, f)
	if err != nil {
		return nil, err
	}

	serviceNames := map[uint]string{}
	barberNames := map[uint]string{}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date.String(),
			StartTime:       ap.Time.String(),
			EndTime:         ap.Time.Add(ap.DurationMinutes).String(),
			DurationMinutes: ap.DurationMinutes,
			Status:          string(ap.Status),
			BarberID:        ap.BarberID,
			BarberName:      uc.barberName(ctx, barberNames, ap.BarberID),
			CustomerID:      ap.CustomerID,
			ServiceID:       ap.ServiceID,
			ServiceName:     uc.serviceName(ctx, serviceNames, ap.ServiceID),
			RescheduledTo:   ap.RescheduledTo,
		})
	}

	return out, nil
}

// Names are best effort; a retired service still lists with an empty name.
func (uc *ListAppointments) serviceName(ctx context.Context, cache map[uint]string, id uint) string {
	if name, ok := cache[id]; ok {
		return name
	}
	svc, _ := uc.services.GetService(ctx, id)
	cache[id] = svc.Name
	return svc.Name
}

func (uc *ListAppointments) barberName(ctx context.Context, cache map[uint]string, id uint) string {
	if name, ok := cache[id]; ok {
		return name
	}
	b, _ := uc.barbers.GetBarber(ctx, id)
	cache[id] = b.Name
	return b.Name
}

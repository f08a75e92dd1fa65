package appointment

import (
	"context"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      string
}

type AvailabilityOutput struct {
	BarberID        uint     `json:"barber_id"`
	ServiceID       uint     `json:"service_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}

type GetAvailability struct {
	engine   *booking.Resolver
	services booking.ServiceCatalog
}

func NewGetAvailability(engine *booking.Resolver, services booking.ServiceCatalog) *GetAvailability {
	return &GetAvailability{engine: engine, services: services}
}

// Execute lists start times at which the service fits the barber's open slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (AvailabilityOutput, error) {

	date, err := usecase.ParseDate(in.Date)
	if err != nil {
		return AvailabilityOutput{}, err
	}

	svc, err := uc.services.GetService(ctx, in.ServiceID)
	if err != nil {
		return AvailabilityOutput{}, err
	}

	starts, err := uc.engine.ServiceAvailability(ctx, in.BarberID, date, in.ServiceID)
	if err != nil {
		return AvailabilityOutput{}, err
	}

	slots := make([]string, 0, len(starts))
	for _, t := range starts {
		slots = append(slots, t.String())
	}

	return AvailabilityOutput{
		BarberID:        in.BarberID,
		ServiceID:       svc.ID,
		Date:            date.String(),
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}, nil
}

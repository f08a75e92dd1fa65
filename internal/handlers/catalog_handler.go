package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/slot-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	services     booking.ServiceCatalog
	barbers      booking.BarberDirectory
	availability *ucAppointment.GetAvailability
	calendar     Calendar
}

func NewCatalogHandler(
	services booking.ServiceCatalog,
	barbers booking.BarberDirectory,
	availability *ucAppointment.GetAvailability,
	calendar Calendar,
) *CatalogHandler {
	return &CatalogHandler{
		services:     services,
		barbers:      barbers,
		availability: availability,
		calendar:     calendar,
	}
}

// ======================================================
// SERVICES
// ======================================================

// ListServices returns the catalog. ?active=true hides retired services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.services.ListServices(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if activeOnly(c) {
		kept := services[:0]
		for _, s := range services {
			if s.Active {
				kept = append(kept, s)
			}
		}
		services = kept
	}

	httpresp.List(c, services)
}

// ======================================================
// BARBERS
// ======================================================

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.barbers.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if activeOnly(c) {
		kept := barbers[:0]
		for _, b := range barbers {
			if b.Active {
				kept = append(kept, b)
			}
		}
		barbers = kept
	}

	httpresp.List(c, barbers)
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability lists start times for ?service_id on ?date (default today).
func (h *CatalogHandler) Availability(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "missing_service_id", "service_id query parameter is required")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: uint(serviceID),
		Date:      h.calendar.dateQuery(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func activeOnly(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("active"))
	return v
}

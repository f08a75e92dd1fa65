package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/slot-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/slot-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	cancel     *ucAppointment.CancelAppointment
	reschedule *ucAppointment.RescheduleAppointment
	confirm    *ucAppointment.ConfirmAppointment
	complete   *ucAppointment.CompleteAppointment
	list       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		cancel:     cancel,
		reschedule: reschedule,
		confirm:    confirm,
		complete:   complete,
		list:       list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	Time      string `json:"time" binding:"required,hhmm"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required,isodate"`
	Time string `json:"time" binding:"required,hhmm"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), middleware.Actor(c), ucAppointment.BookAppointmentInput{
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

// List shows the caller's appointments. Admins may narrow by ?barber_id.
func (h *AppointmentHandler) List(c *gin.Context) {
	in := ucAppointment.ListAppointmentsInput{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "barber_id must be a positive integer")
			return
		}
		in.BarberID = uint(id)
	}

	out, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// Reschedule cancels the booking and returns its replacement.
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), middleware.Actor(c), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: c.Param("id"),
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

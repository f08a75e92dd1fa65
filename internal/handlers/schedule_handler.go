package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/slot-scheduler/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/slot-scheduler/internal/usecase/schedule"
)

// ScheduleHandler serves both /me/schedule (the signed-in barber) and
// /barbers/:id/schedule (admins acting on any chair).
type ScheduleHandler struct {
	view     *ucSchedule.ViewSchedule
	open     *ucSchedule.OpenDay
	add      *ucSchedule.AddSlot
	toggle   *ucSchedule.ToggleSlot
	calendar Calendar
}

func NewScheduleHandler(
	view *ucSchedule.ViewSchedule,
	open *ucSchedule.OpenDay,
	add *ucSchedule.AddSlot,
	toggle *ucSchedule.ToggleSlot,
	calendar Calendar,
) *ScheduleHandler {
	return &ScheduleHandler{
		view:     view,
		open:     open,
		add:      add,
		toggle:   toggle,
		calendar: calendar,
	}
}

type OpenDayRequest struct {
	Date string `json:"date" binding:"required,isodate"`
}

type AddSlotRequest struct {
	Date string `json:"date" binding:"required,isodate"`
	Time string `json:"time" binding:"required,hhmm"`
}

// targetBarber is the :id path parameter when present, else the caller.
func targetBarber(c *gin.Context) (uint, bool) {
	if c.Param("id") == "" {
		return middleware.Actor(c).ID, true
	}
	return uintParam(c, "id")
}

func (h *ScheduleHandler) Day(c *gin.Context) {
	barberID, ok := targetBarber(c)
	if !ok {
		return
	}

	day, err := h.view.Day(c.Request.Context(), middleware.Actor(c), barberID, h.calendar.dateQuery(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, day)
}

func (h *ScheduleHandler) Week(c *gin.Context) {
	barberID, ok := targetBarber(c)
	if !ok {
		return
	}

	week, err := h.view.Week(c.Request.Context(), middleware.Actor(c), barberID, h.calendar.dateQuery(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, week)
}

func (h *ScheduleHandler) Open(c *gin.Context) {
	barberID, ok := targetBarber(c)
	if !ok {
		return
	}

	var req OpenDayRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := h.open.Execute(c.Request.Context(), middleware.Actor(c), barberID, req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, day)
}

func (h *ScheduleHandler) AddSlot(c *gin.Context) {
	barberID, ok := targetBarber(c)
	if !ok {
		return
	}

	var req AddSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := h.add.Execute(c.Request.Context(), middleware.Actor(c), barberID, req.Date, req.Time)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, day)
}

// Toggle flips /slots/:time on ?date between open and blocked.
func (h *ScheduleHandler) Toggle(c *gin.Context) {
	barberID, ok := targetBarber(c)
	if !ok {
		return
	}

	slot, err := h.toggle.Execute(c.Request.Context(), middleware.Actor(c), barberID, h.calendar.dateQuery(c), c.Param("time"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, slot)
}

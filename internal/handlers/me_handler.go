package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/slot-scheduler/internal/middleware"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
)

type MeHandler struct {
	barbers booking.BarberDirectory
}

func NewMeHandler(barbers booking.BarberDirectory) *MeHandler {
	return &MeHandler{barbers: barbers}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_not_in_context", "no session")
		return
	}

	out := gin.H{
		"user": gin.H{
			"id":   s.UserID,
			"role": s.Role,
		},
		"expires_at": s.ExpiresAt,
	}

	if s.Role == session.RoleBarber {
		barber, err := h.barbers.GetBarber(c.Request.Context(), s.UserID)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		out["barber"] = barber
	}

	httpresp.OK(c, out)
}

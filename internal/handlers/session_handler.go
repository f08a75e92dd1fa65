package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/slot-scheduler/internal/middleware"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
	barbers  booking.BarberDirectory
	log      *zap.Logger
}

func NewSessionHandler(sessions *session.Manager, barbers booking.BarberDirectory, log *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, barbers: barbers, log: log}
}

// --------- Requests ---------

// SignInRequest is a demo sign-in: there are no passwords, the caller
// names the identity it acts as.
type SignInRequest struct {
	Role   string `json:"role" binding:"required,oneof=customer barber admin"`
	UserID uint   `json:"user_id" binding:"required"`
}

type SignInResponse struct {
	Token     string       `json:"token"`
	UserID    uint         `json:"user_id"`
	Role      session.Role `json:"role"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// --------- Handlers ---------

func (h *SessionHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := session.ParseRole(req.Role)
	if err != nil {
		httperr.BadRequest(c, "invalid_role", err.Error())
		return
	}

	// Barbers sign in as a chair that exists.
	if role == session.RoleBarber {
		if _, err := h.barbers.GetBarber(c.Request.Context(), req.UserID); err != nil {
			httperr.FromError(c, err)
			return
		}
	}

	token, s, err := h.sessions.Issue(req.UserID, role)
	if err != nil {
		h.log.Error("issue session failed", zap.Error(err))
		httperr.Internal(c, "session_issue_failed", "could not create session")
		return
	}

	httpresp.Created(c, SignInResponse{
		Token:     token,
		UserID:    s.UserID,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	})
}

func (h *SessionHandler) SignOut(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.sessions.Revoke(c.Request.Context(), s); err != nil {
		h.log.Error("revoke session failed", zap.String("session_id", s.ID), zap.Error(err))
		httperr.Internal(c, "session_revoke_failed", "could not sign out")
		return
	}

	c.Status(http.StatusNoContent)
}

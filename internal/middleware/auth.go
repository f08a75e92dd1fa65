package middleware

import (
	"errors"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
	"github.com/BruksfildServices01/slot-scheduler/internal/usecase"
)

const ContextSession = "session"

// AuthMiddleware resolves the bearer token into a session.Session stored
// under ContextSession.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "expected a bearer token")
			c.Abort()
			return
		}

		s, err := sessions.Parse(c.Request.Context(), parts[1])
		switch {
		case errors.Is(err, session.ErrRevoked):
			httperr.Unauthorized(c, "session_revoked", "session has been signed out")
			c.Abort()
			return
		case errors.Is(err, session.ErrInvalidToken):
			httperr.Unauthorized(c, "invalid_token", "session token is invalid or expired")
			c.Abort()
			return
		case err != nil:
			_ = c.Error(err)
			httperr.Internal(c, "session_check_failed", "could not verify session")
			c.Abort()
			return
		}

		c.Set(ContextSession, s)
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not listed. It must run after
// AuthMiddleware.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok || !slices.Contains(roles, s.Role) {
			httperr.Forbidden(c, "forbidden", "role not allowed for this route")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// Actor is the caller as the use cases see it. Routes without
// AuthMiddleware get the zero Actor.
func Actor(c *gin.Context) usecase.Actor {
	s, _ := CurrentSession(c)
	return usecase.Actor{ID: s.UserID, Role: s.Role}
}

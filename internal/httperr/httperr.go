package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError renders err with the status its kind maps to. Unknown errors
// become a 500 without leaking the message.
func FromError(c *gin.Context, err error) {
	status, code, message := Classify(err)
	Write(c, status, code, message)
}

func Classify(err error) (status int, code, message string) {
	var (
		business  BusinessError
		notFound  *domain.NotFoundError
		duplicate *domain.DuplicateSlotError
		conflict  *domain.ConflictError
		invalid   *domain.InvalidStateError
	)

	switch {
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "forbidden", "not allowed to act on this resource"
	case errors.As(err, &business):
		return http.StatusBadRequest, business.Code, business.Code
	case errors.Is(err, schedule.ErrInvalidClock):
		return http.StatusBadRequest, "invalid_time", err.Error()
	case errors.Is(err, schedule.ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date", err.Error()
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Resource + "_not_found", notFound.Error()
	case errors.As(err, &duplicate):
		return http.StatusConflict, "slot_exists", duplicate.Error()
	case errors.As(err, &conflict):
		return http.StatusConflict, "slot_unavailable", conflict.Error()
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, invalid.Code, invalid.Error()
	default:
		return http.StatusInternalServerError, "internal_error", "internal error"
	}
}

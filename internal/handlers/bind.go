package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/validators"
)

// bindJSON binds the body and writes a 400 on failure. Malformed dates and
// times get the same codes the use cases return.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	code := "invalid_request"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case validators.TagDate:
				code = "invalid_date"
			case validators.TagClock:
				code = "invalid_time"
			}
		}
	}

	httperr.BadRequest(c, code, err.Error())
	return false
}

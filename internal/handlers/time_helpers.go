package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/timezone"
)

// Calendar resolves "today" in the shop's configured zone.
type Calendar struct {
	Timezone string
	Now      func() time.Time
}

func (cal Calendar) today() string {
	now := time.Now
	if cal.Now != nil {
		now = cal.Now
	}
	return timezone.Today(cal.Timezone, now()).String()
}

// dateQuery reads ?date=YYYY-MM-DD, defaulting to today.
func (cal Calendar) dateQuery(c *gin.Context) string {
	if d := c.Query("date"); d != "" {
		return d
	}
	return cal.today()
}

// uintParam parses a numeric path parameter and writes a 400 when it is not one.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, "path parameter "+name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}

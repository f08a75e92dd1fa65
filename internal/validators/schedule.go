package validators

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

const (
	TagDate  = "isodate"
	TagClock = "hhmm"
)

// Register adds the isodate and hhmm tags to gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(TagDate, isDate); err != nil {
		return fmt.Errorf("registering %s: %w", TagDate, err)
	}
	if err := v.RegisterValidation(TagClock, isClock); err != nil {
		return fmt.Errorf("registering %s: %w", TagClock, err)
	}
	return nil
}

func isDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}

func isClock(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClock(fl.Field().String())
	return err == nil
}

package usecase

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/httperr"
	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
	"github.com/BruksfildServices01/slot-scheduler/internal/session"
)

// Actor is the authenticated caller a use case runs on behalf of.
type Actor struct {
	ID   uint
	Role session.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == session.RoleAdmin
}

// CanManage reports whether the actor may change the barber's schedule.
func (a Actor) CanManage(barberID uint) bool {
	return a.IsAdmin() || (a.Role == session.RoleBarber && a.ID == barberID)
}

// CanSee reports whether the appointment belongs to the actor's side of the chair.
func (a Actor) CanSee(ap appointment.Appointment) bool {
	switch a.Role {
	case session.RoleAdmin:
		return true
	case session.RoleBarber:
		return ap.BarberID == a.ID
	case session.RoleCustomer:
		return ap.CustomerID == a.ID
	}
	return false
}

func ParseDate(s string) (schedule.Date, error) {
	d, err := schedule.ParseDate(s)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

func ParseTime(s string) (schedule.Clock, error) {
	t, err := schedule.ParseClock(s)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return t, nil
}

// LogFailure logs unexpected errors loudly and expected rejections at debug.
func LogFailure(log *zap.Logger, op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if metrics.Outcome(err) == "error" {
		log.Error(op+" failed", fields...)
		return
	}
	log.Debug(op+" rejected", fields...)
}

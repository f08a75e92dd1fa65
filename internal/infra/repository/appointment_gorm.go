package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap appointment.Appointment) error {
	row := appointmentRow(ap)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.InvalidState("appointment_exists", "appointment %s already exists", ap.ID)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) Get(ctx context.Context, id string) (appointment.Appointment, error) {
	var row models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appointment.Appointment{}, domain.NotFound("appointment", id)
		}
		return appointment.Appointment{}, err
	}
	return appointmentFromRow(row), nil
}

// Update writes every column, zero values included.
func (r *AppointmentGormRepository) Update(ctx context.Context, ap appointment.Appointment) error {
	row := appointmentRow(ap)
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("appointment", ap.ID)
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) List(ctx context.Context, f appointment.Filter) ([]appointment.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.Date != nil {
		q = q.Where("date = ?", f.Date.String())
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var rows []models.Appointment
	if err := q.Order("date, time, id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]appointment.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, appointmentFromRow(row))
	}
	return out, nil
}

func appointmentRow(ap appointment.Appointment) models.Appointment {
	return models.Appointment{
		ID:            ap.ID,
		BarberID:      ap.BarberID,
		CustomerID:    ap.CustomerID,
		ServiceID:     ap.ServiceID,
		Date:          ap.Date.String(),
		Time:          int(ap.Time),
		DurationMin:   ap.DurationMinutes,
		Status:        string(ap.Status),
		RescheduledTo: ap.RescheduledTo,
		ConfirmedAt:   ap.ConfirmedAt,
		CancelledAt:   ap.CancelledAt,
		CompletedAt:   ap.CompletedAt,
		CreatedAt:     ap.CreatedAt,
	}
}

func appointmentFromRow(row models.Appointment) appointment.Appointment {
	return appointment.Appointment{
		ID:              row.ID,
		BarberID:        row.BarberID,
		CustomerID:      row.CustomerID,
		ServiceID:       row.ServiceID,
		Date:            schedule.Date(row.Date),
		Time:            schedule.Clock(row.Time),
		DurationMinutes: row.DurationMin,
		Status:          appointment.Status(row.Status),
		RescheduledTo:   row.RescheduledTo,
		ConfirmedAt:     row.ConfirmedAt,
		CancelledAt:     row.CancelledAt,
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
	}
}

var _ appointment.Registry = (*AppointmentGormRepository)(nil)

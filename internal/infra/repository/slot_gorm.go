package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-scheduler/internal/models"
)

// SlotGormStore keeps the slot grid in the slots table, one row per slot.
type SlotGormStore struct {
	db *gorm.DB
}

func NewSlotGormStore(db *gorm.DB) *SlotGormStore {
	return &SlotGormStore{db: db}
}

func (s *SlotGormStore) GetDay(ctx context.Context, barberID uint, date schedule.Date) (schedule.DaySchedule, error) {
	return getDay(s.db.WithContext(ctx), barberID, date)
}

func (s *SlotGormStore) SetSlotState(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	t schedule.Clock,
	state schedule.SlotState,
	occupant string,
) (schedule.DaySchedule, error) {
	if err := schedule.CheckSlotWrite(state, occupant); err != nil {
		return schedule.DaySchedule{}, err
	}
	if state != schedule.SlotBooked {
		occupant = ""
	}

	db := s.db.WithContext(ctx)
	res := db.Model(&models.Slot{}).
		Where("barber_id = ? AND date = ? AND time = ?", barberID, date.String(), int(t)).
		Updates(map[string]any{"state": string(state), "occupant": occupant})
	if res.Error != nil {
		return schedule.DaySchedule{}, translate(res.Error, barberID, date, t)
	}
	if res.RowsAffected == 0 {
		key := schedule.DayKey{BarberID: barberID, Date: date}
		return schedule.DaySchedule{}, domain.NotFound("slot", key.String()+" "+t.String())
	}

	return getDay(db, barberID, date)
}

func (s *SlotGormStore) InsertSlot(ctx context.Context, barberID uint, date schedule.Date, t schedule.Clock) (schedule.DaySchedule, error) {
	if !t.Valid() {
		return schedule.DaySchedule{}, fmt.Errorf("%w: %d", schedule.ErrInvalidClock, int(t))
	}

	db := s.db.WithContext(ctx)
	row := models.Slot{
		BarberID: barberID,
		Date:     date.String(),
		Time:     int(t),
		State:    string(schedule.SlotOpen),
	}
	if err := db.Create(&row).Error; err != nil {
		return schedule.DaySchedule{}, translate(err, barberID, date, t)
	}

	return getDay(db, barberID, date)
}

// ReplaceDay deletes and rewrites the day's rows in one transaction.
func (s *SlotGormStore) ReplaceDay(ctx context.Context, day schedule.DaySchedule) error {
	if err := day.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ? AND date = ?", day.BarberID, day.Date.String()).
			Delete(&models.Slot{}).Error; err != nil {
			return err
		}
		if len(day.Slots) == 0 {
			return nil
		}
		return tx.Create(slotRows(day)).Error
	})
}

func getDay(db *gorm.DB, barberID uint, date schedule.Date) (schedule.DaySchedule, error) {
	var rows []models.Slot
	if err := db.
		Where("barber_id = ? AND date = ?", barberID, date.String()).
		Order("time").
		Find(&rows).Error; err != nil {
		return schedule.DaySchedule{}, err
	}
	return daySchedule(barberID, date, rows), nil
}

func daySchedule(barberID uint, date schedule.Date, rows []models.Slot) schedule.DaySchedule {
	day := schedule.DaySchedule{
		BarberID: barberID,
		Date:     date,
		Slots:    make([]schedule.TimeSlot, 0, len(rows)),
	}
	for _, r := range rows {
		day.Slots = append(day.Slots, schedule.TimeSlot{
			Time:     schedule.Clock(r.Time),
			State:    schedule.SlotState(r.State),
			Occupant: r.Occupant,
		})
	}
	return day
}

func slotRows(day schedule.DaySchedule) []models.Slot {
	rows := make([]models.Slot, 0, len(day.Slots))
	for _, s := range day.Slots {
		rows = append(rows, models.Slot{
			BarberID: day.BarberID,
			Date:     day.Date.String(),
			Time:     int(s.Time),
			State:    string(s.State),
			Occupant: s.Occupant,
		})
	}
	return rows
}

// translate maps the slots unique index violation to a domain error.
// Overlap is the resolver's job; the table only guards exact duplicates.
func translate(err error, barberID uint, date schedule.Date, t schedule.Clock) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.DuplicateSlotError{BarberID: barberID, Date: date.String(), Time: t.String()}
	default:
		return err
	}
}

var _ schedule.AvailabilityStore = (*SlotGormStore)(nil)

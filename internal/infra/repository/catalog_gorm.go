package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain"
	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/slot-scheduler/internal/models"
)

// CatalogGormRepository serves barbers and services from their tables.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (booking.Service, error) {
	var row models.Service
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking.Service{}, domain.NotFound("service", strconv.FormatUint(uint64(id), 10))
		}
		return booking.Service{}, err
	}
	return serviceFromRow(row), nil
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]booking.Service, error) {
	var rows []models.Service
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]booking.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, serviceFromRow(row))
	}
	return out, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *CatalogGormRepository) GetBarber(ctx context.Context, id uint) (booking.Barber, error) {
	var row models.Barber
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking.Barber{}, domain.NotFound("barber", strconv.FormatUint(uint64(id), 10))
		}
		return booking.Barber{}, err
	}
	return barberFromRow(row), nil
}

func (r *CatalogGormRepository) ListBarbers(ctx context.Context) ([]booking.Barber, error) {
	var rows []models.Barber
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]booking.Barber, 0, len(rows))
	for _, row := range rows {
		out = append(out, barberFromRow(row))
	}
	return out, nil
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

// Upsert inserts or overwrites reference data by id.
func (r *CatalogGormRepository) Upsert(ctx context.Context, services []booking.Service, barbers []booking.Barber) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := func() *gorm.DB {
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Select("*")
		}

		if len(barbers) > 0 {
			rows := make([]models.Barber, 0, len(barbers))
			for _, b := range barbers {
				rows = append(rows, models.Barber{ID: b.ID, Name: b.Name, Specialty: b.Specialty, Active: b.Active})
			}
			if err := upsert().Create(&rows).Error; err != nil {
				return err
			}
		}

		if len(services) > 0 {
			rows := make([]models.Service, 0, len(services))
			for _, s := range services {
				rows = append(rows, models.Service{
					ID:          s.ID,
					Name:        s.Name,
					Description: s.Description,
					Category:    s.Category,
					DurationMin: s.DurationMinutes,
					Price:       s.Price,
					Active:      s.Active,
				})
			}
			if err := upsert().Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func serviceFromRow(row models.Service) booking.Service {
	return booking.Service{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Category:        row.Category,
		DurationMinutes: row.DurationMin,
		Price:           row.Price,
		Active:          row.Active,
	}
}

func barberFromRow(row models.Barber) booking.Barber {
	return booking.Barber{
		ID:        row.ID,
		Name:      row.Name,
		Specialty: row.Specialty,
		Active:    row.Active,
	}
}

var (
	_ booking.ServiceCatalog  = (*CatalogGormRepository)(nil)
	_ booking.BarberDirectory = (*CatalogGormRepository)(nil)
)

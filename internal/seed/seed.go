package seed

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/booking"
)

// File is the reference data the shop starts with.
type File struct {
	Barbers  []Barber  `yaml:"barbers" validate:"required,min=1,dive"`
	Services []Service `yaml:"services" validate:"required,min=1,dive"`
}

type Barber struct {
	ID        uint   `yaml:"id" validate:"required"`
	Name      string `yaml:"name" validate:"required"`
	Specialty string `yaml:"specialty"`
	Active    *bool  `yaml:"active"`
}

type Service struct {
	ID              uint    `yaml:"id" validate:"required"`
	Name            string  `yaml:"name" validate:"required"`
	Description     string  `yaml:"description"`
	Category        string  `yaml:"category"`
	DurationMinutes int     `yaml:"duration_minutes" validate:"required,gt=0,lte=1440"`
	Price           float64 `yaml:"price" validate:"gte=0"`
	Active          *bool   `yaml:"active"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed YAML: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("seed validation failed: %w", err)
	}
	if err := f.checkUnique(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) checkUnique() error {
	barbers := make(map[uint]bool, len(f.Barbers))
	for _, b := range f.Barbers {
		if barbers[b.ID] {
			return fmt.Errorf("seed validation failed: duplicate barber id %d", b.ID)
		}
		barbers[b.ID] = true
	}
	services := make(map[uint]bool, len(f.Services))
	for _, s := range f.Services {
		if services[s.ID] {
			return fmt.Errorf("seed validation failed: duplicate service id %d", s.ID)
		}
		services[s.ID] = true
	}
	return nil
}

func (f *File) BookingBarbers() []booking.Barber {
	out := make([]booking.Barber, 0, len(f.Barbers))
	for _, b := range f.Barbers {
		out = append(out, booking.Barber{
			ID:        b.ID,
			Name:      b.Name,
			Specialty: b.Specialty,
			Active:    activeOrDefault(b.Active),
		})
	}
	return out
}

func (f *File) BookingServices() []booking.Service {
	out := make([]booking.Service, 0, len(f.Services))
	for _, s := range f.Services {
		out = append(out, booking.Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Category:        s.Category,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Active:          activeOrDefault(s.Active),
		})
	}
	return out
}

func activeOrDefault(v *bool) bool {
	return v == nil || *v
}

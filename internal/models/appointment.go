package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID   uint `gorm:"not null;index:idx_appointment_barber_day,priority:1" json:"barber_id"`
	CustomerID uint `gorm:"not null;index" json:"customer_id"`
	ServiceID  uint `gorm:"not null" json:"service_id"`

	Date        string `gorm:"size:10;not null;index:idx_appointment_barber_day,priority:2" json:"date"`
	Time        int    `gorm:"not null" json:"time"`
	DurationMin int    `gorm:"not null" json:"duration_min"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	RescheduledTo string `gorm:"size:36" json:"rescheduled_to"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

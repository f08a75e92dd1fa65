package models

import "time"

// Slot is one row of a barber's day grid. Time is minutes after midnight.
type Slot struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"not null;uniqueIndex:idx_slot_barber_day_time,priority:1" json:"barber_id"`
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_slot_barber_day_time,priority:2" json:"date"`
	Time     int    `gorm:"not null;uniqueIndex:idx_slot_barber_day_time,priority:3" json:"time"`

	State    string `gorm:"size:10;not null;default:'open'" json:"state"`
	Occupant string `gorm:"size:36;index" json:"occupant"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

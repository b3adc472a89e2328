package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"size:50;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:15" json:"customer_phone"`

	PartySize int `json:"party_size"`

	ReservationDate string `gorm:"size:10;index" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string `gorm:"size:5" json:"reservation_time"`        // HH:mm

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

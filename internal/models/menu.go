package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Read-only display data. There is no write path for the menu.

type MenuCategory struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	DisplayOrder int    `json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type MenuItem struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CategoryID string       `gorm:"type:uuid;index" json:"category_id"`
	Category   MenuCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`

	// Either a public URL or an object key resolved to a presigned URL at read time.
	ImageURL string `gorm:"size:255" json:"image_url"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

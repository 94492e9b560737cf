package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies rooms within a hotel. The name is unique per hotel.
type Category struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID     uuid.UUID `gorm:"type:char(36);uniqueIndex:idx_hotel_category;column:hotel_id" json:"hotel_id"`
	Name        string    `gorm:"size:128;uniqueIndex:idx_hotel_category" json:"name"`
	Description string    `gorm:"size:512" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

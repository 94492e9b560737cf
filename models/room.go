package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID    uuid.UUID  `gorm:"type:char(36);uniqueIndex:idx_hotel_room;column:hotel_id" json:"hotel_id"`
	CategoryID *uuid.UUID `gorm:"type:char(36);column:category_id" json:"category_id,omitempty"`
	RoomNumber string     `gorm:"size:32;uniqueIndex:idx_hotel_room;column:room_number" json:"room_number"`
	Floor      string     `gorm:"size:16" json:"floor"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Hotel    Hotel     `gorm:"foreignKey:HotelID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

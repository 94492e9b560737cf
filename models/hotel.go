package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hotel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Address     string    `gorm:"size:512" json:"address"`
	Phone       string    `gorm:"size:32" json:"phone"`
	TotalRooms  int       `gorm:"column:total_rooms" json:"total_rooms"`
	CreatedByID uuid.UUID `gorm:"type:char(36);index;column:created_by_id" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`

	// Guest history is never cascaded away with the hotel; assignment and
	// room rows go with it.
	Stays       []GuestStay       `gorm:"foreignKey:HotelID;constraint:OnDelete:RESTRICT" json:"-"`
	Assignments []HotelAssignment `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Rooms       []Room            `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Categories  []Category        `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentInactive AssignmentStatus = "inactive"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentActive, AssignmentInactive:
		return true
	}
	return false
}

// HotelAssignment links a manager to a hotel. Access is revoked by flipping
// status to inactive, not by deleting the row, so it can be restored without
// creating duplicates.
type HotelAssignment struct {
	ID        uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID   uuid.UUID        `gorm:"type:char(36);uniqueIndex:idx_hotel_manager;column:hotel_id" json:"hotel_id"`
	ManagerID uuid.UUID        `gorm:"type:char(36);uniqueIndex:idx_hotel_manager;column:manager_id" json:"manager_id"`
	Status    AssignmentStatus `gorm:"size:16;default:active" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Hotel   Hotel `gorm:"foreignKey:HotelID" json:"-"`
	Manager User  `gorm:"foreignKey:ManagerID" json:"-"`
}

func (a *HotelAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

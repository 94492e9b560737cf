package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu is a food item scoped to its creator. HalfPlatePrice is nullable:
// not every item is sold by the half plate.
type Menu struct {
	ID             uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	Name           string           `gorm:"size:255" json:"name"`
	HalfPlatePrice *decimal.Decimal `gorm:"type:decimal(10,2);column:half_plate_price" json:"half_plate_price,omitempty"`
	FullPlatePrice decimal.Decimal  `gorm:"type:decimal(10,2);column:full_plate_price" json:"full_plate_price"`
	CreatedByID    uuid.UUID        `gorm:"type:char(36);index;column:created_by_id" json:"created_by_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMode is a creator-scoped label (cash, UPI, card, ...) used both for
// guest payments and hotel expense reporting.
type PaymentMode struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	PaymentMode string    `gorm:"size:64;column:payment_mode" json:"payment_mode"`
	CreatedByID uuid.UUID `gorm:"type:char(36);index;column:created_by_id" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (p *PaymentMode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

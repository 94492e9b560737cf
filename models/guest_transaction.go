package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentType string

const (
	PaymentAdvance PaymentType = "advance"
	PaymentPartial PaymentType = "partial"
	PaymentFinal   PaymentType = "final"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentAdvance, PaymentPartial, PaymentFinal:
		return true
	}
	return false
}

// GuestTransaction is an append-only ledger entry. Same-day entries of the
// same type are merged by summing amount rather than inserting duplicates.
type GuestTransaction struct {
	ID            uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:char(36);index;column:booking_id" json:"booking_id"`
	PaymentType   PaymentType     `gorm:"size:16;column:payment_type" json:"payment_type"`
	PaymentModeID uuid.UUID       `gorm:"type:char(36);column:payment_mode_id" json:"payment_mode_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentDate   datatypes.Date  `gorm:"column:payment_date" json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Booking     GuestStay   `gorm:"foreignKey:BookingID" json:"-"`
	PaymentMode PaymentMode `gorm:"foreignKey:PaymentModeID" json:"-"`
}

func (t *GuestTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

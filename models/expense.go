package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Expense is a hotel operating expense (groceries, maintenance, salaries),
// distinct from GuestExpense which is billed to a stay.
type Expense struct {
	ID            uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID       uuid.UUID       `gorm:"type:char(36);index;column:hotel_id" json:"hotel_id"`
	Title         string          `gorm:"size:255" json:"title"`
	PaymentModeID uuid.UUID       `gorm:"type:char(36);column:payment_mode_id" json:"payment_mode_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	ExpenseDate   datatypes.Date  `gorm:"column:expense_date" json:"expense_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Hotel       Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	PaymentMode PaymentMode `gorm:"foreignKey:PaymentModeID" json:"-"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

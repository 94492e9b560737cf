package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExpenseType string

const (
	ExpenseFood    ExpenseType = "food"
	ExpenseLaundry ExpenseType = "laundry"
	ExpenseOthers  ExpenseType = "others"
)

func (e ExpenseType) Valid() bool {
	switch e {
	case ExpenseFood, ExpenseLaundry, ExpenseOthers:
		return true
	}
	return false
}

// GuestExpense targets one row per (booking, type, day); same-day entries of
// the same type merge by summing amount.
type GuestExpense struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	BookingID   uuid.UUID       `gorm:"type:char(36);index;column:booking_id" json:"booking_id"`
	ExpenseType ExpenseType     `gorm:"size:16;column:expense_type" json:"expense_type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	ExpenseDate datatypes.Date  `gorm:"column:expense_date" json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Booking    GuestStay        `gorm:"foreignKey:BookingID" json:"-"`
	FoodOrders []GuestFoodOrder `gorm:"foreignKey:GuestExpenseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *GuestExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PortionType string

const (
	PortionHalf PortionType = "half"
	PortionFull PortionType = "full"
)

func (p PortionType) Valid() bool {
	switch p {
	case PortionHalf, PortionFull:
		return true
	}
	return false
}

// GuestFoodOrder is one priced line of a food expense. The parent
// GuestExpense.Amount is always the sum of its lines.
type GuestFoodOrder struct {
	ID             uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	GuestExpenseID uuid.UUID       `gorm:"type:char(36);index;column:guest_expense_id" json:"guest_expense_id"`
	MenuID         uuid.UUID       `gorm:"type:char(36);column:menu_id" json:"menu_id"`
	PortionType    PortionType     `gorm:"size:8;column:portion_type" json:"portion_type"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);column:unit_price" json:"unit_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	GuestExpense GuestExpense `gorm:"foreignKey:GuestExpenseID" json:"-"`
	Menu         Menu         `gorm:"foreignKey:MenuID" json:"-"`
}

func (o *GuestFoodOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

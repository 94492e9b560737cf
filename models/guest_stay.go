package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GuestStay is a booking record from check-in to (optional) check-out.
// SerialNo is a globally unique integer sequence assigned at creation and
// never reused, even after deletes.
type GuestStay struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	HotelID  uuid.UUID `gorm:"type:char(36);index;column:hotel_id" json:"hotel_id"`
	SerialNo int       `gorm:"uniqueIndex;column:serial_no" json:"serial_no"`

	GuestName string `gorm:"size:255" json:"guest_name"`
	PhoneNo   string `gorm:"size:32" json:"phone_no"`
	RoomNo    string `gorm:"size:32" json:"room_no"`

	CheckinDate  datatypes.Date  `gorm:"column:checkin_date" json:"checkin_date"`
	CheckinTime  string          `gorm:"size:8;column:checkin_time" json:"checkin_time"`
	CheckoutDate *datatypes.Date `gorm:"column:checkout_date" json:"checkout_date,omitempty"`
	CheckoutTime *string         `gorm:"size:8;column:checkout_time" json:"checkout_time,omitempty"`

	Rent decimal.Decimal `gorm:"type:decimal(10,2)" json:"rent"`
	Bill decimal.Decimal `gorm:"type:decimal(10,2)" json:"bill"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotel        Hotel              `gorm:"foreignKey:HotelID" json:"-"`
	Transactions []GuestTransaction `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
	Expenses     []GuestExpense     `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *GuestStay) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CheckinAt combines the stored date and HH:MM time into one instant.
func (s *GuestStay) CheckinAt() time.Time {
	return combineDateTime(time.Time(s.CheckinDate), s.CheckinTime)
}

// CheckoutAt returns the checkout instant, or zero time while the guest is
// still checked in.
func (s *GuestStay) CheckoutAt() time.Time {
	if s.CheckoutDate == nil {
		return time.Time{}
	}
	clock := ""
	if s.CheckoutTime != nil {
		clock = *s.CheckoutTime
	}
	return combineDateTime(time.Time(*s.CheckoutDate), clock)
}

func combineDateTime(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}

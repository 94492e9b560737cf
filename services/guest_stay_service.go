package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

// GuestStayService owns the guest ledger: stay lifecycle, same-day payment
// and expense merging, and the pending-balance computation.
type GuestStayService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewGuestStayService(db *gorm.DB, access *AccessService) *GuestStayService {
	return &GuestStayService{DB: db, Access: access}
}

type CreateStayInput struct {
	HotelID     uuid.UUID
	GuestName   string
	PhoneNo     string
	RoomNo      string
	CheckinDate datatypes.Date
	CheckinTime string
	Rent        decimal.Decimal

	// Optional advance taken at check-in; committed in the same transaction
	// as the stay itself.
	AdvanceAmount *decimal.Decimal
	PaymentModeID *uuid.UUID
}

type UpdateStayInput struct {
	GuestName    *string
	PhoneNo      *string
	RoomNo       *string
	Rent         *decimal.Decimal
	CheckoutDate *datatypes.Date
	CheckoutTime *string
}

type PaymentInput struct {
	PaymentType   models.PaymentType
	PaymentModeID uuid.UUID
	Amount        decimal.Decimal
}

type ExpenseInput struct {
	ExpenseType models.ExpenseType
	Amount      decimal.Decimal
}

// PendingBreakdown is the derived ledger position of a stay as of a date.
type PendingBreakdown struct {
	TotalBill     decimal.Decimal
	TotalFood     decimal.Decimal
	TotalPayments decimal.Decimal
	Pending       decimal.Decimal
}

// StayWithBalance pairs a stay with its computed figures for list responses.
type StayWithBalance struct {
	Stay    models.GuestStay
	Balance PendingBreakdown
}

func (s *GuestStayService) CreateStay(caller models.Caller, in CreateStayInput) (*models.GuestStay, error) {
	if err := s.Access.Authorize(caller, in.HotelID); err != nil {
		return nil, err
	}
	if in.GuestName == "" {
		return nil, utils.ValidationError("guest name is required")
	}
	if in.Rent.IsNegative() {
		return nil, utils.ValidationError("rent must not be negative")
	}
	if in.AdvanceAmount != nil {
		if in.AdvanceAmount.IsNegative() {
			return nil, utils.ValidationError("advance amount must not be negative")
		}
		if in.PaymentModeID == nil {
			return nil, utils.ValidationError("payment mode is required for an advance payment")
		}
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", in.HotelID).Error; err != nil {
		return nil, utils.WrapDBError(err, "hotel")
	}
	if in.PaymentModeID != nil {
		var mode models.PaymentMode
		if err := s.DB.First(&mode, "id = ?", *in.PaymentModeID).Error; err != nil {
			return nil, utils.WrapDBError(err, "payment mode")
		}
	}

	stay := models.GuestStay{
		HotelID:     in.HotelID,
		GuestName:   in.GuestName,
		PhoneNo:     in.PhoneNo,
		RoomNo:      in.RoomNo,
		CheckinDate: in.CheckinDate,
		CheckinTime: in.CheckinTime,
		Rent:        in.Rent,
		Bill:        in.Rent, // one night accrues from day zero
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// serial_no = max+1 inside the insert transaction; the unique index
		// turns a lost race into a Conflict instead of a silent duplicate.
		var maxSerial int
		if err := tx.Model(&models.GuestStay{}).
			Select("COALESCE(MAX(serial_no), 0)").
			Row().Scan(&maxSerial); err != nil {
			return utils.InternalError(err)
		}
		stay.SerialNo = maxSerial + 1

		if err := tx.Create(&stay).Error; err != nil {
			return utils.WrapDBError(err, "guest stay")
		}

		if in.AdvanceAmount != nil && in.AdvanceAmount.IsPositive() {
			advance := models.GuestTransaction{
				BookingID:     stay.ID,
				PaymentType:   models.PaymentAdvance,
				PaymentModeID: *in.PaymentModeID,
				Amount:        *in.AdvanceAmount,
				PaymentDate:   in.CheckinDate,
			}
			if err := tx.Create(&advance).Error; err != nil {
				return utils.WrapDBError(err, "guest transaction")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stay, nil
}

func (s *GuestStayService) UpdateStay(caller models.Caller, bookingID uuid.UUID, in UpdateStayInput) (*models.GuestStay, error) {
	stay, err := s.loadStay(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return nil, err
	}

	if in.GuestName != nil {
		stay.GuestName = *in.GuestName
	}
	if in.PhoneNo != nil {
		stay.PhoneNo = *in.PhoneNo
	}
	if in.RoomNo != nil {
		stay.RoomNo = *in.RoomNo
	}
	if in.Rent != nil {
		if in.Rent.IsNegative() {
			return nil, utils.ValidationError("rent must not be negative")
		}
		stay.Rent = *in.Rent
	}
	if in.CheckoutDate != nil {
		stay.CheckoutDate = in.CheckoutDate
		stay.CheckoutTime = in.CheckoutTime
		if !stay.CheckoutAt().After(stay.CheckinAt()) {
			return nil, utils.ValidationError("Check-out date/time must be after check-in date/time")
		}
	}

	// Accrued room charge: one night is billed even for a same-day checkout.
	nights := 1
	if stay.CheckoutDate != nil {
		if d := utils.DaysBetween(stay.CheckinDate, *stay.CheckoutDate) + 1; d > nights {
			nights = d
		}
	}
	stay.Bill = stay.Rent.Mul(decimal.NewFromInt(int64(nights)))

	if err := s.DB.Save(stay).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest stay")
	}
	return stay, nil
}

// RecordPaymentOrExpense applies a payment and/or a guest expense to a stay
// in one transaction. Same-day, same-type entries merge by summing into the
// existing row instead of inserting a duplicate.
//
// The read-check and insert are not guarded by a row lock: two concurrent
// calls for the same (booking, type, day) can both miss the existing row and
// both insert. The transaction boundary alone does not close that window.
func (s *GuestStayService) RecordPaymentOrExpense(caller models.Caller, bookingID uuid.UUID, payment *PaymentInput, expense *ExpenseInput) error {
	if payment == nil && expense == nil {
		return utils.ValidationError("nothing to record: supply a payment or an expense")
	}
	stay, err := s.loadStay(bookingID)
	if err != nil {
		return err
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return err
	}

	if payment != nil {
		if !payment.PaymentType.Valid() {
			return utils.ValidationError("invalid payment type %q", payment.PaymentType)
		}
		if payment.Amount.IsNegative() {
			return utils.ValidationError("payment amount must not be negative")
		}
		var mode models.PaymentMode
		if err := s.DB.First(&mode, "id = ?", payment.PaymentModeID).Error; err != nil {
			return utils.WrapDBError(err, "payment mode")
		}
	}
	if expense != nil {
		if !expense.ExpenseType.Valid() {
			return utils.ValidationError("invalid expense type %q", expense.ExpenseType)
		}
		if expense.Amount.IsNegative() {
			return utils.ValidationError("expense amount must not be negative")
		}
	}

	today := utils.Today()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if payment != nil {
			if err := mergePayment(tx, stay.ID, *payment, today); err != nil {
				return err
			}
		}
		if expense != nil {
			if err := mergeExpense(tx, stay.ID, *expense, today); err != nil {
				return err
			}
		}
		return nil
	})
}

func mergePayment(tx *gorm.DB, bookingID uuid.UUID, in PaymentInput, day datatypes.Date) error {
	var existing models.GuestTransaction
	err := tx.Where("booking_id = ? AND payment_type = ? AND payment_date = ?",
		bookingID, in.PaymentType, day).First(&existing).Error
	switch {
	case err == nil:
		existing.Amount = existing.Amount.Add(in.Amount)
		existing.PaymentModeID = in.PaymentModeID
		if err := tx.Save(&existing).Error; err != nil {
			return utils.WrapDBError(err, "guest transaction")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := models.GuestTransaction{
			BookingID:     bookingID,
			PaymentType:   in.PaymentType,
			PaymentModeID: in.PaymentModeID,
			Amount:        in.Amount,
			PaymentDate:   day,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return utils.WrapDBError(err, "guest transaction")
		}
		return nil
	default:
		return utils.InternalError(err)
	}
}

func mergeExpense(tx *gorm.DB, bookingID uuid.UUID, in ExpenseInput, day datatypes.Date) error {
	var existing models.GuestExpense
	err := tx.Where("booking_id = ? AND expense_type = ? AND expense_date = ?",
		bookingID, in.ExpenseType, day).First(&existing).Error
	switch {
	case err == nil:
		existing.Amount = existing.Amount.Add(in.Amount)
		if err := tx.Save(&existing).Error; err != nil {
			return utils.WrapDBError(err, "guest expense")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := models.GuestExpense{
			BookingID:   bookingID,
			ExpenseType: in.ExpenseType,
			Amount:      in.Amount,
			ExpenseDate: day,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return utils.WrapDBError(err, "guest expense")
		}
		return nil
	default:
		return utils.InternalError(err)
	}
}

// ComputePending derives the balance owed as of a date:
//
//	pending = max(0, rent×nights + food − payments)
//
// where nights counts both endpoints (day zero is still one night), food
// sums food-type guest expenses in [checkin, asOf] and payments sums
// advance, partial and final transactions in the same window. Overpayment
// never produces a refundable balance; the result clamps at zero.
func (s *GuestStayService) ComputePending(bookingID uuid.UUID, asOf datatypes.Date) (*PendingBreakdown, error) {
	stay, err := s.loadStay(bookingID)
	if err != nil {
		return nil, err
	}
	return s.computePendingFor(stay, asOf)
}

func (s *GuestStayService) computePendingFor(stay *models.GuestStay, asOf datatypes.Date) (*PendingBreakdown, error) {
	accrued, err := s.sumAccrued(stay, asOf)
	if err != nil {
		return nil, err
	}
	food, err := sumGuestExpenses(s.DB, stay.ID, models.ExpenseFood, stay.CheckinDate, asOf)
	if err != nil {
		return nil, err
	}
	payments, err := sumPayments(s.DB, stay.ID, stay.CheckinDate, asOf)
	if err != nil {
		return nil, err
	}

	pending := accrued.Add(food).Sub(payments)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	return &PendingBreakdown{
		TotalBill:     accrued,
		TotalFood:     food,
		TotalPayments: payments,
		Pending:       pending,
	}, nil
}

// sumAccrued is the only implementation of the room-charge formula.
func (s *GuestStayService) sumAccrued(stay *models.GuestStay, asOf datatypes.Date) (decimal.Decimal, error) {
	nights := utils.DaysBetween(stay.CheckinDate, asOf) + 1
	if nights < 1 {
		nights = 1
	}
	return stay.Rent.Mul(decimal.NewFromInt(int64(nights))), nil
}

func sumGuestExpenses(db *gorm.DB, bookingID uuid.UUID, expenseType models.ExpenseType, from, to datatypes.Date) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Model(&models.GuestExpense{}).
		Where("booking_id = ? AND expense_type = ? AND expense_date BETWEEN ? AND ?",
			bookingID, expenseType, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, utils.InternalError(err)
	}
	return total, nil
}

func sumPayments(db *gorm.DB, bookingID uuid.UUID, from, to datatypes.Date) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Model(&models.GuestTransaction{}).
		Where("booking_id = ? AND payment_type IN ? AND payment_date BETWEEN ? AND ?",
			bookingID,
			[]models.PaymentType{models.PaymentAdvance, models.PaymentPartial, models.PaymentFinal},
			from, to).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, utils.InternalError(err)
	}
	return total, nil
}

func (s *GuestStayService) GetStay(caller models.Caller, bookingID uuid.UUID, asOf datatypes.Date) (*StayWithBalance, error) {
	stay, err := s.loadStay(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return nil, err
	}
	balance, err := s.computePendingFor(stay, asOf)
	if err != nil {
		return nil, err
	}
	return &StayWithBalance{Stay: *stay, Balance: *balance}, nil
}

// ListStays returns the hotel's stays, newest first, each with its pending
// balance as of the given date.
func (s *GuestStayService) ListStays(caller models.Caller, hotelID uuid.UUID, asOf datatypes.Date, page, limit int) ([]StayWithBalance, int64, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.DB.Model(&models.GuestStay{}).Where("hotel_id = ?", hotelID).Count(&total).Error; err != nil {
		return nil, 0, utils.InternalError(err)
	}

	var stays []models.GuestStay
	err := s.DB.Where("hotel_id = ?", hotelID).
		Order("serial_no DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&stays).Error
	if err != nil {
		return nil, 0, utils.InternalError(err)
	}

	out := make([]StayWithBalance, 0, len(stays))
	for i := range stays {
		balance, err := s.computePendingFor(&stays[i], asOf)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, StayWithBalance{Stay: stays[i], Balance: *balance})
	}
	return out, total, nil
}

// DeleteStay hard-deletes a stay and its ledger rows. No pending-balance
// side effects; the stay itself is going away.
func (s *GuestStayService) DeleteStay(caller models.Caller, bookingID uuid.UUID) error {
	stay, err := s.loadStay(bookingID)
	if err != nil {
		return err
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var expenseIDs []uuid.UUID
		if err := tx.Model(&models.GuestExpense{}).Where("booking_id = ?", stay.ID).
			Pluck("id", &expenseIDs).Error; err != nil {
			return utils.InternalError(err)
		}
		if len(expenseIDs) > 0 {
			if err := tx.Where("guest_expense_id IN ?", expenseIDs).
				Delete(&models.GuestFoodOrder{}).Error; err != nil {
				return utils.InternalError(err)
			}
		}
		if err := tx.Where("booking_id = ?", stay.ID).Delete(&models.GuestExpense{}).Error; err != nil {
			return utils.InternalError(err)
		}
		if err := tx.Where("booking_id = ?", stay.ID).Delete(&models.GuestTransaction{}).Error; err != nil {
			return utils.InternalError(err)
		}
		if err := tx.Delete(&models.GuestStay{}, "id = ?", stay.ID).Error; err != nil {
			return utils.InternalError(err)
		}
		return nil
	})
}

func (s *GuestStayService) loadStay(bookingID uuid.UUID) (*models.GuestStay, error) {
	var stay models.GuestStay
	if err := s.DB.First(&stay, "id = ?", bookingID).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest stay")
	}
	return &stay, nil
}

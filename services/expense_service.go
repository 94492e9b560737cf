package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

// ExpenseService tracks hotel operating expenses and sums them per payment
// mode for reporting.
type ExpenseService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewExpenseService(db *gorm.DB, access *AccessService) *ExpenseService {
	return &ExpenseService{DB: db, Access: access}
}

type HotelExpenseInput struct {
	HotelID       uuid.UUID
	Title         string
	PaymentModeID uuid.UUID
	Amount        decimal.Decimal
	ExpenseDate   datatypes.Date
}

func (s *ExpenseService) Create(caller models.Caller, in HotelExpenseInput) (*models.Expense, error) {
	if err := s.Access.Authorize(caller, in.HotelID); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, utils.ValidationError("expense title is required")
	}
	if in.Amount.IsNegative() {
		return nil, utils.ValidationError("expense amount must not be negative")
	}
	var mode models.PaymentMode
	if err := s.DB.First(&mode, "id = ?", in.PaymentModeID).Error; err != nil {
		return nil, utils.WrapDBError(err, "payment mode")
	}

	expense := models.Expense{
		HotelID:       in.HotelID,
		Title:         in.Title,
		PaymentModeID: in.PaymentModeID,
		Amount:        in.Amount,
		ExpenseDate:   in.ExpenseDate,
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return nil, utils.WrapDBError(err, "expense")
	}
	return &expense, nil
}

func (s *ExpenseService) List(caller models.Caller, hotelID uuid.UUID, from, to datatypes.Date) ([]models.Expense, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}
	var expenses []models.Expense
	err := s.DB.Preload("PaymentMode").
		Where("hotel_id = ? AND expense_date BETWEEN ? AND ?", hotelID, from, to).
		Order("expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return expenses, nil
}

// ModeTotal is one row of the per-payment-mode expense report.
type ModeTotal struct {
	PaymentModeID uuid.UUID `json:"payment_mode_id"`
	PaymentMode   string    `json:"payment_mode"`
	Total         string    `json:"total"`
}

func (s *ExpenseService) TotalsByMode(caller models.Caller, hotelID uuid.UUID, from, to datatypes.Date) ([]ModeTotal, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}

	rows, err := s.DB.Model(&models.Expense{}).
		Select("expenses.payment_mode_id, payment_modes.payment_mode, COALESCE(SUM(expenses.amount), 0) AS total").
		Joins("JOIN payment_modes ON payment_modes.id = expenses.payment_mode_id").
		Where("expenses.hotel_id = ? AND expenses.expense_date BETWEEN ? AND ?", hotelID, from, to).
		Group("expenses.payment_mode_id, payment_modes.payment_mode").
		Rows()
	if err != nil {
		return nil, utils.InternalError(err)
	}
	defer rows.Close()

	var totals []ModeTotal
	for rows.Next() {
		var modeID uuid.UUID
		var label string
		var total decimal.Decimal
		if err := rows.Scan(&modeID, &label, &total); err != nil {
			return nil, utils.InternalError(err)
		}
		totals = append(totals, ModeTotal{
			PaymentModeID: modeID,
			PaymentMode:   label,
			Total:         utils.FormatAmount(total),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, utils.InternalError(err)
	}
	return totals, nil
}

func (s *ExpenseService) Delete(caller models.Caller, expenseID uuid.UUID) error {
	var expense models.Expense
	if err := s.DB.First(&expense, "id = ?", expenseID).Error; err != nil {
		return utils.WrapDBError(err, "expense")
	}
	if err := s.Access.Authorize(caller, expense.HotelID); err != nil {
		return err
	}
	if err := s.DB.Delete(&expense).Error; err != nil {
		return utils.InternalError(err)
	}
	return nil
}

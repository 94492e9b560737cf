package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

// RollupService produces the hotel-wide daily picture: every stay that is
// current on the target date, its same-day ledger entries, its cumulative
// pending balance, and the hotel totals.
type RollupService struct {
	DB     *gorm.DB
	Access *AccessService
	Stays  *GuestStayService
}

func NewRollupService(db *gorm.DB, access *AccessService, stays *GuestStayService) *RollupService {
	return &RollupService{DB: db, Access: access, Stays: stays}
}

type StayDaySummary struct {
	Stay          models.GuestStay          `json:"stay"`
	Transactions  []models.GuestTransaction `json:"transactions"`
	Expenses      []models.GuestExpense     `json:"expenses"`
	TotalBill     string                    `json:"total_bill"`
	TotalFood     string                    `json:"total_food"`
	TotalPayments string                    `json:"total_payments"`
	Pending       string                    `json:"pending"`
}

type HotelDayReport struct {
	Date            string           `json:"date"`
	TodayTotalSales string           `json:"today_total_sales"`
	TotalPending    string           `json:"total_pending"`
	Stays           []StayDaySummary `json:"stays"`
}

// HotelDay computes the report for one hotel and date. The stay list is
// paginated, but the hotel-wide totals always cover the entire relevant
// set; paginating them away would understate the day.
func (s *RollupService) HotelDay(caller models.Caller, hotelID uuid.UUID, date datatypes.Date, page, limit int) (*HotelDayReport, int64, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, 0, err
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return nil, 0, utils.WrapDBError(err, "hotel")
	}

	// A stay is relevant while the guest is in house: checked in on or
	// before the date and either still open or checking out that day.
	relevant := s.DB.Model(&models.GuestStay{}).
		Where("hotel_id = ? AND checkin_date <= ? AND (checkout_date IS NULL OR checkout_date = ?)",
			hotelID, date, date)

	var total int64
	if err := relevant.Count(&total).Error; err != nil {
		return nil, 0, utils.InternalError(err)
	}

	var allStays []models.GuestStay
	err := s.DB.
		Where("hotel_id = ? AND checkin_date <= ? AND (checkout_date IS NULL OR checkout_date = ?)",
			hotelID, date, date).
		Order("serial_no ASC").
		Find(&allStays).Error
	if err != nil {
		return nil, 0, utils.InternalError(err)
	}

	totalSales := decimal.Zero
	totalPending := decimal.Zero
	balances := make([]PendingBreakdown, len(allStays))
	for i := range allStays {
		balance, err := s.Stays.computePendingFor(&allStays[i], date)
		if err != nil {
			return nil, 0, err
		}
		balances[i] = *balance

		foodToday, err := sumGuestExpenses(s.DB, allStays[i].ID, models.ExpenseFood, date, date)
		if err != nil {
			return nil, 0, err
		}
		totalSales = totalSales.Add(allStays[i].Bill).Add(foodToday)
		totalPending = totalPending.Add(balance.Pending)
	}

	report := &HotelDayReport{
		Date:            utils.FormatDate(date),
		TodayTotalSales: utils.FormatAmount(totalSales),
		TotalPending:    utils.FormatAmount(totalPending),
		Stays:           []StayDaySummary{},
	}

	start := (page - 1) * limit
	if start > len(allStays) {
		start = len(allStays)
	}
	end := start + limit
	if end > len(allStays) {
		end = len(allStays)
	}

	for i := start; i < end; i++ {
		stay := allStays[i]

		var transactions []models.GuestTransaction
		if err := s.DB.Where("booking_id = ? AND payment_date = ?", stay.ID, date).
			Find(&transactions).Error; err != nil {
			return nil, 0, utils.InternalError(err)
		}
		var expenses []models.GuestExpense
		if err := s.DB.Where("booking_id = ? AND expense_date = ?", stay.ID, date).
			Find(&expenses).Error; err != nil {
			return nil, 0, utils.InternalError(err)
		}

		report.Stays = append(report.Stays, StayDaySummary{
			Stay:          stay,
			Transactions:  transactions,
			Expenses:      expenses,
			TotalBill:     utils.FormatAmount(balances[i].TotalBill),
			TotalFood:     utils.FormatAmount(balances[i].TotalFood),
			TotalPayments: utils.FormatAmount(balances[i].TotalPayments),
			Pending:       utils.FormatAmount(balances[i].Pending),
		})
	}
	return report, total, nil
}

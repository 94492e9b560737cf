package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

// Monetary fields leave the API as fixed 2-decimal strings; the maps below
// are the one place model decimals get formatted.

func stayJSON(stay *models.GuestStay) gin.H {
	body := gin.H{
		"id":           stay.ID,
		"hotel_id":     stay.HotelID,
		"serial_no":    stay.SerialNo,
		"guest_name":   stay.GuestName,
		"phone_no":     stay.PhoneNo,
		"room_no":      stay.RoomNo,
		"checkin_date": utils.FormatDate(stay.CheckinDate),
		"checkin_time": stay.CheckinTime,
		"rent":         utils.FormatAmount(stay.Rent),
		"bill":         utils.FormatAmount(stay.Bill),
		"created_at":   stay.CreatedAt,
	}
	if stay.CheckoutDate != nil {
		body["checkout_date"] = utils.FormatDate(*stay.CheckoutDate)
	}
	if stay.CheckoutTime != nil {
		body["checkout_time"] = *stay.CheckoutTime
	}
	return body
}

func balanceJSON(b *services.PendingBreakdown) gin.H {
	return gin.H{
		"total_bill":     utils.FormatAmount(b.TotalBill),
		"total_food":     utils.FormatAmount(b.TotalFood),
		"total_payments": utils.FormatAmount(b.TotalPayments),
		"pending":        utils.FormatAmount(b.Pending),
	}
}

func stayWithBalanceJSON(item *services.StayWithBalance) gin.H {
	body := stayJSON(&item.Stay)
	body["balance"] = balanceJSON(&item.Balance)
	return body
}

func transactionJSON(t *models.GuestTransaction) gin.H {
	return gin.H{
		"id":              t.ID,
		"booking_id":      t.BookingID,
		"payment_type":    t.PaymentType,
		"payment_mode_id": t.PaymentModeID,
		"amount":          utils.FormatAmount(t.Amount),
		"payment_date":    utils.FormatDate(t.PaymentDate),
	}
}

func guestExpenseJSON(e *models.GuestExpense) gin.H {
	return gin.H{
		"id":           e.ID,
		"booking_id":   e.BookingID,
		"expense_type": e.ExpenseType,
		"amount":       utils.FormatAmount(e.Amount),
		"expense_date": utils.FormatDate(e.ExpenseDate),
	}
}

func hotelExpenseJSON(e *models.Expense) gin.H {
	body := gin.H{
		"id":              e.ID,
		"hotel_id":        e.HotelID,
		"title":           e.Title,
		"payment_mode_id": e.PaymentModeID,
		"amount":          utils.FormatAmount(e.Amount),
		"expense_date":    utils.FormatDate(e.ExpenseDate),
	}
	if e.PaymentMode.ID != e.PaymentModeID {
		return body
	}
	body["payment_mode"] = e.PaymentMode.PaymentMode
	return body
}

func menuJSON(m *models.Menu) gin.H {
	body := gin.H{
		"id":               m.ID,
		"name":             m.Name,
		"full_plate_price": utils.FormatAmount(m.FullPlatePrice),
	}
	if m.HalfPlatePrice != nil {
		body["half_plate_price"] = utils.FormatAmount(*m.HalfPlatePrice)
	}
	return body
}

func rollupStayJSON(s *services.StayDaySummary) gin.H {
	transactions := make([]gin.H, 0, len(s.Transactions))
	for i := range s.Transactions {
		transactions = append(transactions, transactionJSON(&s.Transactions[i]))
	}
	expenses := make([]gin.H, 0, len(s.Expenses))
	for i := range s.Expenses {
		expenses = append(expenses, guestExpenseJSON(&s.Expenses[i]))
	}
	return gin.H{
		"stay":           stayJSON(&s.Stay),
		"transactions":   transactions,
		"expenses":       expenses,
		"total_bill":     s.TotalBill,
		"total_food":     s.TotalFood,
		"total_payments": s.TotalPayments,
		"pending":        s.Pending,
	}
}

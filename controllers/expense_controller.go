package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type ExpenseController struct {
	ExpenseSvc *services.ExpenseService
}

func NewExpenseController(svc *services.ExpenseService) *ExpenseController {
	return &ExpenseController{ExpenseSvc: svc}
}

type ExpenseRequest struct {
	HotelID       uuid.UUID `json:"hotel_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	PaymentModeID uuid.UUID `json:"payment_mode_id" binding:"required"`
	Amount        float64   `json:"amount"`
	ExpenseDate   string    `json:"expense_date" binding:"required"`
}

func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := utils.ParseDate(req.ExpenseDate)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	expense, err := ec.ExpenseSvc.Create(caller, services.HotelExpenseInput{
		HotelID:       req.HotelID,
		Title:         req.Title,
		PaymentModeID: req.PaymentModeID,
		Amount:        utils.AmountFromFloat(req.Amount),
		ExpenseDate:   date,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "expense created", hotelExpenseJSON(expense))
}

func (ec *ExpenseController) ListExpenses(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidQuery(c, "hotel_id")
	if !ok {
		return
	}
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to")
	if !ok {
		return
	}

	expenses, err := ec.ExpenseSvc.List(caller, hotelID, from, to)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	records := make([]gin.H, 0, len(expenses))
	for i := range expenses {
		records = append(records, hotelExpenseJSON(&expenses[i]))
	}
	utils.JSONRecords(c, http.StatusOK, "expenses", records, nil)
}

func (ec *ExpenseController) ExpenseTotals(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidQuery(c, "hotel_id")
	if !ok {
		return
	}
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to")
	if !ok {
		return
	}

	totals, err := ec.ExpenseSvc.TotalsByMode(caller, hotelID, from, to)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "expense totals by payment mode", totals, nil)
}

func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := ec.ExpenseSvc.Delete(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "expense deleted", nil)
}

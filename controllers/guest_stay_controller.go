package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type GuestStayController struct {
	StaySvc *services.GuestStayService
}

func NewGuestStayController(svc *services.GuestStayService) *GuestStayController {
	return &GuestStayController{StaySvc: svc}
}

type CreateStayRequest struct {
	HotelID       uuid.UUID  `json:"hotel_id" binding:"required"`
	GuestName     string     `json:"guest_name" binding:"required"`
	PhoneNo       string     `json:"phone_no"`
	RoomNo        string     `json:"room_no"`
	CheckinDate   string     `json:"checkin_date" binding:"required"`
	CheckinTime   string     `json:"checkin_time" binding:"required"`
	Rent          float64    `json:"rent"`
	AdvanceAmount *float64   `json:"advance_amount"`
	PaymentModeID *uuid.UUID `json:"payment_mode_id"`
}

type UpdateStayRequest struct {
	GuestName    *string  `json:"guest_name"`
	PhoneNo      *string  `json:"phone_no"`
	RoomNo       *string  `json:"room_no"`
	Rent         *float64 `json:"rent"`
	CheckoutDate *string  `json:"checkout_date"`
	CheckoutTime *string  `json:"checkout_time"`
}

type RecordRequest struct {
	Payment *struct {
		PaymentType   string    `json:"payment_type" binding:"required"`
		PaymentModeID uuid.UUID `json:"payment_mode_id" binding:"required"`
		Amount        float64   `json:"amount"`
	} `json:"payment"`
	Expense *struct {
		ExpenseType string  `json:"expense_type" binding:"required"`
		Amount      float64 `json:"amount"`
	} `json:"expense"`
}

func (gc *GuestStayController) CreateStay(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req CreateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkinDate, err := utils.ParseDate(req.CheckinDate)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	in := services.CreateStayInput{
		HotelID:       req.HotelID,
		GuestName:     req.GuestName,
		PhoneNo:       req.PhoneNo,
		RoomNo:        req.RoomNo,
		CheckinDate:   checkinDate,
		CheckinTime:   req.CheckinTime,
		Rent:          utils.AmountFromFloat(req.Rent),
		PaymentModeID: req.PaymentModeID,
	}
	if req.AdvanceAmount != nil {
		advance := utils.AmountFromFloat(*req.AdvanceAmount)
		in.AdvanceAmount = &advance
	}

	stay, err := gc.StaySvc.CreateStay(caller, in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "guest stay created", stayJSON(stay))
}

func (gc *GuestStayController) ListStays(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidQuery(c, "hotel_id")
	if !ok {
		return
	}
	asOf, ok := dateQuery(c, "as_of")
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)

	stays, total, err := gc.StaySvc.ListStays(caller, hotelID, asOf, page, limit)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	records := make([]gin.H, 0, len(stays))
	for i := range stays {
		records = append(records, stayWithBalanceJSON(&stays[i]))
	}
	utils.JSONRecords(c, http.StatusOK, "guest stays", records, utils.NewPagination(page, limit, total))
}

func (gc *GuestStayController) GetStay(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	asOf, ok := dateQuery(c, "as_of")
	if !ok {
		return
	}

	item, err := gc.StaySvc.GetStay(caller, id, asOf)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest stay", stayWithBalanceJSON(item))
}

func (gc *GuestStayController) UpdateStay(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	in := services.UpdateStayInput{
		GuestName:    req.GuestName,
		PhoneNo:      req.PhoneNo,
		RoomNo:       req.RoomNo,
		CheckoutTime: req.CheckoutTime,
	}
	if req.Rent != nil {
		rent := utils.AmountFromFloat(*req.Rent)
		in.Rent = &rent
	}
	if req.CheckoutDate != nil {
		date, err := utils.ParseDate(*req.CheckoutDate)
		if err != nil {
			utils.JSONAppError(c, err)
			return
		}
		in.CheckoutDate = &date
	}

	stay, err := gc.StaySvc.UpdateStay(caller, id, in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest stay updated", stayJSON(stay))
}

func (gc *GuestStayController) RecordPaymentOrExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payment *services.PaymentInput
	if req.Payment != nil {
		payment = &services.PaymentInput{
			PaymentType:   models.PaymentType(req.Payment.PaymentType),
			PaymentModeID: req.Payment.PaymentModeID,
			Amount:        utils.AmountFromFloat(req.Payment.Amount),
		}
	}
	var expense *services.ExpenseInput
	if req.Expense != nil {
		expense = &services.ExpenseInput{
			ExpenseType: models.ExpenseType(req.Expense.ExpenseType),
			Amount:      utils.AmountFromFloat(req.Expense.Amount),
		}
	}

	if err := gc.StaySvc.RecordPaymentOrExpense(caller, id, payment, expense); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "ledger updated", nil)
}

func (gc *GuestStayController) GetPending(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	asOf, ok := dateQuery(c, "as_of")
	if !ok {
		return
	}

	// Access runs through GetStay; pending alone carries the same gate.
	item, err := gc.StaySvc.GetStay(caller, id, asOf)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	body := balanceJSON(&item.Balance)
	body["as_of"] = utils.FormatDate(asOf)
	utils.JSONSuccess(c, http.StatusOK, "pending balance", body)
}

func (gc *GuestStayController) DeleteStay(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := gc.StaySvc.DeleteStay(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest stay deleted", nil)
}

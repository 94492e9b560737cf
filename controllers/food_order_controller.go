package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type FoodOrderController struct {
	FoodSvc *services.FoodOrderService
}

func NewFoodOrderController(svc *services.FoodOrderService) *FoodOrderController {
	return &FoodOrderController{FoodSvc: svc}
}

type FoodLineRequest struct {
	MenuID      uuid.UUID `json:"menu_id" binding:"required"`
	PortionType string    `json:"portion_type" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required"`
}

type FoodOrderRequest struct {
	Lines []FoodLineRequest `json:"lines" binding:"required"`
}

func toLineInputs(lines []FoodLineRequest) []services.FoodLineInput {
	out := make([]services.FoodLineInput, 0, len(lines))
	for _, line := range lines {
		out = append(out, services.FoodLineInput{
			MenuID:      line.MenuID,
			PortionType: models.PortionType(line.PortionType),
			Quantity:    line.Quantity,
		})
	}
	return out
}

func (fc *FoodOrderController) AddFoodOrder(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req FoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := fc.FoodSvc.AddFoodExpense(caller, bookingID, toLineInputs(req.Lines))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "food order recorded", summary)
}

func (fc *FoodOrderController) ReplaceFoodOrder(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	expenseID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req FoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := fc.FoodSvc.ReplaceFoodExpense(caller, expenseID, toLineInputs(req.Lines))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "food order replaced", summary)
}

func (fc *FoodOrderController) GetFoodOrders(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var date *datatypes.Date
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONAppError(c, err)
			return
		}
		date = &parsed
	}

	summary, err := fc.FoodSvc.FoodExpenseForDate(caller, bookingID, date)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "food orders", summary)
}

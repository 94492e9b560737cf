package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type PaymentModeController struct {
	ModeSvc *services.PaymentModeService
}

func NewPaymentModeController(svc *services.PaymentModeService) *PaymentModeController {
	return &PaymentModeController{ModeSvc: svc}
}

type PaymentModeRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

func (pc *PaymentModeController) CreatePaymentMode(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req PaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := pc.ModeSvc.Create(caller, req.PaymentMode)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "payment mode created", mode)
}

func (pc *PaymentModeController) ListPaymentModes(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	modes, err := pc.ModeSvc.List(caller)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "payment modes", modes, nil)
}

func (pc *PaymentModeController) UpdatePaymentMode(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req PaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := pc.ModeSvc.Update(caller, id, req.PaymentMode)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "payment mode updated", mode)
}

func (pc *PaymentModeController) DeletePaymentMode(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := pc.ModeSvc.Delete(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "payment mode deleted", nil)
}

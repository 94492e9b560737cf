package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type MenuController struct {
	MenuSvc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{MenuSvc: svc}
}

type MenuRequest struct {
	Name           string   `json:"name" binding:"required"`
	HalfPlatePrice *float64 `json:"half_plate_price"`
	FullPlatePrice float64  `json:"full_plate_price" binding:"required"`
}

func (mc *MenuController) toInput(req MenuRequest) services.MenuInput {
	in := services.MenuInput{
		Name:           req.Name,
		FullPlatePrice: utils.AmountFromFloat(req.FullPlatePrice),
	}
	if req.HalfPlatePrice != nil {
		half := utils.AmountFromFloat(*req.HalfPlatePrice)
		in.HalfPlatePrice = &half
	}
	return in
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	menu, err := mc.MenuSvc.Create(caller, mc.toInput(req))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "menu created", menuJSON(menu))
}

func (mc *MenuController) ListMenus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	menus, err := mc.MenuSvc.List(caller)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	records := make([]gin.H, 0, len(menus))
	for i := range menus {
		records = append(records, menuJSON(&menus[i]))
	}
	utils.JSONRecords(c, http.StatusOK, "menus", records, nil)
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	menu, err := mc.MenuSvc.Update(caller, id, mc.toInput(req))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "menu updated", menuJSON(menu))
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := mc.MenuSvc.Delete(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "menu deleted", nil)
}

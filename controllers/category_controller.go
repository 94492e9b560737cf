package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type CategoryController struct {
	CategorySvc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{CategorySvc: svc}
}

type CategoryRequest struct {
	HotelID     uuid.UUID `json:"hotel_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := cc.CategorySvc.Create(caller, req.HotelID, req.Name, req.Description)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "category created", category)
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidQuery(c, "hotel_id")
	if !ok {
		return
	}
	categories, err := cc.CategorySvc.List(caller, hotelID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "categories", categories, nil)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := cc.CategorySvc.Delete(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "category deleted", nil)
}

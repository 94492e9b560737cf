package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type HotelController struct {
	HotelSvc  *services.HotelService
	RollupSvc *services.RollupService
}

func NewHotelController(hotelSvc *services.HotelService, rollupSvc *services.RollupService) *HotelController {
	return &HotelController{HotelSvc: hotelSvc, RollupSvc: rollupSvc}
}

type HotelRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	TotalRooms int    `json:"total_rooms"`
}

type AssignManagerRequest struct {
	ManagerID uuid.UUID `json:"manager_id" binding:"required"`
	Status    string    `json:"status"`
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hotel, err := hc.HotelSvc.CreateHotel(caller, services.HotelInput(req))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "hotel created", hotel)
}

func (hc *HotelController) ListHotels(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotels, err := hc.HotelSvc.ListHotels(caller)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "hotels", hotels, nil)
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.HotelSvc.GetHotel(caller, id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "hotel", hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	hotel, err := hc.HotelSvc.UpdateHotel(caller, id, services.HotelInput(req))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "hotel updated", hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := hc.HotelSvc.DeleteHotel(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "hotel deleted", nil)
}

func (hc *HotelController) AssignManager(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	status := models.AssignmentStatus(req.Status)
	if req.Status == "" {
		status = models.AssignmentActive
	}

	assignment, err := hc.HotelSvc.AssignManager(caller, hotelID, req.ManagerID, status)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "manager assignment updated", assignment)
}

func (hc *HotelController) ListAssignments(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	assignments, err := hc.HotelSvc.ListAssignments(caller, hotelID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "assignments", assignments, nil)
}

// Dashboard serves the hotel-day rollup: today's relevant stays with their
// same-day ledger entries, plus totals over the whole relevant set.
func (hc *HotelController) Dashboard(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)

	report, total, err := hc.RollupSvc.HotelDay(caller, hotelID, date, page, limit)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	stays := make([]gin.H, 0, len(report.Stays))
	for i := range report.Stays {
		stays = append(stays, rollupStayJSON(&report.Stays[i]))
	}
	body := gin.H{
		"date":              report.Date,
		"today_total_sales": report.TodayTotalSales,
		"total_pending":     report.TotalPending,
		"stays":             stays,
	}
	utils.JSONRecords(c, http.StatusOK, "hotel day report", body, utils.NewPagination(page, limit, total))
}

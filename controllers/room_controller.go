package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type RoomRequest struct {
	HotelID    uuid.UUID  `json:"hotel_id" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id"`
	RoomNumber string     `json:"room_number" binding:"required"`
	Floor      string     `json:"floor"`
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	room, err := rc.RoomSvc.Create(caller, services.RoomInput(req))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "room created", room)
}

func (rc *RoomController) ListRooms(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	hotelID, ok := uuidQuery(c, "hotel_id")
	if !ok {
		return
	}
	rooms, err := rc.RoomSvc.List(caller, hotelID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONRecords(c, http.StatusOK, "rooms", rooms, nil)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(caller, id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room deleted", nil)
}

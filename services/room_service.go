package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type RoomService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewRoomService(db *gorm.DB, access *AccessService) *RoomService {
	return &RoomService{DB: db, Access: access}
}

type RoomInput struct {
	HotelID    uuid.UUID
	CategoryID *uuid.UUID
	RoomNumber string
	Floor      string
}

func (s *RoomService) Create(caller models.Caller, in RoomInput) (*models.Room, error) {
	if err := s.Access.Authorize(caller, in.HotelID); err != nil {
		return nil, err
	}
	if in.RoomNumber == "" {
		return nil, utils.ValidationError("room number is required")
	}
	if in.CategoryID != nil {
		var category models.Category
		if err := s.DB.First(&category, "id = ? AND hotel_id = ?", *in.CategoryID, in.HotelID).Error; err != nil {
			return nil, utils.WrapDBError(err, "category")
		}
	}
	room := models.Room{
		HotelID:    in.HotelID,
		CategoryID: in.CategoryID,
		RoomNumber: in.RoomNumber,
		Floor:      in.Floor,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, utils.WrapDBError(err, "room")
	}
	return &room, nil
}

func (s *RoomService) List(caller models.Caller, hotelID uuid.UUID) ([]models.Room, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}
	var rooms []models.Room
	if err := s.DB.Preload("Category").Where("hotel_id = ?", hotelID).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	return rooms, nil
}

func (s *RoomService) Delete(caller models.Caller, roomID uuid.UUID) error {
	var room models.Room
	if err := s.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return utils.WrapDBError(err, "room")
	}
	if err := s.Access.Authorize(caller, room.HotelID); err != nil {
		return err
	}
	if err := s.DB.Delete(&room).Error; err != nil {
		return utils.InternalError(err)
	}
	return nil
}

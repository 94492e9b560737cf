package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type HotelService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewHotelService(db *gorm.DB, access *AccessService) *HotelService {
	return &HotelService{DB: db, Access: access}
}

type HotelInput struct {
	Name       string
	Address    string
	Phone      string
	TotalRooms int
}

func (s *HotelService) CreateHotel(caller models.Caller, in HotelInput) (*models.Hotel, error) {
	if caller.Role != models.RoleAdmin {
		return nil, utils.AccessDeniedError("only admins can create hotels")
	}
	if in.Name == "" {
		return nil, utils.ValidationError("hotel name is required")
	}
	hotel := models.Hotel{
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		TotalRooms:  in.TotalRooms,
		CreatedByID: caller.ID,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, utils.WrapDBError(err, "hotel")
	}
	return &hotel, nil
}

// ListHotels resolves the caller's scope here: admins see hotels they
// created, managers see hotels with an active assignment.
func (s *HotelService) ListHotels(caller models.Caller) ([]models.Hotel, error) {
	var hotels []models.Hotel
	switch caller.Role {
	case models.RoleAdmin:
		if err := s.DB.Where("created_by_id = ?", caller.ID).Find(&hotels).Error; err != nil {
			return nil, utils.InternalError(err)
		}
	case models.RoleManager:
		err := s.DB.
			Joins("JOIN hotel_assignments ON hotel_assignments.hotel_id = hotels.id").
			Where("hotel_assignments.manager_id = ? AND hotel_assignments.status = ?",
				caller.ID, models.AssignmentActive).
			Find(&hotels).Error
		if err != nil {
			return nil, utils.InternalError(err)
		}
	default:
		return nil, utils.AccessDeniedError("only managers and admins can perform this action")
	}
	return hotels, nil
}

func (s *HotelService) GetHotel(caller models.Caller, hotelID uuid.UUID) (*models.Hotel, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return nil, utils.WrapDBError(err, "hotel")
	}
	return &hotel, nil
}

func (s *HotelService) UpdateHotel(caller models.Caller, hotelID uuid.UUID, in HotelInput) (*models.Hotel, error) {
	hotel, err := s.GetHotel(caller, hotelID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		hotel.Name = in.Name
	}
	if in.Address != "" {
		hotel.Address = in.Address
	}
	if in.Phone != "" {
		hotel.Phone = in.Phone
	}
	if in.TotalRooms > 0 {
		hotel.TotalRooms = in.TotalRooms
	}
	if err := s.DB.Save(hotel).Error; err != nil {
		return nil, utils.WrapDBError(err, "hotel")
	}
	return hotel, nil
}

// DeleteHotel refuses to remove a hotel that still has guest history; the
// stays hold the ledger and must not be cascaded away. Assignment and room
// rows go with the hotel.
func (s *HotelService) DeleteHotel(caller models.Caller, hotelID uuid.UUID) error {
	if caller.Role != models.RoleAdmin {
		return utils.AccessDeniedError("only admins can delete hotels")
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return utils.WrapDBError(err, "hotel")
	}

	var stayCount int64
	if err := s.DB.Model(&models.GuestStay{}).Where("hotel_id = ?", hotelID).Count(&stayCount).Error; err != nil {
		return utils.InternalError(err)
	}
	if stayCount > 0 {
		return utils.ConflictError("hotel has %d guest stays and cannot be deleted", stayCount)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.HotelAssignment{}).Error; err != nil {
			return utils.InternalError(err)
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return utils.InternalError(err)
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Category{}).Error; err != nil {
			return utils.InternalError(err)
		}
		if err := tx.Delete(&models.Hotel{}, "id = ?", hotelID).Error; err != nil {
			return utils.InternalError(err)
		}
		return nil
	})
}

// AssignManager links a manager to a hotel with the given status. An
// existing assignment is updated in place, so revoking and restoring access
// never creates duplicate rows.
func (s *HotelService) AssignManager(caller models.Caller, hotelID, managerID uuid.UUID, status models.AssignmentStatus) (*models.HotelAssignment, error) {
	if caller.Role != models.RoleAdmin {
		return nil, utils.AccessDeniedError("only admins can assign managers")
	}
	if !status.Valid() {
		return nil, utils.ValidationError("invalid assignment status %q", status)
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return nil, utils.WrapDBError(err, "hotel")
	}
	var manager models.User
	if err := s.DB.First(&manager, "id = ?", managerID).Error; err != nil {
		return nil, utils.WrapDBError(err, "manager")
	}
	if manager.Role != models.RoleManager {
		return nil, utils.ValidationError("user %s is not a manager", manager.Username)
	}

	var assignment models.HotelAssignment
	err := s.DB.Where("hotel_id = ? AND manager_id = ?", hotelID, managerID).First(&assignment).Error
	switch {
	case err == nil:
		assignment.Status = status
		if err := s.DB.Save(&assignment).Error; err != nil {
			return nil, utils.WrapDBError(err, "hotel assignment")
		}
		return &assignment, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		assignment = models.HotelAssignment{HotelID: hotelID, ManagerID: managerID, Status: status}
		if err := s.DB.Create(&assignment).Error; err != nil {
			return nil, utils.WrapDBError(err, "hotel assignment")
		}
		return &assignment, nil
	default:
		return nil, utils.InternalError(err)
	}
}

func (s *HotelService) ListAssignments(caller models.Caller, hotelID uuid.UUID) ([]models.HotelAssignment, error) {
	if caller.Role != models.RoleAdmin {
		return nil, utils.AccessDeniedError("only admins can list assignments")
	}
	var assignments []models.HotelAssignment
	if err := s.DB.Where("hotel_id = ?", hotelID).Find(&assignments).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	return assignments, nil
}

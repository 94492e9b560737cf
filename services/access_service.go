package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

// AccessService decides whether a caller may act on a hotel. It is
// side-effect free; every hotel-scoped mutation and role-gated read must go
// through Authorize before touching state.
type AccessService struct {
	DB *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{DB: db}
}

// Authorize allows admins outright (admin scope is resolved at the hotel
// listing layer, not here) and managers only when an active assignment to
// the hotel exists. Every other role is denied.
func (s *AccessService) Authorize(caller models.Caller, hotelID uuid.UUID) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleManager:
		var count int64
		err := s.DB.Model(&models.HotelAssignment{}).
			Where("manager_id = ? AND hotel_id = ? AND status = ?", caller.ID, hotelID, models.AssignmentActive).
			Count(&count).Error
		if err != nil {
			return utils.InternalError(err)
		}
		if count == 0 {
			return utils.AccessDeniedError("access denied")
		}
		return nil
	default:
		return utils.AccessDeniedError("only managers and admins can perform this action")
	}
}

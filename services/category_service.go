package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type CategoryService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewCategoryService(db *gorm.DB, access *AccessService) *CategoryService {
	return &CategoryService{DB: db, Access: access}
}

func (s *CategoryService) Create(caller models.Caller, hotelID uuid.UUID, name, description string) (*models.Category, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, utils.ValidationError("category name is required")
	}

	// Name is unique within a hotel; the DB index backs this check.
	var count int64
	if err := s.DB.Model(&models.Category{}).
		Where("hotel_id = ? AND name = ?", hotelID, name).Count(&count).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	if count > 0 {
		return nil, utils.ConflictError("category %q already exists for this hotel", name)
	}

	category := models.Category{HotelID: hotelID, Name: name, Description: description}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, utils.WrapDBError(err, "category")
	}
	return &category, nil
}

func (s *CategoryService) List(caller models.Caller, hotelID uuid.UUID) ([]models.Category, error) {
	if err := s.Access.Authorize(caller, hotelID); err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("name").Find(&categories).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryService) Delete(caller models.Caller, categoryID uuid.UUID) error {
	var category models.Category
	if err := s.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		return utils.WrapDBError(err, "category")
	}
	if err := s.Access.Authorize(caller, category.HotelID); err != nil {
		return err
	}
	if err := s.DB.Delete(&category).Error; err != nil {
		return utils.InternalError(err)
	}
	return nil
}

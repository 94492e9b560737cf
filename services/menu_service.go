package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

type MenuInput struct {
	Name           string
	HalfPlatePrice *decimal.Decimal
	FullPlatePrice decimal.Decimal
}

func (s *MenuService) validate(in MenuInput) error {
	if in.Name == "" {
		return utils.ValidationError("menu name is required")
	}
	if in.FullPlatePrice.IsNegative() || (in.HalfPlatePrice != nil && in.HalfPlatePrice.IsNegative()) {
		return utils.ValidationError("plate prices must not be negative")
	}
	return nil
}

func (s *MenuService) Create(caller models.Caller, in MenuInput) (*models.Menu, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	menu := models.Menu{
		Name:           in.Name,
		HalfPlatePrice: in.HalfPlatePrice,
		FullPlatePrice: in.FullPlatePrice,
		CreatedByID:    caller.ID,
	}
	if err := s.DB.Create(&menu).Error; err != nil {
		return nil, utils.WrapDBError(err, "menu")
	}
	return &menu, nil
}

func (s *MenuService) List(caller models.Caller) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.DB.Where("created_by_id = ?", caller.ID).Order("name").Find(&menus).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	return menus, nil
}

func (s *MenuService) Update(caller models.Caller, menuID uuid.UUID, in MenuInput) (*models.Menu, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	var menu models.Menu
	if err := s.DB.First(&menu, "id = ? AND created_by_id = ?", menuID, caller.ID).Error; err != nil {
		return nil, utils.WrapDBError(err, "menu")
	}
	menu.Name = in.Name
	menu.HalfPlatePrice = in.HalfPlatePrice
	menu.FullPlatePrice = in.FullPlatePrice
	if err := s.DB.Save(&menu).Error; err != nil {
		return nil, utils.WrapDBError(err, "menu")
	}
	return &menu, nil
}

func (s *MenuService) Delete(caller models.Caller, menuID uuid.UUID) error {
	result := s.DB.Delete(&models.Menu{}, "id = ? AND created_by_id = ?", menuID, caller.ID)
	if result.Error != nil {
		return utils.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("menu")
	}
	return nil
}

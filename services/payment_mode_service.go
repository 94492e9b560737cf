package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type PaymentModeService struct {
	DB *gorm.DB
}

func NewPaymentModeService(db *gorm.DB) *PaymentModeService {
	return &PaymentModeService{DB: db}
}

func (s *PaymentModeService) Create(caller models.Caller, label string) (*models.PaymentMode, error) {
	if label == "" {
		return nil, utils.ValidationError("payment mode label is required")
	}
	mode := models.PaymentMode{PaymentMode: label, CreatedByID: caller.ID}
	if err := s.DB.Create(&mode).Error; err != nil {
		return nil, utils.WrapDBError(err, "payment mode")
	}
	return &mode, nil
}

func (s *PaymentModeService) List(caller models.Caller) ([]models.PaymentMode, error) {
	var modes []models.PaymentMode
	if err := s.DB.Where("created_by_id = ?", caller.ID).Order("payment_mode").Find(&modes).Error; err != nil {
		return nil, utils.InternalError(err)
	}
	return modes, nil
}

func (s *PaymentModeService) Update(caller models.Caller, modeID uuid.UUID, label string) (*models.PaymentMode, error) {
	if label == "" {
		return nil, utils.ValidationError("payment mode label is required")
	}
	var mode models.PaymentMode
	if err := s.DB.First(&mode, "id = ? AND created_by_id = ?", modeID, caller.ID).Error; err != nil {
		return nil, utils.WrapDBError(err, "payment mode")
	}
	mode.PaymentMode = label
	if err := s.DB.Save(&mode).Error; err != nil {
		return nil, utils.WrapDBError(err, "payment mode")
	}
	return &mode, nil
}

func (s *PaymentModeService) Delete(caller models.Caller, modeID uuid.UUID) error {
	result := s.DB.Delete(&models.PaymentMode{}, "id = ? AND created_by_id = ?", modeID, caller.ID)
	if result.Error != nil {
		return utils.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("payment mode")
	}
	return nil
}

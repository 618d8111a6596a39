package repository

import (
	"time"

	"hissaback/internal/models"

	"gorm.io/gorm"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(req *models.OTPRequest) error {
	return r.db.Create(req).Error
}

func (r *OTPRepository) GetByID(id string) (*models.OTPRequest, error) {
	var req models.OTPRequest
	if err := r.db.First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *OTPRepository) MarkVerified(id string) error {
	now := time.Now()
	return r.db.Model(&models.OTPRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"verified": true, "used_at": &now}).Error
}

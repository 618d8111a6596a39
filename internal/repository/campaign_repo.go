package repository

import (
	"errors"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(c *models.Campaign) error {
	return r.db.Create(c).Error
}

func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var c models.Campaign
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByTenant(tenantID string) ([]models.Campaign, error) {
	var list []models.Campaign
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *CampaignRepository) List() ([]models.Campaign, error) {
	var list []models.Campaign
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

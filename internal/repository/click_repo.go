package repository

import (
	"errors"
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
)

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Create(c *models.Click) error {
	return r.db.Create(c).Error
}

func (r *ClickRepository) GetByID(id string) (*models.Click, error) {
	var c models.Click
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClickNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CountForTenantSince counts clicks on a tenant's links created at or after t.
func (r *ClickRepository) CountForTenantSince(tenantID string, t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Click{}).
		Joins("JOIN smart_links ON smart_links.id = clicks.link_id").
		Joins("JOIN campaigns ON campaigns.id = smart_links.campaign_id").
		Where("campaigns.tenant_id = ? AND clicks.created_at >= ?", tenantID, t).
		Count(&n).Error
	return n, err
}

// CountByLink counts all clicks recorded against one link.
func (r *ClickRepository) CountByLink(linkID string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Click{}).Where("link_id = ?", linkID).Count(&n).Error
	return n, err
}

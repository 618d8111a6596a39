package repository

import (
	"errors"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
)

// ErrSlugTaken signals a unique-index collision on the slug; the campaign
// service retries with a fresh link id rather than overwriting.
var ErrSlugTaken = errors.New("slug already taken")

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(l *models.SmartLink) error {
	err := r.db.Create(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}

func (r *LinkRepository) GetByID(id string) (*models.SmartLink, error) {
	var l models.SmartLink
	if err := r.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LinkRepository) GetBySlug(slug string) (*models.SmartLink, error) {
	var l models.SmartLink
	if err := r.db.First(&l, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LinkRepository) ListByCampaign(campaignID string) ([]models.SmartLink, error) {
	var list []models.SmartLink
	err := r.db.Where("campaign_id = ?", campaignID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListByTenant returns links across all of a tenant's campaigns.
func (r *LinkRepository) ListByTenant(tenantID string) ([]models.SmartLink, error) {
	var list []models.SmartLink
	err := r.db.
		Joins("JOIN campaigns ON campaigns.id = smart_links.campaign_id").
		Where("campaigns.tenant_id = ?", tenantID).
		Order("smart_links.created_at DESC").
		Find(&list).Error
	return list, err
}

package repository

import (
	"errors"
	"strings"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpsertResult string

const (
	UpsertAdded   UpsertResult = "added"
	UpsertUpdated UpsertResult = "updated"
)

// OfferFilters compose in a fixed order: status, category, advertiser,
// text query, minimum commission, API exposure, then the result cap.
type OfferFilters struct {
	ActiveOnly     bool
	Category       string
	AdvertiserID   string
	Query          string
	MinCommission  float64
	APIExposedOnly bool
	Limit          int
}

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Upsert inserts or updates an offer keyed by id. Reports whether the row
// was added or updated; calling twice with the same payload never creates
// a duplicate. The added/updated report rides on a count taken before the
// write and is not atomic with it: two concurrent syncs of a brand-new
// offer may both report added. The write itself stays idempotent.
func (r *OfferRepository) Upsert(o *models.Offer) (UpsertResult, error) {
	var count int64
	if err := r.db.Model(&models.Offer{}).Where("id = ?", o.ID).Count(&count).Error; err != nil {
		return "", err
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"network_campaign_id", "advertiser_id", "brand", "category",
			"base_commission_pct", "cool_off_days", "status", "exposed_via_api",
			"preview_url", "updated_at",
		}),
	}).Create(o).Error
	if err != nil {
		return "", err
	}
	if count > 0 {
		return UpsertUpdated, nil
	}
	return UpsertAdded, nil
}

func (r *OfferRepository) GetByID(id string) (*models.Offer, error) {
	var o models.Offer
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) List(f OfferFilters) ([]models.Offer, error) {
	q := r.db.Model(&models.Offer{})
	if f.ActiveOnly {
		q = q.Where("status = ?", domain.OfferActive)
	}
	if f.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(f.Category))
	}
	if f.AdvertiserID != "" {
		q = q.Where("advertiser_id = ?", f.AdvertiserID)
	}
	if f.Query != "" {
		needle := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(brand) LIKE ? OR LOWER(category) LIKE ?", needle, needle)
	}
	if f.MinCommission > 0 {
		q = q.Where("base_commission_pct >= ?", f.MinCommission)
	}
	if f.APIExposedOnly {
		q = q.Where("exposed_via_api = ?", true)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var list []models.Offer
	err := q.Order("brand ASC").Find(&list).Error
	return list, err
}

// Categories returns the distinct categories of active offers.
func (r *OfferRepository) Categories() ([]string, error) {
	var cats []string
	err := r.db.Model(&models.Offer{}).
		Where("status = ?", domain.OfferActive).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}

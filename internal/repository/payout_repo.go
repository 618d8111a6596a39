package repository

import (
	"hissaback/internal/models"

	"gorm.io/gorm"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// CreateTx inserts a payout inside the caller's settlement transaction so
// the payout and its members' status flip commit or roll back together.
func (r *PayoutRepository) CreateTx(tx *gorm.DB, p *models.Payout) error {
	return tx.Create(p).Error
}

func (r *PayoutRepository) ListByUser(userID string) ([]models.Payout, error) {
	var list []models.Payout
	err := r.db.Where("user_id = ?", userID).Order("paid_at DESC").Find(&list).Error
	return list, err
}

// ListForTenant returns payouts that settled at least one ledger entry
// belonging to one of the tenant's campaigns.
func (r *PayoutRepository) ListForTenant(tenantID string) ([]models.Payout, error) {
	var list []models.Payout
	err := r.db.
		Distinct("payouts.*").
		Joins("JOIN ledger_entries ON ledger_entries.payout_id = payouts.id").
		Joins("JOIN campaigns ON campaigns.id = ledger_entries.campaign_id").
		Where("campaigns.tenant_id = ?", tenantID).
		Order("payouts.paid_at DESC").
		Find(&list).Error
	return list, err
}

func (r *PayoutRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Payout{}).Count(&n).Error
	return n, err
}

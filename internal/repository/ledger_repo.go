package repository

import (
	"errors"
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append inserts a new ledger entry. The unique index on order_id is the
// idempotency guard: a duplicate conversion webhook for the same order
// surfaces as ErrDuplicateOrder and leaves the stored entry untouched.
func (r *LedgerRepository) Append(e *models.LedgerEntry) error {
	if !domain.ValidLedgerStatus(e.Status) {
		return domain.ErrInvalidInput
	}
	err := r.db.Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateOrder
	}
	return err
}

func (r *LedgerRepository) GetByID(id string) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LedgerRepository) GetByOrderID(orderID string) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	if err := r.db.First(&e, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEligible returns queued entries whose cool-off has elapsed and whose
// user amount clears the payout minimum.
func (r *LedgerRepository) ListEligible(now time.Time, minAmount float64) ([]models.LedgerEntry, error) {
	var list []models.LedgerEntry
	err := r.db.
		Where("status = ? AND user_amount >= ? AND cool_off_until <= ?",
			domain.LedgerQueued, minAmount, now).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// MarkPaid flips the given entries queued -> paid inside the caller's
// transaction. The status guard in the WHERE clause is the compare-and-swap
// that keeps two concurrent batch runs from settling the same entry: if any
// entry was already taken, the rowcount comes up short and the caller's
// transaction rolls back with ErrConflict.
func (r *LedgerRepository) MarkPaid(tx *gorm.DB, ids []string, payoutID string, paidAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	res := tx.Model(&models.LedgerEntry{}).
		Where("id IN ? AND status = ?", ids, domain.LedgerQueued).
		Updates(map[string]interface{}{
			"status":     domain.LedgerPaid,
			"payout_id":  payoutID,
			"updated_at": paidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(ids)) {
		return domain.ErrConflict
	}
	return nil
}

// UpdateStatus applies an externally signalled transition (e.g. a rejected
// conversion), enforcing the central transition table.
func (r *LedgerRepository) UpdateStatus(id string, to domain.LedgerStatus) error {
	if !domain.ValidLedgerStatus(to) {
		return domain.ErrInvalidInput
	}
	e, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if !domain.CanTransition(e.Status, to) {
		return domain.ErrInvalidTransition
	}
	res := r.db.Model(&models.LedgerEntry{}).
		Where("id = ? AND status = ?", id, e.Status).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Transaction runs fn inside a database transaction.
func (r *LedgerRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *LedgerRepository) List(limit int) ([]models.LedgerEntry, error) {
	var list []models.LedgerEntry
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *LedgerRepository) ListByTenant(tenantID string) ([]models.LedgerEntry, error) {
	var list []models.LedgerEntry
	err := r.db.
		Joins("JOIN campaigns ON campaigns.id = ledger_entries.campaign_id").
		Where("campaigns.tenant_id = ?", tenantID).
		Order("ledger_entries.created_at DESC").
		Find(&list).Error
	return list, err
}

// CountForTenantSince counts conversions attributed to a tenant at or after t.
func (r *LedgerRepository) CountForTenantSince(tenantID string, t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.LedgerEntry{}).
		Joins("JOIN campaigns ON campaigns.id = ledger_entries.campaign_id").
		Where("campaigns.tenant_id = ? AND ledger_entries.created_at >= ?", tenantID, t).
		Count(&n).Error
	return n, err
}

// TenantTotals sums a tenant's creator earnings and the amounts shared with
// end-users, across all non-rejected entries.
func (r *LedgerRepository) TenantTotals(tenantID string) (earned, shared float64, err error) {
	row := r.db.Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(ledger_entries.creator_amount), 0), COALESCE(SUM(ledger_entries.user_amount), 0)").
		Joins("JOIN campaigns ON campaigns.id = ledger_entries.campaign_id").
		Where("campaigns.tenant_id = ? AND ledger_entries.status <> ?", tenantID, domain.LedgerRejected).
		Row()
	err = row.Scan(&earned, &shared)
	return earned, shared, err
}

// PendingCreatorAmount sums creator amounts still waiting on settlement.
func (r *LedgerRepository) PendingCreatorAmount(tenantID string) (float64, error) {
	var total float64
	row := r.db.Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(ledger_entries.creator_amount), 0)").
		Joins("JOIN campaigns ON campaigns.id = ledger_entries.campaign_id").
		Where("campaigns.tenant_id = ? AND ledger_entries.status = ?", tenantID, domain.LedgerQueued).
		Row()
	err := row.Scan(&total)
	return total, err
}

package models

import (
	"time"

	"hissaback/internal/domain"
)

// LedgerEntry records one conversion's computed commission split. Immutable
// after creation except for the status lifecycle. The unique index on
// OrderID makes duplicate webhook deliveries a no-op at the database level.
type LedgerEntry struct {
	ID             string              `gorm:"primaryKey;size:32" json:"ledger_id"`
	ConversionID   string              `gorm:"size:32;index" json:"conv_id"`
	ClickID        string              `gorm:"size:32;not null;index" json:"click_id"`
	LinkID         string              `gorm:"size:32;not null;index" json:"link_id"`
	CampaignID     string              `gorm:"size:32;not null;index" json:"campaign_id"`
	OfferID        string              `gorm:"size:32;not null;index" json:"offer_id"`
	UserID         string              `gorm:"size:64;not null;index" json:"user_id"`
	OrderID        string              `gorm:"size:64;uniqueIndex;not null" json:"order_id"`
	SaleAmount     float64             `gorm:"not null" json:"sale_amount"`
	BaseCommission float64             `gorm:"not null" json:"base_commission"`
	UserPct        float64             `gorm:"not null" json:"user_pct"`
	UserAmount     float64             `gorm:"not null" json:"user_amount"`
	CreatorAmount  float64             `gorm:"not null" json:"creator_amount"`
	Status         domain.LedgerStatus `gorm:"size:20;not null;index" json:"status"`
	PayoutID       string              `gorm:"size:32;index" json:"payout_id,omitempty"`
	CoolOffUntil   time.Time           `gorm:"not null;index" json:"cool_off_until"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"-"`
}

func (LedgerEntry) TableName() string { return "ledger_entries" }

package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer is an advertiser deal from the affiliate network catalogue.
// Rows are created and updated only by the sync upsert, keyed by ID.
// CoolOffDays and ExposedViaAPI carry no column default: gorm omits
// zero-valued fields from the INSERT when the column has one, which
// would make 0 days and false unstorable. The sync always sets both.
type Offer struct {
	ID                string         `gorm:"primaryKey;size:32" json:"offer_id"`
	NetworkCampaignID string         `gorm:"size:64;index" json:"network_campaign_id"`
	AdvertiserID      string         `gorm:"size:32;index" json:"advertiser_id"`
	Brand             string         `gorm:"size:120;not null;index" json:"brand"`
	Category          string         `gorm:"size:64;index" json:"category"`
	BaseCommissionPct float64        `gorm:"not null" json:"base_commission_pct"`
	CoolOffDays       int            `gorm:"not null" json:"cool_off_days"`
	Status            string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	ExposedViaAPI     bool           `gorm:"not null" json:"exposed_via_api"`
	PreviewURL        string         `gorm:"size:512" json:"preview_url"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Offer) TableName() string { return "offers" }

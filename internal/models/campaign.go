package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign belongs to exactly one tenant. SharePct is the percentage of the
// commission the creator keeps; the end-user receives the remainder.
// Campaigns are immutable once created.
type Campaign struct {
	ID        string         `gorm:"primaryKey;size:32" json:"campaign_id"`
	TenantID  string         `gorm:"size:32;not null;index" json:"tenant_id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	SharePct  float64        `gorm:"not null" json:"share_pct"`
	Status    string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (Campaign) TableName() string { return "campaigns" }

package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant is a creator account. DefaultSharePct is applied when a campaign
// is created without an explicit share.
type Tenant struct {
	ID              string         `gorm:"primaryKey;size:32" json:"tenant_id"`
	Name            string         `gorm:"size:120;not null" json:"name"`
	Email           string         `gorm:"size:255;index" json:"email"`
	Phone           string         `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	BrandName       string         `gorm:"size:120" json:"brand_name"`
	PasswordHash    string         `gorm:"size:255" json:"-"`
	PublisherID     string         `gorm:"size:32;index" json:"publisher_id"`
	APIKey          string         `gorm:"size:64;uniqueIndex" json:"api_key"`
	DefaultSharePct float64        `gorm:"not null;default:40" json:"default_share_pct"`
	ThemeColor      string         `gorm:"size:9;default:'#667eea'" json:"theme_color"`
	Status          string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string { return "tenants" }

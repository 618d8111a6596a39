package models

import (
	"time"

	"gorm.io/gorm"
)

// SmartLink binds one campaign to one offer. The slug is globally unique
// and human-readable: campaign name + brand + a fragment of the link id.
type SmartLink struct {
	ID         string         `gorm:"primaryKey;size:32" json:"link_id"`
	CampaignID string         `gorm:"size:32;not null;index" json:"campaign_id"`
	OfferID    string         `gorm:"size:32;not null;index" json:"offer_id"`
	Slug       string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	SmartURL   string         `gorm:"size:1024;not null" json:"smart_link"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Campaign Campaign `gorm:"foreignKey:CampaignID" json:"-"`
	Offer    Offer    `gorm:"foreignKey:OfferID" json:"-"`
}

func (SmartLink) TableName() string { return "smart_links" }

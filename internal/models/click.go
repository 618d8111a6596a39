package models

import "time"

// Click is an append-only event against a smart link. UserID is empty until
// the end-user has OTP-verified.
type Click struct {
	ID        string    `gorm:"primaryKey;size:32" json:"click_id"`
	LinkID    string    `gorm:"size:32;not null;index" json:"link_id"`
	UserID    string    `gorm:"size:64;index" json:"user_id,omitempty"`
	IP        string    `gorm:"size:45" json:"-"`
	UserAgent string    `gorm:"size:512" json:"-"`
	Referrer  string    `gorm:"size:512" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}

func (Click) TableName() string { return "clicks" }

package models

import "time"

// OTPRequest tracks a one-time code sent to a phone. Delivery goes through
// the notifier collaborator; verification is local.
type OTPRequest struct {
	ID        string     `gorm:"primaryKey;size:32" json:"request_id"`
	Phone     string     `gorm:"size:20;not null;index" json:"phone"`
	LinkID    string     `gorm:"size:32;index" json:"link_id,omitempty"`
	Code      string     `gorm:"size:10;not null" json:"-"`
	Purpose   string     `gorm:"size:30;not null" json:"purpose"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	Verified  bool       `gorm:"not null;default:false" json:"verified"`
	UsedAt    *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

func (OTPRequest) TableName() string { return "otp_requests" }

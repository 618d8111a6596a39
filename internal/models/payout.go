package models

import "time"

// Payout settles a batch of ledger entries for one recipient. LedgerIDs
// holds the settled entry ids as a JSON array; the authoritative link is
// the PayoutID back-reference on each entry.
type Payout struct {
	ID          string    `gorm:"primaryKey;size:32" json:"payout_id"`
	UserID      string    `gorm:"size:64;not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Method      string    `gorm:"size:30;not null" json:"method"`
	VoucherCode string    `gorm:"size:64;not null" json:"voucher_code"`
	LedgerIDs   string    `gorm:"type:text" json:"-"`
	PaidAt      time.Time `gorm:"index" json:"ts_paid"`
	CreatedAt   time.Time `json:"-"`
}

func (Payout) TableName() string { return "payouts" }

package service

import (
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"
)

// Split is the outcome of dividing one conversion's commission between the
// end-user and the creator.
type Split struct {
	BaseCommission float64
	UserPct        float64
	UserAmount     float64
	CreatorAmount  float64
	CoolOffUntil   time.Time
}

// ComputeSplit divides the commission on a sale. Pure: no clock reads, no
// storage. The creator amount is the remainder of base minus user, so the
// two always sum to the base commission exactly regardless of rounding.
func ComputeSplit(offer *models.Offer, campaign *models.Campaign, saleAmount float64, now time.Time) (Split, error) {
	if saleAmount <= 0 {
		return Split{}, domain.ErrInvalidInput
	}
	base := offer.BaseCommissionPct * saleAmount / 100
	userPct := 100 - campaign.SharePct
	userAmount := base * userPct / 100
	return Split{
		BaseCommission: base,
		UserPct:        userPct,
		UserAmount:     userAmount,
		CreatorAmount:  base - userAmount,
		CoolOffUntil:   now.AddDate(0, 0, offer.CoolOffDays),
	}, nil
}

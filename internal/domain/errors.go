package domain

import "errors"

// Resolution errors carry the stage that failed so callers can tell a missing
// click apart from a missing link, campaign or offer.
var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrLinkNotFound     = errors.New("link not found")
	ErrClickNotFound    = errors.New("click not found")
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateOrder    = errors.New("ledger entry already exists for order")
	ErrConflict          = errors.New("conflicting concurrent update")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// IsNotFound reports whether err is any of the resolution-stage errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrOfferNotFound) ||
		errors.Is(err, ErrCampaignNotFound) ||
		errors.Is(err, ErrLinkNotFound) ||
		errors.Is(err, ErrClickNotFound)
}

package domain

// LedgerStatus is the settlement state of a single conversion's commission.
type LedgerStatus string

const (
	LedgerQueued    LedgerStatus = "queued"
	LedgerConfirmed LedgerStatus = "confirmed"
	LedgerPending   LedgerStatus = "pending"
	LedgerPaid      LedgerStatus = "paid"
	LedgerRejected  LedgerStatus = "rejected"
)

// ledgerTransitions is the only place a status change may be declared.
// "pending" holds a non-approved conversion verbatim for audit; it never
// becomes payout-eligible without passing through queued.
var ledgerTransitions = map[LedgerStatus][]LedgerStatus{
	LedgerQueued:    {LedgerConfirmed, LedgerPaid, LedgerRejected},
	LedgerConfirmed: {LedgerPaid, LedgerRejected},
	LedgerPending:   {LedgerQueued, LedgerRejected},
	LedgerPaid:      {},
	LedgerRejected:  {},
}

// CanTransition reports whether from -> to is an allowed ledger move.
func CanTransition(from, to LedgerStatus) bool {
	for _, next := range ledgerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidLedgerStatus reports whether s is a member of the closed enum.
func ValidLedgerStatus(s LedgerStatus) bool {
	_, ok := ledgerTransitions[s]
	return ok
}

// Conversion webhook statuses from the advertiser network.
const (
	ConversionApproved = "approved"
	ConversionPending  = "pending"
	ConversionRejected = "rejected"
)

// LedgerStatusForConversion maps a webhook status onto the ledger enum.
// Approved conversions enter the payout pipeline; everything else is kept
// as an audit record only.
func LedgerStatusForConversion(status string) (LedgerStatus, bool) {
	switch status {
	case ConversionApproved:
		return LedgerQueued, true
	case ConversionPending:
		return LedgerPending, true
	case ConversionRejected:
		return LedgerRejected, true
	}
	return "", false
}

const (
	OfferActive   = "active"
	OfferInactive = "inactive"
)

const (
	CampaignActive = "active"
	CampaignPaused = "paused"
)

const (
	TenantActive = "active"
)

const (
	PayoutMethodAmazonGV = "amazon_gv"
	PayoutMethodUPI      = "upi"
)

// Share percentage bounds for campaigns (business rule).
const (
	MinSharePct = 10.0
	MaxSharePct = 90.0
)

// System setting keys. Values seeded from config, editable at runtime.
const (
	SettingMinPayoutAmount = "payout.min_amount"
	SettingDefaultSharePct = "campaign.default_share_pct"
)

// OTP purposes.
const (
	OTPPurposeCreatorLogin = "creator_login"
	OTPPurposeEndUser      = "enduser_reward"
)

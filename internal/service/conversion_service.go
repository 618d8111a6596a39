package service

import (
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"
)

// ConversionEvent is the advertiser network's webhook payload.
type ConversionEvent struct {
	ClickID    string  `json:"click_id" binding:"required"`
	OfferID    string  `json:"offer_id" binding:"required"`
	SaleAmount float64 `json:"sale_amount"`
	OrderID    string  `json:"order_id" binding:"required"`
	Status     string  `json:"status" binding:"required"`
}

// ConversionService turns a conversion event into a ledger entry: resolve
// attribution, compute the split, append. One entry per order id, ever.
type ConversionService struct {
	attribution *AttributionService
	offerRepo   *repository.OfferRepository
	ledgerRepo  *repository.LedgerRepository
}

func NewConversionService(
	attribution *AttributionService,
	offerRepo *repository.OfferRepository,
	ledgerRepo *repository.LedgerRepository,
) *ConversionService {
	return &ConversionService{
		attribution: attribution,
		offerRepo:   offerRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Process validates the event, reconstructs its attribution chain and
// appends the computed split to the ledger. Approved conversions enter as
// queued; pending and rejected ones are stored for audit and never become
// payout candidates. A duplicate order id fails with ErrDuplicateOrder.
func (s *ConversionService) Process(ev ConversionEvent) (*models.LedgerEntry, error) {
	status, ok := domain.LedgerStatusForConversion(ev.Status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if ev.SaleAmount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	attr, err := s.attribution.Resolve(ev.ClickID)
	if err != nil {
		return nil, err
	}
	// The webhook names its own offer; the commission terms come from that
	// offer, not the one the link was minted against.
	offer := attr.Offer
	if ev.OfferID != "" && ev.OfferID != offer.ID {
		offer, err = s.offerRepo.GetByID(ev.OfferID)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	split, err := ComputeSplit(offer, attr.Campaign, ev.SaleAmount, now)
	if err != nil {
		return nil, err
	}
	userID := attr.Click.UserID
	if userID == "" {
		userID = "anonymous"
	}
	entry := &models.LedgerEntry{
		ID:             models.NewID("led"),
		ConversionID:   models.NewID("conv"),
		ClickID:        attr.Click.ID,
		LinkID:         attr.Link.ID,
		CampaignID:     attr.Campaign.ID,
		OfferID:        offer.ID,
		UserID:         userID,
		OrderID:        ev.OrderID,
		SaleAmount:     ev.SaleAmount,
		BaseCommission: split.BaseCommission,
		UserPct:        split.UserPct,
		UserAmount:     split.UserAmount,
		CreatorAmount:  split.CreatorAmount,
		Status:         status,
		CoolOffUntil:   split.CoolOffUntil,
	}
	if err := s.ledgerRepo.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Reject applies an external rejection signal to a queued entry.
func (s *ConversionService) Reject(ledgerID string) error {
	return s.ledgerRepo.UpdateStatus(ledgerID, domain.LedgerRejected)
}

package service

import (
	"hissaback/internal/models"
	"hissaback/internal/repository"
)

// Attribution is the reconstructed context of a conversion: the click that
// led to it and the link, campaign and offer behind that click.
type Attribution struct {
	Click    *models.Click
	Link     *models.SmartLink
	Campaign *models.Campaign
	Offer    *models.Offer
}

// AttributionService resolves conversion context from a click id. Pure read
// path: every hop is a primary-key lookup of rows that are immutable once
// created, so no locking is needed against concurrent click/link creation.
type AttributionService struct {
	clickRepo    *repository.ClickRepository
	linkRepo     *repository.LinkRepository
	campaignRepo *repository.CampaignRepository
	offerRepo    *repository.OfferRepository
}

func NewAttributionService(
	clickRepo *repository.ClickRepository,
	linkRepo *repository.LinkRepository,
	campaignRepo *repository.CampaignRepository,
	offerRepo *repository.OfferRepository,
) *AttributionService {
	return &AttributionService{
		clickRepo:    clickRepo,
		linkRepo:     linkRepo,
		campaignRepo: campaignRepo,
		offerRepo:    offerRepo,
	}
}

// Resolve walks click -> link -> campaign -> offer. It fails at the first
// missing stage with that stage's sentinel error (ErrClickNotFound,
// ErrLinkNotFound, ErrCampaignNotFound, ErrOfferNotFound), so callers can
// report exactly where the chain broke.
func (s *AttributionService) Resolve(clickID string) (*Attribution, error) {
	click, err := s.clickRepo.GetByID(clickID)
	if err != nil {
		return nil, err
	}
	link, err := s.linkRepo.GetByID(click.LinkID)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaignRepo.GetByID(link.CampaignID)
	if err != nil {
		return nil, err
	}
	offer, err := s.offerRepo.GetByID(link.OfferID)
	if err != nil {
		return nil, err
	}
	return &Attribution{Click: click, Link: link, Campaign: campaign, Offer: offer}, nil
}

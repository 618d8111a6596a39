package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"
)

// CampaignService creates campaigns and their smart links, enforcing the
// share-percentage business rule.
type CampaignService struct {
	tenantRepo   *repository.TenantRepository
	campaignRepo *repository.CampaignRepository
	offerRepo    *repository.OfferRepository
	linkRepo     *repository.LinkRepository
	linkBaseURL  string
}

func NewCampaignService(
	tenantRepo *repository.TenantRepository,
	campaignRepo *repository.CampaignRepository,
	offerRepo *repository.OfferRepository,
	linkRepo *repository.LinkRepository,
	linkBaseURL string,
) *CampaignService {
	return &CampaignService{
		tenantRepo:   tenantRepo,
		campaignRepo: campaignRepo,
		offerRepo:    offerRepo,
		linkRepo:     linkRepo,
		linkBaseURL:  linkBaseURL,
	}
}

// CreateCampaign creates a campaign for the tenant. A nil sharePct falls
// back to the tenant's default; the resulting value must land in [10,90].
func (s *CampaignService) CreateCampaign(tenantID, name string, sharePct *float64) (*models.Campaign, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	share := tenant.DefaultSharePct
	if sharePct != nil {
		share = *sharePct
	}
	if share < domain.MinSharePct || share > domain.MaxSharePct {
		return nil, domain.ErrInvalidInput
	}
	campaign := &models.Campaign{
		ID:       models.NewID("camp"),
		TenantID: tenantID,
		Name:     name,
		SharePct: share,
		Status:   domain.CampaignActive,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = slugStrip.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// GenerateSmartLink binds a campaign to an offer under a unique slug. Two
// campaigns with the same normalized name and brand would collide, so the
// link's own id fragment is part of the slug; on the rare remaining
// collision the link is re-minted with a fresh id, never overwritten.
func (s *CampaignService) GenerateSmartLink(campaignID, offerID string) (*models.SmartLink, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	offer, err := s.offerRepo.GetByID(offerID)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < 5; attempt++ {
		linkID := models.NewID("lnk")
		slug := fmt.Sprintf("%s-%s-%s",
			slugify(campaign.Name), slugify(offer.Brand), models.IDFragment(linkID, 6))
		link := &models.SmartLink{
			ID:         linkID,
			CampaignID: campaign.ID,
			OfferID:    offer.ID,
			Slug:       slug,
			SmartURL: fmt.Sprintf("%s/go/%s?publisher_id=%s&campaign_id=%s",
				s.linkBaseURL, slug, campaign.TenantID, campaign.ID),
		}
		err := s.linkRepo.Create(link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrSlugTaken) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("could not mint a unique slug for campaign %s", campaignID)
}

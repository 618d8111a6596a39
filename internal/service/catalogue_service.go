package service

import (
	"context"
	"log"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"
	"hissaback/pkg/network"
)

// SyncStats summarizes one catalogue sync run.
type SyncStats struct {
	Processed int `json:"offers_processed"`
	Added     int `json:"added"`
	Updated   int `json:"updated"`
}

// CatalogueService keeps the offer store in step with the advertiser
// network and serves filtered offer listings.
type CatalogueService struct {
	offerRepo          *repository.OfferRepository
	source             network.CampaignSource
	defaultCoolOffDays int
}

func NewCatalogueService(offerRepo *repository.OfferRepository, source network.CampaignSource, defaultCoolOffDays int) *CatalogueService {
	return &CatalogueService{
		offerRepo:          offerRepo,
		source:             source,
		defaultCoolOffDays: defaultCoolOffDays,
	}
}

// SyncOffers pulls the network's campaign feed and upserts every record.
// Upserts are keyed by offer id, so re-running a sync never duplicates.
func (s *CatalogueService) SyncOffers(ctx context.Context) (*SyncStats, error) {
	records, err := s.source.GetCampaigns(ctx, "")
	if err != nil {
		return nil, err
	}
	stats := &SyncStats{Processed: len(records)}
	for _, rec := range records {
		offer := s.offerFromRecord(rec)
		result, err := s.offerRepo.Upsert(offer)
		if err != nil {
			log.Printf("[catalogue] upsert %s failed: %v", rec.ID, err)
			continue
		}
		switch result {
		case repository.UpsertAdded:
			stats.Added++
		case repository.UpsertUpdated:
			stats.Updated++
		}
	}
	return stats, nil
}

func (s *CatalogueService) offerFromRecord(rec network.CampaignRecord) *models.Offer {
	status := domain.OfferInactive
	if rec.Status == domain.OfferActive {
		status = domain.OfferActive
	}
	coolOff := rec.CoolOffDays
	if coolOff <= 0 {
		coolOff = s.defaultCoolOffDays
	}
	return &models.Offer{
		ID:                rec.ID,
		NetworkCampaignID: rec.ID,
		AdvertiserID:      rec.AdvertiserID,
		Brand:             rec.AdvertiserName,
		Category:          rec.Category,
		BaseCommissionPct: rec.CommissionPct,
		CoolOffDays:       coolOff,
		Status:            status,
		ExposedViaAPI:     true,
		PreviewURL:        rec.PreviewURL,
	}
}

// ListOffers applies the composable filter chain and returns matching offers.
func (s *CatalogueService) ListOffers(f repository.OfferFilters) ([]models.Offer, error) {
	return s.offerRepo.List(f)
}

// Categories lists the distinct active offer categories.
func (s *CatalogueService) Categories() ([]string, error) {
	return s.offerRepo.Categories()
}

// Advertisers proxies the network's brand list.
func (s *CatalogueService) Advertisers(ctx context.Context) ([]network.AdvertiserRecord, error) {
	return s.source.GetAdvertisers(ctx)
}

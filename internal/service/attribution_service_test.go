package service

import (
	"testing"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttributionService(db *gorm.DB) *AttributionService {
	return NewAttributionService(
		repository.NewClickRepository(db),
		repository.NewLinkRepository(db),
		repository.NewCampaignRepository(db),
		repository.NewOfferRepository(db),
	)
}

func TestResolveFullChain(t *testing.T) {
	db := newTestDB(t)
	c := seedChain(t, db)
	svc := newAttributionService(db)

	attr, err := svc.Resolve(c.click.ID)
	require.NoError(t, err)
	assert.Equal(t, c.click.ID, attr.Click.ID)
	assert.Equal(t, c.link.ID, attr.Link.ID)
	assert.Equal(t, c.campaign.ID, attr.Campaign.ID)
	assert.Equal(t, c.offer.ID, attr.Offer.ID)
}

func TestResolveUnknownClick(t *testing.T) {
	db := newTestDB(t)
	seedChain(t, db)
	svc := newAttributionService(db)

	_, err := svc.Resolve("clk_missing")
	assert.ErrorIs(t, err, domain.ErrClickNotFound)
}

func TestResolveDanglingLink(t *testing.T) {
	db := newTestDB(t)
	seedChain(t, db)
	svc := newAttributionService(db)

	orphan := &models.Click{ID: models.NewID("clk"), LinkID: "lnk_missing"}
	require.NoError(t, db.Create(orphan).Error)

	_, err := svc.Resolve(orphan.ID)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestResolveDanglingCampaign(t *testing.T) {
	db := newTestDB(t)
	c := seedChain(t, db)
	svc := newAttributionService(db)

	link := &models.SmartLink{
		ID:         models.NewID("lnk"),
		CampaignID: "camp_missing",
		OfferID:    c.offer.ID,
		Slug:       "dangling-campaign",
		SmartURL:   "https://hissaback.app/go/dangling-campaign",
	}
	require.NoError(t, db.Create(link).Error)
	click := &models.Click{ID: models.NewID("clk"), LinkID: link.ID}
	require.NoError(t, db.Create(click).Error)

	_, err := svc.Resolve(click.ID)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestResolveDanglingOffer(t *testing.T) {
	db := newTestDB(t)
	c := seedChain(t, db)
	svc := newAttributionService(db)

	link := &models.SmartLink{
		ID:         models.NewID("lnk"),
		CampaignID: c.campaign.ID,
		OfferID:    "off_missing",
		Slug:       "dangling-offer",
		SmartURL:   "https://hissaback.app/go/dangling-offer",
	}
	require.NoError(t, db.Create(link).Error)
	click := &models.Click{ID: models.NewID("clk"), LinkID: link.ID}
	require.NoError(t, db.Create(click).Error)

	_, err := svc.Resolve(click.ID)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hissaback/internal/database"
	"hissaback/internal/models"
	"hissaback/pkg/network"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// chain is a fully seeded attribution path: tenant -> campaign -> link,
// link -> offer, click -> link.
type chain struct {
	tenant   *models.Tenant
	offer    *models.Offer
	campaign *models.Campaign
	link     *models.SmartLink
	click    *models.Click
}

func seedChain(t *testing.T, db *gorm.DB) chain {
	t.Helper()
	tenant := &models.Tenant{
		ID:              models.NewID("tnt"),
		Name:            "Priya",
		Phone:           "+919812345670",
		DefaultSharePct: 40,
		Status:          "active",
	}
	require.NoError(t, db.Create(tenant).Error)
	offer := &models.Offer{
		ID:                models.NewID("off"),
		AdvertiserID:      "adv_1",
		Brand:             "Myntra",
		Category:          "fashion",
		BaseCommissionPct: 6,
		CoolOffDays:       30,
		Status:            "active",
		ExposedViaAPI:     true,
	}
	require.NoError(t, db.Create(offer).Error)
	campaign := &models.Campaign{
		ID:       models.NewID("camp"),
		TenantID: tenant.ID,
		Name:     "Summer Sale",
		SharePct: 50,
		Status:   "active",
	}
	require.NoError(t, db.Create(campaign).Error)
	link := &models.SmartLink{
		ID:         models.NewID("lnk"),
		CampaignID: campaign.ID,
		OfferID:    offer.ID,
		Slug:       "summer-sale-myntra-" + models.IDFragment(models.NewID("x"), 6),
		SmartURL:   "https://hissaback.app/go/summer-sale-myntra",
	}
	require.NoError(t, db.Create(link).Error)
	click := &models.Click{
		ID:     models.NewID("clk"),
		LinkID: link.ID,
		UserID: "+919899000011",
	}
	require.NoError(t, db.Create(click).Error)
	return chain{tenant: tenant, offer: offer, campaign: campaign, link: link, click: click}
}

// memoNotifier records every dispatched message.
type memoNotifier struct {
	recipients []string
	messages   []string
}

func (n *memoNotifier) Notify(_ context.Context, recipient, message string) error {
	n.recipients = append(n.recipients, recipient)
	n.messages = append(n.messages, message)
	return nil
}

// failingNotifier always errors, for the best-effort delivery tests.
type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, string, string) error {
	return errors.New("sms gateway down")
}

// stubSource feeds canned catalogue records instead of calling the network.
type stubSource struct {
	campaigns   []network.CampaignRecord
	advertisers []network.AdvertiserRecord
	err         error
}

func (s *stubSource) GetCampaigns(context.Context, string) ([]network.CampaignRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaigns, nil
}

func (s *stubSource) GetAdvertisers(context.Context) ([]network.AdvertiserRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.advertisers, nil
}

func pastCoolOff() time.Time { return time.Now().UTC().Add(-time.Hour) }

package repository

import (
	"testing"
	"time"

	"hissaback/internal/database"
	"hissaback/internal/domain"
	"hissaback/internal/models"

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
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testEntry(orderID string, userAmount float64, status domain.LedgerStatus, coolOffUntil time.Time) *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:             models.NewID("led"),
		ConversionID:   models.NewID("conv"),
		ClickID:        "clk_1",
		LinkID:         "lnk_1",
		CampaignID:     "camp_1",
		OfferID:        "off_1",
		UserID:         "+919899000011",
		OrderID:        orderID,
		SaleAmount:     userAmount * 20,
		BaseCommission: userAmount * 2,
		UserPct:        50,
		UserAmount:     userAmount,
		CreatorAmount:  userAmount,
		Status:         status,
		CoolOffUntil:   coolOffUntil,
	}
}

package repository

import (
	"testing"
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAppendDuplicateOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	past := time.Now().UTC().Add(-time.Hour)

	require.NoError(t, repo.Append(testEntry("ORD-1", 20, domain.LedgerQueued, past)))
	err := repo.Append(testEntry("ORD-1", 99, domain.LedgerQueued, past))
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAppendRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)

	entry := testEntry("ORD-2", 20, "settling", time.Now().UTC())
	assert.ErrorIs(t, repo.Append(entry), domain.ErrInvalidInput)
}

func TestListEligibleBoundaries(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	require.NoError(t, repo.Append(testEntry("ORD-10", 10, domain.LedgerQueued, past)))   // at minimum
	require.NoError(t, repo.Append(testEntry("ORD-11", 9.99, domain.LedgerQueued, past))) // below minimum
	require.NoError(t, repo.Append(testEntry("ORD-12", 50, domain.LedgerQueued, now)))    // cool-off just elapsed
	require.NoError(t, repo.Append(testEntry("ORD-13", 50, domain.LedgerQueued, future))) // still cooling off
	require.NoError(t, repo.Append(testEntry("ORD-14", 50, domain.LedgerPending, past)))  // not queued
	require.NoError(t, repo.Append(testEntry("ORD-15", 50, domain.LedgerPaid, past)))     // already settled

	eligible, err := repo.ListEligible(now, 10)
	require.NoError(t, err)
	orders := make([]string, 0, len(eligible))
	for _, e := range eligible {
		orders = append(orders, e.OrderID)
	}
	assert.ElementsMatch(t, []string{"ORD-10", "ORD-12"}, orders)
}

func TestMarkPaidGuardsAgainstConcurrentSettlement(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	queued := testEntry("ORD-20", 20, domain.LedgerQueued, past)
	taken := testEntry("ORD-21", 20, domain.LedgerPaid, past)
	require.NoError(t, repo.Append(queued))
	require.NoError(t, repo.Append(taken))

	// one member of the batch was already settled elsewhere, so the whole
	// batch must fail and roll back
	err := repo.Transaction(func(tx *gorm.DB) error {
		return repo.MarkPaid(tx, []string{queued.ID, taken.ID}, "payout_1", now)
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	var stored models.LedgerEntry
	require.NoError(t, db.First(&stored, "id = ?", queued.ID).Error)
	assert.Equal(t, domain.LedgerQueued, stored.Status, "rollback must restore the queued entry")
	assert.Empty(t, stored.PayoutID)
}

func TestMarkPaidFullBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	a := testEntry("ORD-30", 20, domain.LedgerQueued, past)
	b := testEntry("ORD-31", 30, domain.LedgerQueued, past)
	require.NoError(t, repo.Append(a))
	require.NoError(t, repo.Append(b))

	err := repo.Transaction(func(tx *gorm.DB) error {
		return repo.MarkPaid(tx, []string{a.ID, b.ID}, "payout_1", now)
	})
	require.NoError(t, err)

	for _, id := range []string{a.ID, b.ID} {
		var stored models.LedgerEntry
		require.NoError(t, db.First(&stored, "id = ?", id).Error)
		assert.Equal(t, domain.LedgerPaid, stored.Status)
		assert.Equal(t, "payout_1", stored.PayoutID)
	}
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	past := time.Now().UTC().Add(-time.Hour)

	entry := testEntry("ORD-40", 20, domain.LedgerQueued, past)
	require.NoError(t, repo.Append(entry))

	require.NoError(t, repo.UpdateStatus(entry.ID, domain.LedgerRejected))

	// rejected is terminal
	assert.ErrorIs(t, repo.UpdateStatus(entry.ID, domain.LedgerQueued), domain.ErrInvalidTransition)
	assert.ErrorIs(t, repo.UpdateStatus(entry.ID, domain.LedgerPaid), domain.ErrInvalidTransition)

	// unknown target status is invalid input
	assert.ErrorIs(t, repo.UpdateStatus(entry.ID, "settling"), domain.ErrInvalidInput)
}

func TestTenantTotalsExcludeRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	past := time.Now().UTC().Add(-time.Hour)

	campaign := &models.Campaign{ID: "camp_1", TenantID: "tnt_1", Name: "C", SharePct: 50, Status: "active"}
	require.NoError(t, db.Create(campaign).Error)

	require.NoError(t, repo.Append(testEntry("ORD-50", 20, domain.LedgerQueued, past)))
	require.NoError(t, repo.Append(testEntry("ORD-51", 30, domain.LedgerPaid, past)))
	rejected := testEntry("ORD-52", 99, domain.LedgerRejected, past)
	require.NoError(t, repo.Append(rejected))

	earned, shared, err := repo.TenantTotals("tnt_1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, earned)
	assert.Equal(t, 50.0, shared)

	pending, err := repo.PendingCreatorAmount("tnt_1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, pending)
}

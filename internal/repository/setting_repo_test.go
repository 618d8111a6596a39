package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingSetAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Set("payout.min_amount", "25"))
	val, err := repo.Get("payout.min_amount")
	require.NoError(t, err)
	assert.Equal(t, "25", val)

	// Set on an existing key overwrites
	require.NoError(t, repo.Set("payout.min_amount", "50"))
	val, err = repo.Get("payout.min_amount")
	require.NoError(t, err)
	assert.Equal(t, "50", val)
}

func TestSettingGetFloat(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	assert.Equal(t, 10.0, repo.GetFloat("payout.min_amount", 10), "unset key returns fallback")

	require.NoError(t, repo.Set("payout.min_amount", "37.5"))
	assert.Equal(t, 37.5, repo.GetFloat("payout.min_amount", 10))

	require.NoError(t, repo.Set("payout.min_amount", "not-a-number"))
	assert.Equal(t, 10.0, repo.GetFloat("payout.min_amount", 10), "garbage value returns fallback")
}

func TestSettingSeedDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	require.NoError(t, repo.Set("campaign.default_share_pct", "55"))

	require.NoError(t, repo.SeedDefaults(map[string]string{
		"campaign.default_share_pct": "40",
		"payout.min_amount":          "10",
	}))

	val, err := repo.Get("campaign.default_share_pct")
	require.NoError(t, err)
	assert.Equal(t, "55", val, "seeding must not clobber an existing value")

	val, err = repo.Get("payout.min_amount")
	require.NoError(t, err)
	assert.Equal(t, "10", val)
}

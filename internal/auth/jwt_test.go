package auth

import (
	"testing"
	"time"

	"hissaback/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "hissaback-test",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateAccessToken(cfg, "tnt_abc123", "+919812345670")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "tnt_abc123", claims.TenantID)
	assert.Equal(t, "+919812345670", claims.Phone)
	assert.Equal(t, "hissaback-test", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateRefreshToken(cfg, "tnt_abc123")
	require.NoError(t, err)

	tenantID, err := ParseRefreshToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "tnt_abc123", tenantID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	cfg := jwtConfig()

	refresh, err := GenerateRefreshToken(cfg, "tnt_abc123")
	require.NoError(t, err)
	_, err = ParseAccessToken(cfg, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := GenerateAccessToken(cfg, "tnt_abc123", "+919812345670")
	require.NoError(t, err)
	_, err = ParseRefreshToken(cfg, access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredAccessToken(t *testing.T) {
	cfg := jwtConfig()
	cfg.AccessExpiry = -time.Minute

	token, err := GenerateAccessToken(cfg, "tnt_abc123", "+919812345670")
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedToken(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateAccessToken(cfg, "tnt_abc123", "+919812345670")
	require.NoError(t, err)

	other := jwtConfig()
	other.AccessSecret = "a-different-secret"
	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

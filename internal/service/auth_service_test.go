package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"hissaback/config"
	"hissaback/internal/auth"
	"hissaback/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "hissaback-test",
		},
		Commission: config.CommissionConfig{DefaultSharePct: 40, DefaultCoolOffDays: 30},
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	otp := NewOTPService(repository.NewOTPRepository(db), nil, 5*time.Minute)
	return NewAuthService(testConfig(), repository.NewTenantRepository(db), otp)
}

func TestSignup(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	tenant, err := svc.Signup("Priya", "priya@example.com", "+919812345670", "PriyaPicks", "s3cret-pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tenant.ID, "tnt_"))
	assert.True(t, strings.HasPrefix(tenant.PublisherID, "pub_"))
	assert.True(t, strings.HasPrefix(tenant.APIKey, "pk_live_"))
	assert.Equal(t, 40.0, tenant.DefaultSharePct)
	assert.NotEqual(t, "s3cret-pw", tenant.PasswordHash)
}

func TestSignupBrandDefaultsToName(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	tenant, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "Priya", tenant.BrandName)
}

func TestSignupDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)

	_, err = svc.Signup("Imposter", "", "+919812345670", "", "other-pw")
	assert.ErrorIs(t, err, ErrPhoneExists)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	created, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)

	tenant, access, refresh, err := svc.Login("+919812345670", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, tenant.ID)

	claims, err := auth.ParseAccessToken(&testConfig().JWT, access)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.TenantID)
	assert.Equal(t, "+919812345670", claims.Phone)

	tenantID, err := auth.ParseRefreshToken(&testConfig().JWT, refresh)
	require.NoError(t, err)
	assert.Equal(t, created.ID, tenantID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)

	_, _, _, err = svc.Login("+919812345670", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLoginUnknownPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, _, _, err := svc.Login("+910000000000", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLoginOTPFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	created, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)

	req, err := svc.RequestLoginOTP(context.Background(), "+919812345670")
	require.NoError(t, err)

	tenant, access, _, err := svc.VerifyLoginOTP(req.ID, req.Code)
	require.NoError(t, err)
	assert.Equal(t, created.ID, tenant.ID)
	assert.NotEmpty(t, access)
}

func TestRefresh(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	created, err := svc.Signup("Priya", "", "+919812345670", "", "s3cret-pw")
	require.NoError(t, err)

	_, _, refresh, err := svc.Login("+919812345670", "s3cret-pw")
	require.NoError(t, err)

	access, _, err := svc.Refresh(refresh)
	require.NoError(t, err)

	claims, err := auth.ParseAccessToken(&testConfig().JWT, access)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.TenantID)

	_, _, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

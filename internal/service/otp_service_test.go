package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func TestOTPRequestAndVerify(t *testing.T) {
	db := newTestDB(t)
	notifier := &memoNotifier{}
	svc := NewOTPService(repository.NewOTPRepository(db), notifier, 5*time.Minute)

	req, err := svc.Request(context.Background(), "+919899000011", "lnk_1", domain.OTPPurposeEndUser)
	require.NoError(t, err)
	assert.Regexp(t, sixDigits, req.Code)
	assert.False(t, req.Verified)

	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, "+919899000011", notifier.recipients[0])
	assert.Contains(t, notifier.messages[0], req.Code)

	verified, err := svc.Verify(req.ID, req.Code)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, "+919899000011", verified.Phone)

	var stored models.OTPRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.True(t, stored.Verified)
	assert.NotNil(t, stored.UsedAt)
}

func TestOTPVerifyWrongCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(repository.NewOTPRepository(db), nil, 5*time.Minute)

	req, err := svc.Request(context.Background(), "+919899000011", "", domain.OTPPurposeCreatorLogin)
	require.NoError(t, err)

	wrong := "000000"
	if req.Code == wrong {
		wrong = "000001"
	}
	_, err = svc.Verify(req.ID, wrong)
	assert.ErrorIs(t, err, ErrOTPInvalid)
}

func TestOTPVerifyExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(repository.NewOTPRepository(db), nil, -time.Minute)

	req, err := svc.Request(context.Background(), "+919899000011", "", domain.OTPPurposeEndUser)
	require.NoError(t, err)

	_, err = svc.Verify(req.ID, req.Code)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestOTPVerifyUnknownRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(repository.NewOTPRepository(db), nil, 5*time.Minute)

	_, err := svc.Verify("req_missing", "123456")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPRequestSurvivesNotifierFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(repository.NewOTPRepository(db), failingNotifier{}, 5*time.Minute)

	req, err := svc.Request(context.Background(), "+919899000011", "", domain.OTPPurposeEndUser)
	require.NoError(t, err)
	assert.NotEmpty(t, req.Code)
}

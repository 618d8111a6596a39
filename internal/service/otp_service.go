package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"hissaback/internal/models"
	"hissaback/internal/repository"
)

var (
	ErrOTPNotFound = errors.New("unknown otp request")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPInvalid  = errors.New("invalid otp code")
)

// OTPService issues and checks one-time codes. Delivery rides on the
// notifier collaborator; a delivery failure is logged, not returned, so an
// SMS outage cannot break the request path.
type OTPService struct {
	repo     *repository.OTPRepository
	notifier Notifier
	expiry   time.Duration
}

func NewOTPService(repo *repository.OTPRepository, notifier Notifier, expiry time.Duration) *OTPService {
	return &OTPService{repo: repo, notifier: notifier, expiry: expiry}
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(fmt.Sprintf("otp: rand failed: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// Request creates a code for the phone and dispatches it best-effort.
func (s *OTPService) Request(ctx context.Context, phone, linkID, purpose string) (*models.OTPRequest, error) {
	req := &models.OTPRequest{
		ID:        models.NewID("req"),
		Phone:     phone,
		LinkID:    linkID,
		Code:      generateCode(),
		Purpose:   purpose,
		ExpiresAt: time.Now().UTC().Add(s.expiry),
	}
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		msg := fmt.Sprintf("Your Hissaback verification code is %s", req.Code)
		if err := s.notifier.Notify(ctx, phone, msg); err != nil {
			log.Printf("[otp] send to %s failed: %v", phone, err)
		}
	}
	return req, nil
}

// Verify checks the code against a pending request and marks it used.
func (s *OTPService) Verify(requestID, code string) (*models.OTPRequest, error) {
	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, ErrOTPNotFound
	}
	if time.Now().UTC().After(req.ExpiresAt) {
		return nil, ErrOTPExpired
	}
	if req.Code != code {
		return nil, ErrOTPInvalid
	}
	if err := s.repo.MarkVerified(req.ID); err != nil {
		return nil, err
	}
	req.Verified = true
	return req, nil
}

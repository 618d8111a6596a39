package service

import (
	"context"
	"encoding/hex"
	"errors"
	"log"

	"hissaback/config"
	"hissaback/internal/auth"
	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPhoneExists  = errors.New("account already exists with this phone number")
	ErrInvalidCreds = errors.New("invalid phone or password")
)

// AuthService onboards creators and issues their bearer credentials. The
// rest of the system only ever sees the verified tenant id carried in the
// token claims.
type AuthService struct {
	cfg        *config.Config
	tenantRepo *repository.TenantRepository
	otp        *OTPService
}

func NewAuthService(cfg *config.Config, tenantRepo *repository.TenantRepository, otp *OTPService) *AuthService {
	return &AuthService{cfg: cfg, tenantRepo: tenantRepo, otp: otp}
}

// Signup creates a tenant with the platform default share percentage and a
// fresh publisher id and API key. Phone numbers are unique across tenants.
func (s *AuthService) Signup(name, email, phone, brandName, password string) (*models.Tenant, error) {
	if _, err := s.tenantRepo.GetByPhone(phone); err == nil {
		return nil, ErrPhoneExists
	} else if !errors.Is(err, domain.ErrTenantNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if brandName == "" {
		brandName = name
	}
	key := uuid.New()
	tenant := &models.Tenant{
		ID:              models.NewID("tnt"),
		Name:            name,
		Email:           email,
		Phone:           phone,
		BrandName:       brandName,
		PasswordHash:    string(hash),
		PublisherID:     models.NewID("pub"),
		APIKey:          "pk_live_" + hex.EncodeToString(key[:]),
		DefaultSharePct: s.cfg.Commission.DefaultSharePct,
		Status:          domain.TenantActive,
	}
	if err := s.tenantRepo.Create(tenant); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, ErrPhoneExists
		}
		return nil, err
	}
	log.Printf("[onboarding] creator onboarded: %s (%s)", tenant.Name, tenant.ID)
	return tenant, nil
}

// Login checks the password and returns an access/refresh token pair.
func (s *AuthService) Login(phone, password string) (*models.Tenant, string, string, error) {
	tenant, err := s.tenantRepo.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(password)) != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, refresh, err := s.issueTokens(tenant)
	return tenant, access, refresh, err
}

// RequestLoginOTP starts a phone-code login for an existing creator.
func (s *AuthService) RequestLoginOTP(ctx context.Context, phone string) (*models.OTPRequest, error) {
	if _, err := s.tenantRepo.GetByPhone(phone); err != nil {
		return nil, err
	}
	return s.otp.Request(ctx, phone, "", domain.OTPPurposeCreatorLogin)
}

// VerifyLoginOTP completes a phone-code login and issues tokens.
func (s *AuthService) VerifyLoginOTP(requestID, code string) (*models.Tenant, string, string, error) {
	req, err := s.otp.Verify(requestID, code)
	if err != nil {
		return nil, "", "", err
	}
	tenant, err := s.tenantRepo.GetByPhone(req.Phone)
	if err != nil {
		return nil, "", "", err
	}
	access, refresh, err := s.issueTokens(tenant)
	return tenant, access, refresh, err
}

// Refresh trades a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	tenantID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return "", "", err
	}
	return s.issueTokens(tenant)
}

func (s *AuthService) issueTokens(t *models.Tenant) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, t.ID, t.Phone)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, t.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

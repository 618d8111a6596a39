package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Links      LinksConfig
	Network    NetworkConfig
	Commission CommissionConfig
	Payout     PayoutConfig
	Webhook    WebhookConfig
	OTP        OTPConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

// LinksConfig controls how smart links are rendered and where /go redirects land.
type LinksConfig struct {
	PublicBaseURL string // e.g. https://hissaback.app
}

// NetworkConfig points at the advertiser network the catalogue syncs from.
type NetworkConfig struct {
	BaseURL string
	APIKey  string
}

// CommissionConfig carries platform-wide split policy. Cool-off normally
// rides on the offer; DefaultCoolOffDays applies when the feed omits it.
type CommissionConfig struct {
	DefaultSharePct    float64
	DefaultCoolOffDays int
}

// PayoutConfig carries batching policy. MinAmount is the smallest user
// amount a ledger entry needs before it can join a payout.
type PayoutConfig struct {
	MinAmount float64
	Method    string
	Schedule  string // cron spec; empty disables the scheduled runner
}

type WebhookConfig struct {
	Secret string // HMAC secret for conversion webhooks; empty skips verification
}

type OTPConfig struct {
	Expiry time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8098"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "hissaback:hissaback@tcp(localhost:3306)/hissaback?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  getenv("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: getenv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "hissaback",
		},
		Links: LinksConfig{
			PublicBaseURL: getenv("LINKS_BASE_URL", "https://hissaback.app"),
		},
		Network: NetworkConfig{
			BaseURL: getenv("TRACKIER_BASE_URL", "https://api.trackier.com/v2"),
			APIKey:  getenv("TRACKIER_API_KEY", ""),
		},
		Commission: CommissionConfig{
			DefaultSharePct:    40,
			DefaultCoolOffDays: 30,
		},
		Payout: PayoutConfig{
			MinAmount: getenvFloat("PAYOUT_MIN_AMOUNT", 10),
			Method:    getenv("PAYOUT_METHOD", "amazon_gv"),
			Schedule:  getenv("PAYOUT_SCHEDULE", "@hourly"),
		},
		Webhook: WebhookConfig{
			Secret: getenv("CONVERSION_WEBHOOK_SECRET", ""),
		},
		OTP: OTPConfig{
			Expiry: 5 * time.Minute,
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

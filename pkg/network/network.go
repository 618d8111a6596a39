// Package network talks to the affiliate network (Trackier-style) that
// supplies the advertiser catalogue. The core only depends on the
// CampaignSource contract; sync mechanics live behind it.
package network

import "context"

// CampaignRecord is one advertiser campaign as the network reports it.
// The catalogue sync upserts these into the offer store.
type CampaignRecord struct {
	ID             string  `json:"id"`
	AdvertiserID   string  `json:"advertiser_id"`
	AdvertiserName string  `json:"advertiser_name"`
	Category       string  `json:"category"`
	CommissionPct  float64 `json:"commission_pct"`
	CoolOffDays    int     `json:"cool_off_days"`
	Status         string  `json:"status"`
	PreviewURL     string  `json:"preview_url"`
}

// AdvertiserRecord is one brand as the network reports it.
type AdvertiserRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	LogoURL  string `json:"logo_url"`
}

// CampaignSource is the catalogue sync collaborator.
type CampaignSource interface {
	GetCampaigns(ctx context.Context, advertiserID string) ([]CampaignRecord, error)
	GetAdvertisers(ctx context.Context) ([]AdvertiserRecord, error)
}

package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TrackierClient pulls campaigns and advertisers from the Trackier v2 API.
type TrackierClient struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

func NewTrackierClient(baseURL, apiKey string) *TrackierClient {
	if baseURL == "" {
		baseURL = "https://api.trackier.com/v2"
	}
	return &TrackierClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TrackierClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.APIKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trackier %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type trackierCampaign struct {
	ID             string `json:"id"`
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
	Category       string `json:"category"`
	Payout         struct {
		Amount float64 `json:"amount"`
		Model  string  `json:"model"`
	} `json:"payout"`
	Status     string `json:"status"`
	PreviewURL string `json:"preview_url"`
}

func (c *TrackierClient) GetCampaigns(ctx context.Context, advertiserID string) ([]CampaignRecord, error) {
	query := url.Values{}
	if advertiserID != "" {
		query.Set("advertiser_id", advertiserID)
	}
	var payload struct {
		Campaigns []trackierCampaign `json:"campaigns"`
	}
	if err := c.get(ctx, "/campaigns", query, &payload); err != nil {
		return nil, err
	}
	records := make([]CampaignRecord, 0, len(payload.Campaigns))
	for _, tc := range payload.Campaigns {
		records = append(records, CampaignRecord{
			ID:             tc.ID,
			AdvertiserID:   tc.AdvertiserID,
			AdvertiserName: tc.AdvertiserName,
			Category:       tc.Category,
			CommissionPct:  tc.Payout.Amount,
			Status:         tc.Status,
			PreviewURL:     tc.PreviewURL,
		})
	}
	return records, nil
}

func (c *TrackierClient) GetAdvertisers(ctx context.Context) ([]AdvertiserRecord, error) {
	var payload struct {
		Advertisers []AdvertiserRecord `json:"advertisers"`
	}
	if err := c.get(ctx, "/advertisers", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Advertisers, nil
}

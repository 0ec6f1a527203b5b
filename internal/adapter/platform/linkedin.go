package platform

import (
	"context"
	"fmt"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// LinkedIn implements port.PlatformAdapter against the Marketing REST API
// (JSON bodies, Bearer auth, Restli protocol headers). The remote hierarchy
// maps campaign -> adCampaignGroups, ad set -> adCampaigns and
// creative+ad -> creatives.
type LinkedIn struct {
	client apiClient
}

// NewLinkedIn returns an adapter rooted at baseURL, e.g.
// https://api.linkedin.com/rest.
func NewLinkedIn(baseURL string, timeout time.Duration) *LinkedIn {
	return &LinkedIn{client: newAPIClient(baseURL, timeout)}
}

func (l *LinkedIn) headers(cred domain.Credential) map[string]string {
	return map[string]string{
		"Authorization":             "Bearer " + cred.AccessToken,
		"X-Restli-Protocol-Version": "2.0.0",
		"LinkedIn-Version":          "202401",
	}
}

func linkedinState(s domain.CampaignState) string {
	if s == domain.CampaignStateActive {
		return "ACTIVE"
	}
	return "PAUSED"
}

// linkedinIDResp covers both creation response styles: a plain id body and
// an entity urn echoed back.
type linkedinIDResp struct {
	ID string `json:"id"`
}

// money renders minor currency units the way the API expects amounts, as a
// decimal string in major units.
func money(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

func (l *LinkedIn) CreateCampaign(ctx context.Context, accountRef string, spec port.CampaignSpec, cred domain.Credential) (string, error) {
	body := map[string]any{
		"account": "urn:li:sponsoredAccount:" + accountRef,
		"name":    spec.Name,
		"status":  linkedinState(spec.InitialState),
	}
	var resp linkedinIDResp
	if err := l.client.postJSON(ctx, "/adCampaignGroups", l.headers(cred), body, &resp); err != nil {
		return "", fmt.Errorf("linkedin: create campaign group: %w", err)
	}
	return resp.ID, nil
}

func (l *LinkedIn) CreateAdGroup(ctx context.Context, accountRef, campaignRemoteID string, spec port.AdGroupSpec, cred domain.Credential) (string, error) {
	budget := map[string]any{"amount": money(spec.BudgetMinor), "currencyCode": "USD"}
	body := map[string]any{
		"account":       "urn:li:sponsoredAccount:" + accountRef,
		"campaignGroup": "urn:li:sponsoredCampaignGroup:" + campaignRemoteID,
		"name":          spec.Name,
		"status":        "PAUSED",
	}
	// Exactly one budget field goes out, selected by the budget type.
	if spec.BudgetType == domain.BudgetLifetime {
		body["totalBudget"] = budget
	} else {
		body["dailyBudget"] = budget
	}
	if spec.BidStrategy != "" {
		body["optimizationTargetType"] = spec.BidStrategy
	}
	if len(spec.Targeting) > 0 {
		body["targetingCriteria"] = spec.Targeting
	}
	if spec.StartAt != nil || spec.EndAt != nil {
		run := map[string]any{}
		if spec.StartAt != nil {
			run["start"] = spec.StartAt.UnixMilli()
		}
		if spec.EndAt != nil {
			run["end"] = spec.EndAt.UnixMilli()
		}
		body["runSchedule"] = run
	}
	var resp linkedinIDResp
	if err := l.client.postJSON(ctx, "/adCampaigns", l.headers(cred), body, &resp); err != nil {
		return "", fmt.Errorf("linkedin: create campaign: %w", err)
	}
	return resp.ID, nil
}

func (l *LinkedIn) CreateCreativeAndAd(ctx context.Context, accountRef, adGroupRemoteID string, spec port.CreativeSpec, cred domain.Credential) (port.CreativeAndAd, error) {
	content := map[string]any{
		"title":          spec.Headline,
		"commentary":     spec.PrimaryText,
		"landingPage":    spec.LinkURL,
		"callToAction":   spec.CallToAction,
		"organicSponsor": "urn:li:organization:" + spec.PageRef,
	}
	if spec.AssetHandle != "" {
		content["media"] = spec.AssetHandle
	}
	body := map[string]any{
		"campaign":       "urn:li:sponsoredCampaign:" + adGroupRemoteID,
		"name":           spec.Name,
		"intendedStatus": "PAUSED",
		"content":        content,
	}
	var resp linkedinIDResp
	if err := l.client.postJSON(ctx, "/creatives", l.headers(cred), body, &resp); err != nil {
		return port.CreativeAndAd{}, fmt.Errorf("linkedin: create creative: %w", err)
	}
	// The creative is the ad on this platform; one id covers both.
	return port.CreativeAndAd{CreativeID: resp.ID, AdID: resp.ID}, nil
}

func (l *LinkedIn) UploadAsset(ctx context.Context, accountRef string, data []byte, filename string, cred domain.Credential) (string, error) {
	fields := map[string]string{
		"owner": "urn:li:sponsoredAccount:" + accountRef,
	}
	var resp struct {
		Value struct {
			Asset string `json:"asset"`
		} `json:"value"`
	}
	if err := l.client.postMultipart(ctx, "/images?action=upload", "file", filename, data, fields, l.headers(cred), &resp); err != nil {
		return "", fmt.Errorf("linkedin: upload image: %w", err)
	}
	if resp.Value.Asset == "" {
		return "", fmt.Errorf("linkedin: upload image: no asset urn in response")
	}
	return resp.Value.Asset, nil
}

func (l *LinkedIn) UpdateCampaignState(ctx context.Context, remoteID string, state domain.CampaignState, cred domain.Credential) error {
	body := map[string]any{
		"patch": map[string]any{
			"$set": map[string]any{"status": linkedinState(state)},
		},
	}
	if err := l.client.postJSON(ctx, "/adCampaignGroups/"+remoteID, l.headers(cred), body, nil); err != nil {
		return fmt.Errorf("linkedin: update campaign group state: %w", err)
	}
	return nil
}

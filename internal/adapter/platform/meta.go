package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// Meta implements port.PlatformAdapter against the Marketing API (Graph
// style: form-encoded requests under an act_<account> prefix, JSON
// responses carrying an "id").
type Meta struct {
	client apiClient
}

// NewMeta returns an adapter rooted at baseURL, e.g.
// https://graph.facebook.com/v19.0.
func NewMeta(baseURL string, timeout time.Duration) *Meta {
	return &Meta{client: newAPIClient(baseURL, timeout)}
}

func metaState(s domain.CampaignState) string {
	if s == domain.CampaignStateActive {
		return "ACTIVE"
	}
	return "PAUSED"
}

type metaIDResp struct {
	ID string `json:"id"`
}

func (m *Meta) CreateCampaign(ctx context.Context, accountRef string, spec port.CampaignSpec, cred domain.Credential) (string, error) {
	categories, err := json.Marshal(spec.SpecialCategories)
	if err != nil {
		return "", err
	}
	form := url.Values{
		"name":                  {spec.Name},
		"objective":             {spec.Objective},
		"special_ad_categories": {string(categories)},
		"status":                {metaState(spec.InitialState)},
		"access_token":          {cred.AccessToken},
	}
	var resp metaIDResp
	if err = m.client.postForm(ctx, "/act_"+accountRef+"/campaigns", form, &resp); err != nil {
		return "", fmt.Errorf("meta: create campaign: %w", err)
	}
	return resp.ID, nil
}

func (m *Meta) CreateAdGroup(ctx context.Context, accountRef, campaignRemoteID string, spec port.AdGroupSpec, cred domain.Credential) (string, error) {
	form := url.Values{
		"name":         {spec.Name},
		"campaign_id":  {campaignRemoteID},
		"bid_strategy": {spec.BidStrategy},
		"status":       {"PAUSED"},
		"access_token": {cred.AccessToken},
	}
	// The API rejects requests carrying both budget fields.
	switch spec.BudgetType {
	case domain.BudgetLifetime:
		form.Set("lifetime_budget", strconv.FormatInt(spec.BudgetMinor, 10))
	default:
		form.Set("daily_budget", strconv.FormatInt(spec.BudgetMinor, 10))
	}
	if len(spec.Targeting) > 0 {
		form.Set("targeting", string(spec.Targeting))
	}
	if spec.StartAt != nil {
		form.Set("start_time", spec.StartAt.UTC().Format(time.RFC3339))
	}
	if spec.EndAt != nil {
		form.Set("end_time", spec.EndAt.UTC().Format(time.RFC3339))
	}
	var resp metaIDResp
	if err := m.client.postForm(ctx, "/act_"+accountRef+"/adsets", form, &resp); err != nil {
		return "", fmt.Errorf("meta: create ad set: %w", err)
	}
	return resp.ID, nil
}

func (m *Meta) CreateCreativeAndAd(ctx context.Context, accountRef, adGroupRemoteID string, spec port.CreativeSpec, cred domain.Credential) (port.CreativeAndAd, error) {
	linkData := map[string]any{
		"link":    spec.LinkURL,
		"message": spec.PrimaryText,
		"name":    spec.Headline,
	}
	if spec.CallToAction != "" {
		linkData["call_to_action"] = map[string]any{"type": spec.CallToAction}
	}
	if spec.AssetHandle != "" {
		linkData["image_hash"] = spec.AssetHandle
	}
	storySpec, err := json.Marshal(map[string]any{
		"page_id":   spec.PageRef,
		"link_data": linkData,
	})
	if err != nil {
		return port.CreativeAndAd{}, err
	}

	var creative metaIDResp
	form := url.Values{
		"name":              {spec.Name},
		"object_story_spec": {string(storySpec)},
		"access_token":      {cred.AccessToken},
	}
	if err = m.client.postForm(ctx, "/act_"+accountRef+"/adcreatives", form, &creative); err != nil {
		return port.CreativeAndAd{}, fmt.Errorf("meta: create creative: %w", err)
	}

	var ad metaIDResp
	form = url.Values{
		"name":         {spec.Name},
		"adset_id":     {adGroupRemoteID},
		"creative":     {fmt.Sprintf(`{"creative_id":%q}`, creative.ID)},
		"status":       {"PAUSED"},
		"access_token": {cred.AccessToken},
	}
	if err = m.client.postForm(ctx, "/act_"+accountRef+"/ads", form, &ad); err != nil {
		return port.CreativeAndAd{}, fmt.Errorf("meta: create ad: %w", err)
	}
	return port.CreativeAndAd{CreativeID: creative.ID, AdID: ad.ID}, nil
}

func (m *Meta) UploadAsset(ctx context.Context, accountRef string, data []byte, filename string, cred domain.Credential) (string, error) {
	var resp struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	fields := map[string]string{"access_token": cred.AccessToken}
	if err := m.client.postMultipart(ctx, "/act_"+accountRef+"/adimages", "filename", filename, data, fields, nil, &resp); err != nil {
		return "", fmt.Errorf("meta: upload image: %w", err)
	}
	for _, img := range resp.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", fmt.Errorf("meta: upload image: no hash in response")
}

func (m *Meta) UpdateCampaignState(ctx context.Context, remoteID string, state domain.CampaignState, cred domain.Credential) error {
	form := url.Values{
		"status":       {metaState(state)},
		"access_token": {cred.AccessToken},
	}
	if err := m.client.postForm(ctx, "/"+remoteID, form, nil); err != nil {
		return fmt.Errorf("meta: update campaign state: %w", err)
	}
	return nil
}

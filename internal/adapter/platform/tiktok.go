package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// TikTok implements port.PlatformAdapter against the Business API (JSON
// bodies with an Access-Token header; responses wrap payloads in
// {code, message, data}).
type TikTok struct {
	client apiClient
}

// NewTikTok returns an adapter rooted at baseURL, e.g.
// https://business-api.tiktok.com/open_api/v1.3.
func NewTikTok(baseURL string, timeout time.Duration) *TikTok {
	return &TikTok{client: newAPIClient(baseURL, timeout)}
}

type tiktokResp struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// post unwraps the envelope; a non-zero code is an error even on HTTP 200.
func (t *TikTok) post(ctx context.Context, path string, body any, cred domain.Credential, data any) error {
	headers := map[string]string{"Access-Token": cred.AccessToken}
	var resp tiktokResp
	if err := t.client.postJSON(ctx, path, headers, body, &resp); err != nil {
		return err
	}
	if resp.Code != 0 {
		return fmt.Errorf("api code %d: %s", resp.Code, resp.Message)
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(resp.Data, data)
}

func tiktokOperationStatus(s domain.CampaignState) string {
	if s == domain.CampaignStateActive {
		return "ENABLE"
	}
	return "DISABLE"
}

func (t *TikTok) CreateCampaign(ctx context.Context, accountRef string, spec port.CampaignSpec, cred domain.Credential) (string, error) {
	body := map[string]any{
		"advertiser_id":      accountRef,
		"campaign_name":      spec.Name,
		"objective_type":     spec.Objective,
		"special_industries": spec.SpecialCategories,
		"operation_status":   tiktokOperationStatus(spec.InitialState),
		"budget_optimize_on": false,
	}
	var data struct {
		CampaignID string `json:"campaign_id"`
	}
	if err := t.post(ctx, "/campaign/create/", body, cred, &data); err != nil {
		return "", fmt.Errorf("tiktok: create campaign: %w", err)
	}
	return data.CampaignID, nil
}

func (t *TikTok) CreateAdGroup(ctx context.Context, accountRef, campaignRemoteID string, spec port.AdGroupSpec, cred domain.Credential) (string, error) {
	budgetMode := "BUDGET_MODE_DAY"
	if spec.BudgetType == domain.BudgetLifetime {
		budgetMode = "BUDGET_MODE_TOTAL"
	}
	body := map[string]any{
		"advertiser_id": accountRef,
		"campaign_id":   campaignRemoteID,
		"adgroup_name":  spec.Name,
		"budget_mode":   budgetMode,
		// The API takes budgets in currency units, not minor units.
		"budget":           float64(spec.BudgetMinor) / 100,
		"bid_type":         spec.BidStrategy,
		"operation_status": "DISABLE",
	}
	if len(spec.Targeting) > 0 {
		var targeting map[string]any
		if err := json.Unmarshal(spec.Targeting, &targeting); err != nil {
			return "", fmt.Errorf("tiktok: targeting payload: %w", err)
		}
		for k, v := range targeting {
			body[k] = v
		}
	}
	if spec.StartAt != nil {
		body["schedule_start_time"] = spec.StartAt.UTC().Format("2006-01-02 15:04:05")
	}
	if spec.EndAt != nil {
		body["schedule_end_time"] = spec.EndAt.UTC().Format("2006-01-02 15:04:05")
	}
	var data struct {
		AdgroupID string `json:"adgroup_id"`
	}
	if err := t.post(ctx, "/adgroup/create/", body, cred, &data); err != nil {
		return "", fmt.Errorf("tiktok: create ad group: %w", err)
	}
	return data.AdgroupID, nil
}

func (t *TikTok) CreateCreativeAndAd(ctx context.Context, accountRef, adGroupRemoteID string, spec port.CreativeSpec, cred domain.Credential) (port.CreativeAndAd, error) {
	creative := map[string]any{
		"ad_name":          spec.Name,
		"ad_text":          spec.PrimaryText,
		"landing_page_url": spec.LinkURL,
		"call_to_action":   spec.CallToAction,
		"identity_id":      spec.PageRef,
		"identity_type":    "CUSTOMIZED_USER",
	}
	if spec.AssetHandle != "" {
		creative["image_ids"] = []string{spec.AssetHandle}
	}
	body := map[string]any{
		"advertiser_id": accountRef,
		"adgroup_id":    adGroupRemoteID,
		"creatives":     []map[string]any{creative},
	}
	var data struct {
		AdIDs       []string `json:"ad_ids"`
		CreativeIDs []string `json:"creative_ids"`
	}
	if err := t.post(ctx, "/ad/create/", body, cred, &data); err != nil {
		return port.CreativeAndAd{}, fmt.Errorf("tiktok: create ad: %w", err)
	}
	if len(data.AdIDs) == 0 {
		return port.CreativeAndAd{}, fmt.Errorf("tiktok: create ad: empty ad_ids in response")
	}
	out := port.CreativeAndAd{AdID: data.AdIDs[0]}
	if len(data.CreativeIDs) > 0 {
		out.CreativeID = data.CreativeIDs[0]
	} else {
		// The API folds the creative into the ad object; the ad id stands
		// in for both.
		out.CreativeID = data.AdIDs[0]
	}
	return out, nil
}

func (t *TikTok) UploadAsset(ctx context.Context, accountRef string, data []byte, filename string, cred domain.Credential) (string, error) {
	fields := map[string]string{
		"advertiser_id": accountRef,
		"file_name":     filename,
		"upload_type":   "UPLOAD_BY_FILE",
	}
	headers := map[string]string{"Access-Token": cred.AccessToken}
	var resp tiktokResp
	if err := t.client.postMultipart(ctx, "/file/image/ad/upload/", "image_file", filename, data, fields, headers, &resp); err != nil {
		return "", fmt.Errorf("tiktok: upload image: %w", err)
	}
	if resp.Code != 0 {
		return "", fmt.Errorf("tiktok: upload image: api code %d: %s", resp.Code, resp.Message)
	}
	var out struct {
		ImageID string `json:"image_id"`
	}
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return "", fmt.Errorf("tiktok: upload image: %w", err)
	}
	return out.ImageID, nil
}

func (t *TikTok) UpdateCampaignState(ctx context.Context, remoteID string, state domain.CampaignState, cred domain.Credential) error {
	body := map[string]any{
		"advertiser_id":    cred.AccountRef,
		"campaign_ids":     []string{remoteID},
		"operation_status": tiktokOperationStatus(state),
	}
	if err := t.post(ctx, "/campaign/status/update/", body, cred, nil); err != nil {
		return fmt.Errorf("tiktok: update campaign state: %w", err)
	}
	return nil
}

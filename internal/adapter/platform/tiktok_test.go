package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

func TestTikTokCreateCampaign(t *testing.T) {
	var gotToken string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("Access-Token")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"code":0,"message":"OK","data":{"campaign_id":"1700001"}}`))
	}))
	defer srv.Close()
	tk := NewTikTok(srv.URL, 5*time.Second)

	id, err := tk.CreateCampaign(context.Background(), "adv-1", port.CampaignSpec{
		Name:         "Launch",
		Objective:    "TRAFFIC",
		InitialState: domain.CampaignStatePaused,
	}, testCred)
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if id != "1700001" {
		t.Fatalf("id = %q", id)
	}
	if gotToken != "tok-secret" {
		t.Fatalf("Access-Token = %q", gotToken)
	}
	if gotBody["operation_status"] != "DISABLE" {
		t.Fatalf("operation_status = %v, want DISABLE for paused", gotBody["operation_status"])
	}
}

// TestTikTokEnvelopeError: a business error arrives as HTTP 200 with a
// non-zero envelope code and must still fail the call.
func TestTikTokEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":40002,"message":"Advertiser not authorized","data":{}}`))
	}))
	defer srv.Close()
	tk := NewTikTok(srv.URL, 5*time.Second)

	_, err := tk.CreateCampaign(context.Background(), "adv-1", port.CampaignSpec{Name: "x"}, testCred)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "40002") || !strings.Contains(err.Error(), "Advertiser not authorized") {
		t.Fatalf("error does not carry api code and message: %v", err)
	}
}

func TestTikTokCreateAdGroupBudget(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"code":0,"message":"OK","data":{"adgroup_id":"ag-5"}}`))
	}))
	defer srv.Close()
	tk := NewTikTok(srv.URL, 5*time.Second)

	id, err := tk.CreateAdGroup(context.Background(), "adv-1", "1700001", port.AdGroupSpec{
		Name:        "set-1",
		BudgetType:  domain.BudgetLifetime,
		BudgetMinor: 250050,
		Targeting:   json.RawMessage(`{"location_ids":["123"]}`),
	}, testCred)
	if err != nil {
		t.Fatalf("CreateAdGroup: %v", err)
	}
	if id != "ag-5" {
		t.Fatalf("id = %q", id)
	}
	if gotBody["budget_mode"] != "BUDGET_MODE_TOTAL" {
		t.Fatalf("budget_mode = %v", gotBody["budget_mode"])
	}
	if gotBody["budget"] != 2500.5 {
		t.Fatalf("budget = %v, want 2500.5 currency units", gotBody["budget"])
	}
	// targeting keys are flattened into the request body
	if _, ok := gotBody["location_ids"]; !ok {
		t.Fatalf("targeting not flattened into body: %v", gotBody)
	}
}

func TestTikTokCreateCreativeAndAd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"message":"OK","data":{"ad_ids":["ad-31"]}}`))
	}))
	defer srv.Close()
	tk := NewTikTok(srv.URL, 5*time.Second)

	ids, err := tk.CreateCreativeAndAd(context.Background(), "adv-1", "ag-5", port.CreativeSpec{
		Name:        "ad-1",
		PrimaryText: "World",
		LinkURL:     "https://example.com",
	}, testCred)
	if err != nil {
		t.Fatalf("CreateCreativeAndAd: %v", err)
	}
	// without explicit creative ids the ad id stands in for the creative
	if ids.AdID != "ad-31" || ids.CreativeID != "ad-31" {
		t.Fatalf("ids = %+v", ids)
	}
}

func TestTikTokUploadAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_type"); got != "UPLOAD_BY_FILE" {
			t.Errorf("upload_type = %q", got)
		}
		w.Write([]byte(`{"code":0,"message":"OK","data":{"image_id":"img-77"}}`))
	}))
	defer srv.Close()
	tk := NewTikTok(srv.URL, 5*time.Second)

	id, err := tk.UploadAsset(context.Background(), "adv-1", []byte{9, 9}, "hero.png", testCred)
	if err != nil {
		t.Fatalf("UploadAsset: %v", err)
	}
	if id != "img-77" {
		t.Fatalf("image id = %q", id)
	}
}

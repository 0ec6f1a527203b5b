package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

var testCred = domain.Credential{AccountRef: "12345", AccessToken: "tok-secret", PageRef: "777"}

func TestMetaCreateCampaign(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.Write([]byte(`{"id":"238001"}`))
	}))
	defer srv.Close()

	m := NewMeta(srv.URL, 5*time.Second)
	id, err := m.CreateCampaign(context.Background(), "12345", port.CampaignSpec{
		Name:              "Launch",
		Objective:         "OUTCOME_TRAFFIC",
		SpecialCategories: []string{"HOUSING"},
		InitialState:      domain.CampaignStatePaused,
	}, testCred)
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if id != "238001" {
		t.Fatalf("id = %q", id)
	}
	if gotPath != "/act_12345/campaigns" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotForm["status"] != "PAUSED" {
		t.Fatalf("status = %q, want PAUSED", gotForm["status"])
	}
	if gotForm["special_ad_categories"] != `["HOUSING"]` {
		t.Fatalf("special_ad_categories = %q", gotForm["special_ad_categories"])
	}
	if gotForm["access_token"] != "tok-secret" {
		t.Fatal("access token not sent")
	}
}

func TestMetaCreateAdGroupBudgetFields(t *testing.T) {
	var gotForm map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		w.Write([]byte(`{"id":"44"}`))
	}))
	defer srv.Close()
	m := NewMeta(srv.URL, 5*time.Second)

	_, err := m.CreateAdGroup(context.Background(), "12345", "238001", port.AdGroupSpec{
		Name:        "set-1",
		BudgetType:  domain.BudgetDaily,
		BudgetMinor: 2000,
	}, testCred)
	if err != nil {
		t.Fatalf("CreateAdGroup: %v", err)
	}
	if got := gotForm["daily_budget"]; len(got) != 1 || got[0] != "2000" {
		t.Fatalf("daily_budget = %v", got)
	}
	if _, ok := gotForm["lifetime_budget"]; ok {
		t.Fatal("daily ad set must not carry lifetime_budget")
	}

	_, err = m.CreateAdGroup(context.Background(), "12345", "238001", port.AdGroupSpec{
		Name:        "set-2",
		BudgetType:  domain.BudgetLifetime,
		BudgetMinor: 90000,
	}, testCred)
	if err != nil {
		t.Fatalf("CreateAdGroup lifetime: %v", err)
	}
	if got := gotForm["lifetime_budget"]; len(got) != 1 || got[0] != "90000" {
		t.Fatalf("lifetime_budget = %v", got)
	}
	if _, ok := gotForm["daily_budget"]; ok {
		t.Fatal("lifetime ad set must not carry daily_budget")
	}
}

func TestMetaCreateCreativeAndAd(t *testing.T) {
	paths := []string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/act_12345/adcreatives":
			w.Write([]byte(`{"id":"cr-9"}`))
		case "/act_12345/ads":
			r.ParseForm()
			if got := r.PostForm.Get("creative"); got != `{"creative_id":"cr-9"}` {
				t.Errorf("creative ref = %q", got)
			}
			w.Write([]byte(`{"id":"ad-9"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()
	m := NewMeta(srv.URL, 5*time.Second)

	ids, err := m.CreateCreativeAndAd(context.Background(), "12345", "44", port.CreativeSpec{
		Name:        "ad-1",
		Headline:    "Hello",
		PrimaryText: "World",
		LinkURL:     "https://example.com",
		PageRef:     "777",
		AssetHandle: "abcdef",
	}, testCred)
	if err != nil {
		t.Fatalf("CreateCreativeAndAd: %v", err)
	}
	if ids.CreativeID != "cr-9" || ids.AdID != "ad-9" {
		t.Fatalf("ids = %+v", ids)
	}
	if len(paths) != 2 || paths[0] != "/act_12345/adcreatives" {
		t.Fatalf("creative must be created before the ad, got %v", paths)
	}
}

func TestMetaUploadAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		w.Write([]byte(`{"images":{"hero.png":{"hash":"img-hash-1"}}}`))
	}))
	defer srv.Close()
	m := NewMeta(srv.URL, 5*time.Second)

	hash, err := m.UploadAsset(context.Background(), "12345", []byte{1, 2, 3}, "hero.png", testCred)
	if err != nil {
		t.Fatalf("UploadAsset: %v", err)
	}
	if hash != "img-hash-1" {
		t.Fatalf("hash = %q", hash)
	}
}

func TestMetaErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid parameter"}}`))
	}))
	defer srv.Close()
	m := NewMeta(srv.URL, 5*time.Second)

	_, err := m.CreateCampaign(context.Background(), "12345", port.CampaignSpec{Name: "x"}, testCred)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.Status)
	}
}

func TestMetaUpdateCampaignState(t *testing.T) {
	var gotPath, gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotStatus = r.PostForm.Get("status")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()
	m := NewMeta(srv.URL, 5*time.Second)

	if err := m.UpdateCampaignState(context.Background(), "238001", domain.CampaignStateActive, testCred); err != nil {
		t.Fatalf("UpdateCampaignState: %v", err)
	}
	if gotPath != "/238001" || gotStatus != "ACTIVE" {
		t.Fatalf("path=%q status=%q", gotPath, gotStatus)
	}
}

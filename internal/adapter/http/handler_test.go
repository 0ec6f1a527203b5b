package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// stubPublisher returns canned values for each operation.
type stubPublisher struct {
	publishResult  *port.PublishResult
	publishErr     error
	validateResult *port.ValidationResult
	validateErr    error
	activateErr    error
	draftDetail    *port.DraftDetail
	draftErr       error

	lastDraftID int64
	lastUserID  int64
}

func (s *stubPublisher) Publish(_ context.Context, draftID, userID int64) (*port.PublishResult, error) {
	s.lastDraftID, s.lastUserID = draftID, userID
	return s.publishResult, s.publishErr
}

func (s *stubPublisher) Validate(_ context.Context, draftID, userID int64) (*port.ValidationResult, error) {
	s.lastDraftID, s.lastUserID = draftID, userID
	return s.validateResult, s.validateErr
}

func (s *stubPublisher) Activate(_ context.Context, draftID, userID int64) error {
	s.lastDraftID, s.lastUserID = draftID, userID
	return s.activateErr
}

func (s *stubPublisher) GetDraft(_ context.Context, draftID, userID int64) (*port.DraftDetail, error) {
	s.lastDraftID, s.lastUserID = draftID, userID
	return s.draftDetail, s.draftErr
}

func newTestHandler(svc port.CampaignPublisher) *Handler {
	return NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doRequest(t *testing.T, h *Handler, method, path, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandlePublishOK(t *testing.T) {
	remote := "cmp-1"
	svc := &stubPublisher{publishResult: &port.PublishResult{
		Success:          true,
		RemoteCampaignID: &remote,
		AdSets:           []port.EntityResult{{LocalID: 101, RemoteID: &remote}},
		Ads:              []port.EntityResult{},
	}}
	h := newTestHandler(svc)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/drafts/5/publish", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.lastDraftID != 5 || svc.lastUserID != 7 {
		t.Fatalf("identity passed = %d/%d", svc.lastDraftID, svc.lastUserID)
	}
	var body port.PublishResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.RemoteCampaignID == nil {
		t.Fatalf("body = %+v", body)
	}
}

// Partial failure is still HTTP 200; the structured result carries the
// entity errors.
func TestHandlePublishPartialFailure(t *testing.T) {
	msg := "one or more ad sets or ads failed to publish"
	svc := &stubPublisher{publishResult: &port.PublishResult{
		Success: false,
		AdSets:  []port.EntityResult{{LocalID: 101, Error: &msg}},
		Ads:     []port.EntityResult{},
		Error:   &msg,
	}}
	rec := doRequest(t, newTestHandler(svc), http.MethodPost, "/api/v1/drafts/5/publish", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandlePublishStatusMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{port.ErrDraftNotFound, http.StatusNotFound},
		{port.ErrAlreadyPublished, http.StatusConflict},
		{port.ErrPublishInProgress, http.StatusConflict},
		{port.ErrInvalidDraftStatus, http.StatusConflict},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		svc := &stubPublisher{publishErr: tt.err}
		rec := doRequest(t, newTestHandler(svc), http.MethodPost, "/api/v1/drafts/5/publish", "7")
		if rec.Code != tt.wantCode {
			t.Fatalf("%v: status = %d, want %d", tt.err, rec.Code, tt.wantCode)
		}
	}
}

func TestHandlePublishIdentityErrors(t *testing.T) {
	h := newTestHandler(&stubPublisher{})

	rec := doRequest(t, h, http.MethodPost, "/api/v1/drafts/abc/publish", "7")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad draft id: status = %d", rec.Code)
	}
	rec = doRequest(t, h, http.MethodPost, "/api/v1/drafts/5/publish", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing user header: status = %d", rec.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	svc := &stubPublisher{validateResult: &port.ValidationResult{
		Valid:  false,
		Errors: []string{"draft has no ad sets"},
	}}
	rec := doRequest(t, newTestHandler(svc), http.MethodGet, "/api/v1/drafts/5/validate", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body port.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Valid || len(body.Errors) != 1 {
		t.Fatalf("body = %+v", body)
	}
}

func TestHandleActivate(t *testing.T) {
	rec := doRequest(t, newTestHandler(&stubPublisher{}), http.MethodPost, "/api/v1/drafts/5/activate", "7")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}

	svc := &stubPublisher{activateErr: port.ErrNotPublished}
	rec = doRequest(t, newTestHandler(svc), http.MethodPost, "/api/v1/drafts/5/activate", "7")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleGetDraft(t *testing.T) {
	svc := &stubPublisher{draftDetail: &port.DraftDetail{
		Draft: domain.CampaignDraft{
			ID:       5,
			UserID:   7,
			Name:     "Launch",
			Platform: domain.PlatformMeta,
			Status:   domain.StatusDraft,
		},
		AdSets: []port.AdSetDetail{
			{
				AdSet: domain.AdSet{ID: 101, Name: "set-1", Status: domain.EntityDraft},
				Ads:   []domain.Ad{{ID: 1011, Name: "ad-1", Status: domain.EntityDraft}},
			},
		},
	}}
	rec := doRequest(t, newTestHandler(svc), http.MethodGet, "/api/v1/drafts/5", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		AdSets []struct {
			ID  int64 `json:"id"`
			Ads []struct {
				ID int64 `json:"id"`
			} `json:"ads"`
		} `json:"ad_sets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != 5 || len(body.AdSets) != 1 || len(body.AdSets[0].Ads) != 1 {
		t.Fatalf("body = %+v", body)
	}

	svc = &stubPublisher{draftErr: port.ErrDraftNotFound}
	rec = doRequest(t, newTestHandler(svc), http.MethodGet, "/api/v1/drafts/5", "7")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

package httpadapter

import (
	"net/http"
	"time"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// Wire representations for draft read-back. Kept separate from the domain
// structs so the JSON surface can stay stable.
type adResp struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Headline         string  `json:"headline,omitempty"`
	PrimaryText      string  `json:"primary_text,omitempty"`
	LinkURL          string  `json:"link_url,omitempty"`
	CallToAction     string  `json:"call_to_action,omitempty"`
	MediaUploadID    *int64  `json:"media_upload_id,omitempty"`
	Status           string  `json:"status"`
	RemoteID         *string `json:"remote_id,omitempty"`
	RemoteCreativeID *string `json:"remote_creative_id,omitempty"`
	LastError        *string `json:"last_error,omitempty"`
}

type adSetResp struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	BudgetType  string     `json:"budget_type"`
	BudgetMinor int64      `json:"budget_minor"`
	BidStrategy string     `json:"bid_strategy,omitempty"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Status      string     `json:"status"`
	RemoteID    *string    `json:"remote_id,omitempty"`
	LastError   *string    `json:"last_error,omitempty"`
	Ads         []adResp   `json:"ads"`
}

type draftResp struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Objective         string      `json:"objective"`
	Platform          string      `json:"platform"`
	AccountRef        string      `json:"account_ref,omitempty"`
	SpecialCategories []string    `json:"special_categories,omitempty"`
	Status            string      `json:"status"`
	RemoteCampaignID  *string     `json:"remote_campaign_id,omitempty"`
	LastError         *string     `json:"last_error,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	AdSets            []adSetResp `json:"ad_sets"`
}

func toDraftResp(d *port.DraftDetail) draftResp {
	resp := draftResp{
		ID:                d.Draft.ID,
		Name:              d.Draft.Name,
		Objective:         d.Draft.Objective,
		Platform:          string(d.Draft.Platform),
		AccountRef:        d.Draft.AccountRef,
		SpecialCategories: d.Draft.SpecialCategories,
		Status:            string(d.Draft.Status),
		RemoteCampaignID:  d.Draft.RemoteCampaignID,
		LastError:         d.Draft.LastError,
		CreatedAt:         d.Draft.CreatedAt,
		UpdatedAt:         d.Draft.UpdatedAt,
		AdSets:            make([]adSetResp, 0, len(d.AdSets)),
	}
	for _, s := range d.AdSets {
		set := adSetResp{
			ID:          s.AdSet.ID,
			Name:        s.AdSet.Name,
			BudgetType:  string(s.AdSet.BudgetType),
			BudgetMinor: s.AdSet.BudgetMinor,
			BidStrategy: s.AdSet.BidStrategy,
			StartAt:     s.AdSet.StartAt,
			EndAt:       s.AdSet.EndAt,
			Status:      string(s.AdSet.Status),
			RemoteID:    s.AdSet.RemoteID,
			LastError:   s.AdSet.LastError,
			Ads:         make([]adResp, 0, len(s.Ads)),
		}
		for _, a := range s.Ads {
			set.Ads = append(set.Ads, toAdResp(a))
		}
		resp.AdSets = append(resp.AdSets, set)
	}
	return resp
}

func toAdResp(a domain.Ad) adResp {
	return adResp{
		ID:               a.ID,
		Name:             a.Name,
		Headline:         a.Creative.Headline,
		PrimaryText:      a.Creative.PrimaryText,
		LinkURL:          a.Creative.LinkURL,
		CallToAction:     a.Creative.CallToAction,
		MediaUploadID:    a.Creative.MediaUploadID,
		Status:           string(a.Status),
		RemoteID:         a.RemoteID,
		RemoteCreativeID: a.RemoteCreativeID,
		LastError:        a.LastError,
	}
}

// handleGetDraft returns the draft with its full child hierarchy.
func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, userID, ok := requestIdentity(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetDraft(r.Context(), draftID, userID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, toDraftResp(detail))
}

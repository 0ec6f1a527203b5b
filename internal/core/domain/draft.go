package domain

import "time"

// DraftStatus is the lifecycle state of a campaign draft. The transition
// into StatusPublishing is only valid from StatusDraft or StatusFailed and
// is performed atomically by the repository so that concurrent publish
// attempts cannot both proceed.
type DraftStatus string

const (
	StatusDraft      DraftStatus = "draft"
	StatusPublishing DraftStatus = "publishing"
	StatusPublished  DraftStatus = "published"
	StatusFailed     DraftStatus = "failed"
)

// CampaignDraft is an editable, not-yet-published campaign. RemoteCampaignID
// stays nil until the remote platform has created the campaign; LastError
// holds the most recent terminal or aggregate publish error.
type CampaignDraft struct {
	ID                int64
	UserID            int64
	AccountRef        string // platform account the campaign is created under
	Name              string
	Objective         string
	SpecialCategories []string
	Platform          Platform
	Status            DraftStatus
	RemoteCampaignID  *string
	LastError         *string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

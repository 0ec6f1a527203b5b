package port

import (
	"context"

	"adforge/internal/core/domain"
)

// CampaignPublisher defines the business operations around taking a draft
// live. This interface is the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type CampaignPublisher interface {
	// Publish drives creation of the draft's hierarchy on the remote
	// platform. Exactly one concurrent call per draft proceeds; the others
	// receive a state-conflict error. Entity-level failures are recorded in
	// the result and never abort sibling entities.
	Publish(ctx context.Context, draftID, userID int64) (*PublishResult, error)

	// Validate collects every blocking issue on the draft without mutating
	// state. Valid is true iff Errors is empty.
	Validate(ctx context.Context, draftID, userID int64) (*ValidationResult, error)

	// Activate flips a published campaign from paused to active on the
	// remote platform. The draft must already be published.
	Activate(ctx context.Context, draftID, userID int64) error

	// GetDraft returns the draft with its full child hierarchy for
	// read-back by the HTTP layer.
	GetDraft(ctx context.Context, draftID, userID int64) (*DraftDetail, error)
}

// EntityResult reports the outcome for one ad set or ad within a publish
// run. Exactly one of RemoteID and Error is set for attempted entities;
// both stay nil for children that were never attempted.
type EntityResult struct {
	LocalID  int64   `json:"local_id"`
	RemoteID *string `json:"remote_id,omitempty"`
	Error    *string `json:"error,omitempty"`
}

// PublishResult is the aggregate outcome of one publish run. Success is
// true iff the remote campaign was created and no entity-level error
// occurred.
type PublishResult struct {
	Success          bool           `json:"success"`
	RemoteCampaignID *string        `json:"remote_campaign_id,omitempty"`
	AdSets           []EntityResult `json:"ad_sets"`
	Ads              []EntityResult `json:"ads"`
	Error            *string        `json:"error,omitempty"`
}

// ValidationResult lists every blocking issue found on a draft.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// AdSetDetail is an ad set with its ads, used for draft read-back.
type AdSetDetail struct {
	AdSet domain.AdSet
	Ads   []domain.Ad
}

// DraftDetail is a draft with its full child hierarchy.
type DraftDetail struct {
	Draft  domain.CampaignDraft
	AdSets []AdSetDetail
}

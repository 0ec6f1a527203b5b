package port

import (
	"context"

	"adforge/internal/core/domain"
)

// DraftRepository defines the persistence layer for drafts and their
// children. It is an outbound port in hexagonal architecture.
// Implementations must make ClaimForPublish atomic: for any draft in a
// publishable status, exactly one concurrent caller may observe a non-nil
// return.
type DraftRepository interface {
	// ClaimForPublish conditionally moves the draft into the publishing
	// status. The update only matches when the draft exists, belongs to
	// userID and its status is draft or failed; the row version is bumped
	// as part of the same statement. It returns the updated draft, or
	// (nil, nil) when no row matched.
	ClaimForPublish(ctx context.Context, draftID, userID int64) (*domain.CampaignDraft, error)

	// GetDraft returns the draft owned by userID, or (nil, nil) when absent.
	GetDraft(ctx context.Context, draftID, userID int64) (*domain.CampaignDraft, error)

	// ListAdSets returns the draft's ad sets in creation order.
	ListAdSets(ctx context.Context, draftID int64) ([]domain.AdSet, error)
	// ListAds returns the ad set's ads in creation order.
	ListAds(ctx context.Context, adSetID int64) ([]domain.Ad, error)

	// SetRemoteCampaignID persists the remote campaign id on the draft. The
	// publisher calls this before any child creation starts.
	SetRemoteCampaignID(ctx context.Context, draftID int64, remoteID string) error

	// FinishPublish records the terminal status of a publish run. A nil
	// lastError clears any previous error on the draft.
	FinishPublish(ctx context.Context, draftID int64, status domain.DraftStatus, lastError *string) error

	MarkAdSetPublished(ctx context.Context, adSetID int64, remoteID string) error
	MarkAdSetFailed(ctx context.Context, adSetID int64, message string) error
	MarkAdPublished(ctx context.Context, adID int64, remoteCreativeID, remoteAdID string) error
	MarkAdFailed(ctx context.Context, adID int64, message string) error

	// GetMediaUpload returns an uploaded asset with its raw bytes, or
	// (nil, nil) when absent.
	GetMediaUpload(ctx context.Context, id int64) (*domain.MediaUpload, error)
}

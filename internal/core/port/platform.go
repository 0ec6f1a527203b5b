package port

import (
	"context"
	"encoding/json"
	"time"

	"adforge/internal/core/domain"
)

// CampaignSpec is the payload for remote campaign creation. InitialState is
// always paused during publishing; activation is a separate step.
type CampaignSpec struct {
	Name              string
	Objective         string
	SpecialCategories []string
	InitialState      domain.CampaignState
}

// AdGroupSpec is the payload for remote ad group creation. Exactly one of
// the two budget interpretations applies according to BudgetType; adapters
// must never send both budget fields.
type AdGroupSpec struct {
	Name        string
	Targeting   json.RawMessage
	BudgetType  domain.BudgetType
	BudgetMinor int64
	BidStrategy string
	StartAt     *time.Time
	EndAt       *time.Time
}

// CreativeSpec is the payload for remote creative plus ad creation. It
// merges ad-level fields with contextual defaults: PageRef is the resolved
// publishing page identity and AssetHandle the platform handle of any
// referenced media, empty when the ad has none.
type CreativeSpec struct {
	Name         string
	Headline     string
	PrimaryText  string
	LinkURL      string
	CallToAction string
	PageRef      string
	AssetHandle  string
}

// CreativeAndAd carries the two remote ids produced by creative+ad creation.
type CreativeAndAd struct {
	CreativeID string
	AdID       string
}

// PlatformAdapter is the capability contract every ad platform integration
// must implement. Calls are not idempotent on the remote side; the
// publisher is responsible for invoking each at most once per logical
// entity within a run. Implementations must bound each call with a timeout
// and treat the passed context as the upper cancellation scope.
type PlatformAdapter interface {
	CreateCampaign(ctx context.Context, accountRef string, spec CampaignSpec, cred domain.Credential) (string, error)
	CreateAdGroup(ctx context.Context, accountRef, campaignRemoteID string, spec AdGroupSpec, cred domain.Credential) (string, error)
	CreateCreativeAndAd(ctx context.Context, accountRef, adGroupRemoteID string, spec CreativeSpec, cred domain.Credential) (CreativeAndAd, error)
	UploadAsset(ctx context.Context, accountRef string, data []byte, filename string, cred domain.Credential) (string, error)
	UpdateCampaignState(ctx context.Context, remoteID string, state domain.CampaignState, cred domain.Credential) error
}

// AdapterRegistry resolves the adapter for a platform. The publisher looks
// the adapter up once per run, keyed by the draft's platform field.
type AdapterRegistry interface {
	Adapter(p domain.Platform) (PlatformAdapter, error)
}

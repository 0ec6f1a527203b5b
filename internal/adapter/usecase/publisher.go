package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// CampaignPublisher drives draft publication onto remote ad platforms. It
// owns the draft state machine and the hierarchical creation algorithm and
// implements the port.CampaignPublisher interface.
//
// Failure semantics: failures before any child creation (credential
// resolution, remote campaign creation) terminate the run and are reported
// as the result's top-level error. Failures scoped to one ad set or ad are
// recorded on that entity and never stop siblings; the draft ends failed
// iff any entity-level error occurred.
type CampaignPublisher struct {
	repo     port.DraftRepository
	creds    port.CredentialResolver
	adapters port.AdapterRegistry
	media    port.MediaHandleCache
	logger   *slog.Logger

	// concurrency bounds how many sibling ad sets are published in
	// parallel; 1 keeps the run sequential. Ads within an ad set are
	// always sequential.
	concurrency int
}

// NewCampaignPublisher creates the publish use case. A concurrency below 1
// is treated as 1.
func NewCampaignPublisher(
	repo port.DraftRepository,
	creds port.CredentialResolver,
	adapters port.AdapterRegistry,
	media port.MediaHandleCache,
	logger *slog.Logger,
	concurrency int,
) *CampaignPublisher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &CampaignPublisher{
		repo:        repo,
		creds:       creds,
		adapters:    adapters,
		media:       media,
		logger:      logger,
		concurrency: concurrency,
	}
}

// adSetOutcome collects what one ad set branch produced. Ads that were
// never attempted (because their ad set failed) do not appear in Ads.
type adSetOutcome struct {
	AdSet port.EntityResult
	Ads   []port.EntityResult
}

// Publish implements the publish operation. Exactly one concurrent call per
// draft proceeds past the claim; the others receive a state-conflict error
// without side effects.
//
// Retrying a failed draft re-creates the remote campaign and re-attempts
// every ad set and ad, including ones that succeeded in a prior partial
// run. Prior remote ids belong to the previous remote campaign, so skipping
// them would stitch children onto a stale parent; the cost is possible
// duplicate remote entities, which is accepted.
func (p *CampaignPublisher) Publish(ctx context.Context, draftID, userID int64) (*port.PublishResult, error) {
	draft, err := p.repo.ClaimForPublish(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, p.classifyClaimFailure(ctx, draftID, userID)
	}

	p.logger.Info("publish started",
		slog.Int64("draft_id", draft.ID),
		slog.String("platform", string(draft.Platform)))

	adapter, err := p.adapters.Adapter(draft.Platform)
	if err != nil {
		return p.failRun(ctx, draft.ID, err)
	}

	cred, err := p.creds.Resolve(ctx, userID, draft.Platform)
	if err != nil {
		return p.failRun(ctx, draft.ID, err)
	}

	remoteCampaignID, err := adapter.CreateCampaign(ctx, cred.AccountRef, port.CampaignSpec{
		Name:              draft.Name,
		Objective:         draft.Objective,
		SpecialCategories: draft.SpecialCategories,
		InitialState:      domain.CampaignStatePaused,
	}, cred)
	if err != nil {
		return p.failRun(ctx, draft.ID, err)
	}

	// The remote id must be durable before any child creation: every
	// subsequent call needs it, and losing it would orphan the remote
	// campaign.
	if err = p.repo.SetRemoteCampaignID(ctx, draft.ID, remoteCampaignID); err != nil {
		return nil, err
	}

	adSets, err := p.repo.ListAdSets(ctx, draft.ID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]adSetOutcome, len(adSets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, adSet := range adSets {
		i, adSet := i, adSet
		g.Go(func() error {
			outcomes[i] = p.publishAdSet(gctx, adapter, cred, remoteCampaignID, draft.Platform, adSet)
			return nil
		})
	}
	// Workers never return errors; entity failures live in their slots.
	_ = g.Wait()

	result := &port.PublishResult{
		RemoteCampaignID: &remoteCampaignID,
		AdSets:           make([]port.EntityResult, 0, len(adSets)),
		Ads:              []port.EntityResult{},
	}
	hasFailures := false
	for _, o := range outcomes {
		result.AdSets = append(result.AdSets, o.AdSet)
		result.Ads = append(result.Ads, o.Ads...)
		if o.AdSet.Error != nil {
			hasFailures = true
		}
		for _, ad := range o.Ads {
			if ad.Error != nil {
				hasFailures = true
			}
		}
	}

	if hasFailures {
		msg := "one or more ad sets or ads failed to publish"
		result.Error = &msg
		if err = p.repo.FinishPublish(ctx, draft.ID, domain.StatusFailed, &msg); err != nil {
			return nil, err
		}
		p.logger.Warn("publish finished with entity failures", slog.Int64("draft_id", draft.ID))
		return result, nil
	}

	if err = p.repo.FinishPublish(ctx, draft.ID, domain.StatusPublished, nil); err != nil {
		return nil, err
	}
	result.Success = true
	p.logger.Info("publish finished", slog.Int64("draft_id", draft.ID),
		slog.String("remote_campaign_id", remoteCampaignID))
	return result, nil
}

// classifyClaimFailure reads the draft to turn a missed claim into the
// right terminal error.
func (p *CampaignPublisher) classifyClaimFailure(ctx context.Context, draftID, userID int64) error {
	draft, err := p.repo.GetDraft(ctx, draftID, userID)
	if err != nil {
		return err
	}
	if draft == nil {
		return port.ErrDraftNotFound
	}
	switch draft.Status {
	case domain.StatusPublished:
		return port.ErrAlreadyPublished
	case domain.StatusPublishing:
		return port.ErrPublishInProgress
	default:
		return port.ErrInvalidDraftStatus
	}
}

// failRun records a terminal pre-child failure on the draft and reports it
// as the result's top-level error.
func (p *CampaignPublisher) failRun(ctx context.Context, draftID int64, cause error) (*port.PublishResult, error) {
	msg := cause.Error()
	p.logger.Warn("publish aborted", slog.Int64("draft_id", draftID), slog.String("error", msg))
	if err := p.repo.FinishPublish(ctx, draftID, domain.StatusFailed, &msg); err != nil {
		return nil, err
	}
	return &port.PublishResult{
		AdSets: []port.EntityResult{},
		Ads:    []port.EntityResult{},
		Error:  &msg,
	}, nil
}

// publishAdSet creates one ad set remotely and, on success, its ads in
// stored order. An ad set creation failure means its ads are never
// attempted and keep their prior state.
func (p *CampaignPublisher) publishAdSet(
	ctx context.Context,
	adapter port.PlatformAdapter,
	cred domain.Credential,
	campaignRemoteID string,
	platform domain.Platform,
	adSet domain.AdSet,
) adSetOutcome {
	out := adSetOutcome{AdSet: port.EntityResult{LocalID: adSet.ID}}

	remoteID, err := adapter.CreateAdGroup(ctx, cred.AccountRef, campaignRemoteID, port.AdGroupSpec{
		Name:        adSet.Name,
		Targeting:   adSet.Targeting,
		BudgetType:  adSet.BudgetType,
		BudgetMinor: adSet.BudgetMinor,
		BidStrategy: adSet.BidStrategy,
		StartAt:     adSet.StartAt,
		EndAt:       adSet.EndAt,
	}, cred)
	if err != nil {
		out.AdSet.Error = p.markAdSetFailed(ctx, adSet.ID, err)
		return out
	}
	if err = p.repo.MarkAdSetPublished(ctx, adSet.ID, remoteID); err != nil {
		out.AdSet.Error = p.markAdSetFailed(ctx, adSet.ID, err)
		return out
	}
	out.AdSet.RemoteID = &remoteID

	ads, err := p.repo.ListAds(ctx, adSet.ID)
	if err != nil {
		msg := fmt.Sprintf("list ads: %v", err)
		out.AdSet.Error = &msg
		return out
	}
	for _, ad := range ads {
		out.Ads = append(out.Ads, p.publishAd(ctx, adapter, cred, remoteID, platform, ad))
	}
	return out
}

// publishAd resolves any referenced media, then creates the remote creative
// and ad. Each failure is scoped to this ad only.
func (p *CampaignPublisher) publishAd(
	ctx context.Context,
	adapter port.PlatformAdapter,
	cred domain.Credential,
	adGroupRemoteID string,
	platform domain.Platform,
	ad domain.Ad,
) port.EntityResult {
	res := port.EntityResult{LocalID: ad.ID}

	assetHandle, err := p.resolveAsset(ctx, adapter, cred, platform, ad)
	if err != nil {
		res.Error = p.markAdFailed(ctx, ad.ID, err)
		return res
	}

	ids, err := adapter.CreateCreativeAndAd(ctx, cred.AccountRef, adGroupRemoteID, port.CreativeSpec{
		Name:         ad.Name,
		Headline:     ad.Creative.Headline,
		PrimaryText:  ad.Creative.PrimaryText,
		LinkURL:      ad.Creative.LinkURL,
		CallToAction: ad.Creative.CallToAction,
		PageRef:      cred.PageRef,
		AssetHandle:  assetHandle,
	}, cred)
	if err != nil {
		res.Error = p.markAdFailed(ctx, ad.ID, err)
		return res
	}
	if err = p.repo.MarkAdPublished(ctx, ad.ID, ids.CreativeID, ids.AdID); err != nil {
		res.Error = p.markAdFailed(ctx, ad.ID, err)
		return res
	}
	res.RemoteID = &ids.AdID
	return res
}

// resolveAsset returns the platform handle for the ad's media, or "" when
// the ad has none. A cached handle is reused; otherwise the binary is
// uploaded and the returned handle cached for future runs. Cache errors are
// logged and treated as misses.
func (p *CampaignPublisher) resolveAsset(
	ctx context.Context,
	adapter port.PlatformAdapter,
	cred domain.Credential,
	platform domain.Platform,
	ad domain.Ad,
) (string, error) {
	if ad.Creative.MediaUploadID == nil {
		return "", nil
	}
	uploadID := *ad.Creative.MediaUploadID

	handle, err := p.media.GetHandle(ctx, uploadID, platform)
	if err != nil {
		p.logger.Warn("media handle cache read failed",
			slog.Int64("upload_id", uploadID), slog.String("error", err.Error()))
	}
	if handle != "" {
		return handle, nil
	}

	upload, err := p.repo.GetMediaUpload(ctx, uploadID)
	if err != nil {
		return "", err
	}
	if upload == nil {
		return "", fmt.Errorf("%w: id %d", port.ErrMediaNotFound, uploadID)
	}

	handle, err = adapter.UploadAsset(ctx, cred.AccountRef, upload.Data, upload.Filename, cred)
	if err != nil {
		return "", err
	}
	if err = p.media.PutHandle(ctx, uploadID, platform, handle); err != nil {
		p.logger.Warn("media handle cache write failed",
			slog.Int64("upload_id", uploadID), slog.String("error", err.Error()))
	}
	return handle, nil
}

func (p *CampaignPublisher) markAdSetFailed(ctx context.Context, adSetID int64, cause error) *string {
	msg := cause.Error()
	if err := p.repo.MarkAdSetFailed(ctx, adSetID, msg); err != nil {
		p.logger.Error("record ad set failure", slog.Int64("ad_set_id", adSetID),
			slog.String("error", err.Error()))
	}
	return &msg
}

func (p *CampaignPublisher) markAdFailed(ctx context.Context, adID int64, cause error) *string {
	msg := cause.Error()
	if err := p.repo.MarkAdFailed(ctx, adID, msg); err != nil {
		p.logger.Error("record ad failure", slog.Int64("ad_id", adID),
			slog.String("error", err.Error()))
	}
	return &msg
}

// GetDraft returns the draft with its full child hierarchy.
func (p *CampaignPublisher) GetDraft(ctx context.Context, draftID, userID int64) (*port.DraftDetail, error) {
	draft, err := p.repo.GetDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, port.ErrDraftNotFound
	}
	adSets, err := p.repo.ListAdSets(ctx, draftID)
	if err != nil {
		return nil, err
	}
	detail := &port.DraftDetail{Draft: *draft, AdSets: make([]port.AdSetDetail, 0, len(adSets))}
	for _, s := range adSets {
		ads, err := p.repo.ListAds(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		detail.AdSets = append(detail.AdSets, port.AdSetDetail{AdSet: s, Ads: ads})
	}
	return detail, nil
}

package usecase

import (
	"context"
	"log/slog"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// Activate flips a published campaign from paused to active on the remote
// platform. It requires a draft that finished publishing successfully and
// never re-enters the publishing state machine.
func (p *CampaignPublisher) Activate(ctx context.Context, draftID, userID int64) error {
	draft, err := p.repo.GetDraft(ctx, draftID, userID)
	if err != nil {
		return err
	}
	if draft == nil {
		return port.ErrDraftNotFound
	}
	if draft.Status != domain.StatusPublished || draft.RemoteCampaignID == nil {
		return port.ErrNotPublished
	}

	adapter, err := p.adapters.Adapter(draft.Platform)
	if err != nil {
		return err
	}
	cred, err := p.creds.Resolve(ctx, userID, draft.Platform)
	if err != nil {
		return err
	}

	if err = adapter.UpdateCampaignState(ctx, *draft.RemoteCampaignID, domain.CampaignStateActive, cred); err != nil {
		return err
	}
	p.logger.Info("campaign activated", slog.Int64("draft_id", draft.ID),
		slog.String("remote_campaign_id", *draft.RemoteCampaignID))
	return nil
}

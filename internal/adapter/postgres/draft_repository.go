package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adforge/internal/core/domain"
)

// DraftRepository implements port.DraftRepository using pgxpool for
// PostgreSQL. The publish claim is a single conditional UPDATE with a
// version bump, so exactly one concurrent caller can win it.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository returns a new repository instance.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

const draftColumns = `id, user_id, account_ref, name, objective, special_categories,
    platform, status, remote_campaign_id, last_error, version, created_at, updated_at`

func scanDraft(row pgx.Row) (*domain.CampaignDraft, error) {
	var d domain.CampaignDraft
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.AccountRef,
		&d.Name,
		&d.Objective,
		&d.SpecialCategories,
		&d.Platform,
		&d.Status,
		&d.RemoteCampaignID,
		&d.LastError,
		&d.Version,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ClaimForPublish atomically transitions the draft into publishing. The
// status predicate makes this a compare-and-swap: only a draft currently in
// 'draft' or 'failed' owned by userID matches, and the version bump happens
// in the same statement. Returns (nil, nil) when no row matched.
func (r *DraftRepository) ClaimForPublish(ctx context.Context, draftID, userID int64) (*domain.CampaignDraft, error) {
	return scanDraft(r.pool.QueryRow(ctx, `
        UPDATE campaign_drafts
        SET status = 'publishing', version = version + 1, updated_at = now()
        WHERE id = $1 AND user_id = $2 AND status IN ('draft', 'failed')
        RETURNING `+draftColumns,
		draftID, userID))
}

// GetDraft returns the draft owned by userID, or (nil, nil) when absent.
func (r *DraftRepository) GetDraft(ctx context.Context, draftID, userID int64) (*domain.CampaignDraft, error) {
	return scanDraft(r.pool.QueryRow(ctx, `
        SELECT `+draftColumns+`
        FROM campaign_drafts
        WHERE id = $1 AND user_id = $2`,
		draftID, userID))
}

// ListAdSets returns the draft's ad sets ordered by creation sequence.
func (r *DraftRepository) ListAdSets(ctx context.Context, draftID int64) ([]domain.AdSet, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, draft_id, name, targeting, budget_type, budget_minor, bid_strategy,
               start_at, end_at, status, remote_id, last_error, created_at, updated_at
        FROM ad_sets
        WHERE draft_id = $1
        ORDER BY id`,
		draftID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSet, error) {
		var s domain.AdSet
		err := row.Scan(
			&s.ID,
			&s.DraftID,
			&s.Name,
			&s.Targeting,
			&s.BudgetType,
			&s.BudgetMinor,
			&s.BidStrategy,
			&s.StartAt,
			&s.EndAt,
			&s.Status,
			&s.RemoteID,
			&s.LastError,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		return s, err
	})
}

// ListAds returns the ad set's ads ordered by creation sequence.
func (r *DraftRepository) ListAds(ctx context.Context, adSetID int64) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, ad_set_id, name, headline, primary_text, link_url, call_to_action,
               media_upload_id, status, remote_id, remote_creative_id, last_error,
               created_at, updated_at
        FROM ads
        WHERE ad_set_id = $1
        ORDER BY id`,
		adSetID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var a domain.Ad
		err := row.Scan(
			&a.ID,
			&a.AdSetID,
			&a.Name,
			&a.Creative.Headline,
			&a.Creative.PrimaryText,
			&a.Creative.LinkURL,
			&a.Creative.CallToAction,
			&a.Creative.MediaUploadID,
			&a.Status,
			&a.RemoteID,
			&a.RemoteCreativeID,
			&a.LastError,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		return a, err
	})
}

// SetRemoteCampaignID persists the remote campaign id on the draft. It is
// written before any child creation begins, since every subsequent call
// needs it.
func (r *DraftRepository) SetRemoteCampaignID(ctx context.Context, draftID int64, remoteID string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE campaign_drafts SET remote_campaign_id = $1, updated_at = now()
        WHERE id = $2`,
		remoteID, draftID)
	return err
}

// FinishPublish records the terminal status of a publish run on the draft.
func (r *DraftRepository) FinishPublish(ctx context.Context, draftID int64, status domain.DraftStatus, lastError *string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE campaign_drafts SET status = $1, last_error = $2, updated_at = now()
        WHERE id = $3`,
		status, lastError, draftID)
	return err
}

func (r *DraftRepository) MarkAdSetPublished(ctx context.Context, adSetID int64, remoteID string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE ad_sets SET status = 'published', remote_id = $1, last_error = NULL, updated_at = now()
        WHERE id = $2`,
		remoteID, adSetID)
	return err
}

func (r *DraftRepository) MarkAdSetFailed(ctx context.Context, adSetID int64, message string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE ad_sets SET status = 'failed', last_error = $1, updated_at = now()
        WHERE id = $2`,
		message, adSetID)
	return err
}

func (r *DraftRepository) MarkAdPublished(ctx context.Context, adID int64, remoteCreativeID, remoteAdID string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE ads SET status = 'published', remote_creative_id = $1, remote_id = $2,
                       last_error = NULL, updated_at = now()
        WHERE id = $3`,
		remoteCreativeID, remoteAdID, adID)
	return err
}

func (r *DraftRepository) MarkAdFailed(ctx context.Context, adID int64, message string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE ads SET status = 'failed', last_error = $1, updated_at = now()
        WHERE id = $2`,
		message, adID)
	return err
}

// GetMediaUpload returns an uploaded asset with its raw bytes, or (nil, nil)
// when absent.
func (r *DraftRepository) GetMediaUpload(ctx context.Context, id int64) (*domain.MediaUpload, error) {
	var m domain.MediaUpload
	err := r.pool.QueryRow(ctx, `
        SELECT id, user_id, filename, mime_type, data, created_at
        FROM media_uploads
        WHERE id = $1`,
		id).Scan(&m.ID, &m.UserID, &m.Filename, &m.MimeType, &m.Data, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

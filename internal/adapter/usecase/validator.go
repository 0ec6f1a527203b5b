package usecase

import (
	"context"
	"fmt"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// minBudgetMinor is the per-platform minimum budget in minor currency
// units. Values below it are rejected by validation, not by the publisher.
var minBudgetMinor = map[domain.Platform]int64{
	domain.PlatformMeta:     100,
	domain.PlatformTikTok:   2000,
	domain.PlatformLinkedIn: 1000,
}

// Validate collects every blocking issue on the draft without mutating any
// state. It never short-circuits: a draft missing both its account and all
// ad sets reports both problems in one call.
func (p *CampaignPublisher) Validate(ctx context.Context, draftID, userID int64) (*port.ValidationResult, error) {
	draft, err := p.repo.GetDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, port.ErrDraftNotFound
	}

	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if draft.AccountRef == "" {
		add("no ad account is set on the draft")
	}
	if draft.Name == "" {
		add("campaign name is empty")
	}
	if draft.Objective == "" {
		add("campaign objective is not set")
	}
	if !draft.Platform.Valid() {
		add("unknown platform %q", draft.Platform)
	}

	adSets, err := p.repo.ListAdSets(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if len(adSets) == 0 {
		add("draft has no ad sets")
	}

	minBudget := minBudgetMinor[draft.Platform]
	for _, s := range adSets {
		if s.Name == "" {
			add("ad set %d has no name", s.ID)
		}
		if minBudget > 0 && s.BudgetMinor < minBudget {
			add("ad set %q budget %d is below the platform minimum of %d", s.Name, s.BudgetMinor, minBudget)
		}

		ads, err := p.repo.ListAds(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if len(ads) == 0 {
			add("ad set %q has no ads", s.Name)
		}
		for _, ad := range ads {
			if ad.Name == "" {
				add("ad %d in ad set %q has no name", ad.ID, s.Name)
			}
			errs = append(errs, creativeIssues(draft.Platform, ad)...)
		}
	}

	if _, err = p.creds.Resolve(ctx, userID, draft.Platform); err != nil {
		add("no usable credential for %s: %v", draft.Platform, err)
	}

	if errs == nil {
		errs = []string{}
	}
	return &port.ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}

// creativeIssues applies per-platform required-field rules to one ad.
func creativeIssues(platform domain.Platform, ad domain.Ad) []string {
	var errs []string
	name := ad.Name
	if name == "" {
		name = fmt.Sprintf("#%d", ad.ID)
	}
	if ad.Creative.LinkURL == "" {
		errs = append(errs, fmt.Sprintf("ad %s has no link URL", name))
	}
	switch platform {
	case domain.PlatformMeta:
		if ad.Creative.Headline == "" && ad.Creative.PrimaryText == "" {
			errs = append(errs, fmt.Sprintf("ad %s needs a headline or primary text", name))
		}
	case domain.PlatformTikTok:
		if ad.Creative.PrimaryText == "" {
			errs = append(errs, fmt.Sprintf("ad %s has no ad text", name))
		}
	case domain.PlatformLinkedIn:
		if ad.Creative.Headline == "" {
			errs = append(errs, fmt.Sprintf("ad %s has no headline", name))
		}
	}
	return errs
}

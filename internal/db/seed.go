package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adforge/internal/adapter/credentials"
	"adforge/internal/core/domain"
)

// Seed inserts demo data into the adforge database: one user with a
// connected meta account and two drafts, each with ad sets and ads. The
// demo access token is sealed through the real credential resolver so the
// publish path works end to end against a stub platform.
func Seed(ctx context.Context, db *pgxpool.Pool, resolver *credentials.Resolver) error {
	const userID = int64(1)

	if err := resolver.Store(ctx, userID, domain.PlatformMeta,
		"1234567890", "555000111", "demo-token-"+uuid.NewString()); err != nil {
		return err
	}

	targeting, _ := json.Marshal(map[string]any{
		"geo_locations": map[string]any{"countries": []string{"US", "DE"}},
		"age_min":       21,
		"age_max":       55,
	})

	for i := 1; i <= 2; i++ {
		var draftID int64
		err := db.QueryRow(ctx, `INSERT INTO campaign_drafts
    (user_id, account_ref, name, objective, special_categories, platform, status)
VALUES ($1, $2, $3, $4, $5, $6, 'draft') RETURNING id`,
			userID, "1234567890", fmt.Sprintf("Demo campaign %d", i),
			"OUTCOME_TRAFFIC", []string{}, domain.PlatformMeta).Scan(&draftID)
		if err != nil {
			return err
		}

		for j := 1; j <= 2; j++ {
			var adSetID int64
			err = db.QueryRow(ctx, `INSERT INTO ad_sets
    (draft_id, name, targeting, budget_type, budget_minor, bid_strategy)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				draftID, fmt.Sprintf("Ad set %d.%d", i, j), targeting,
				domain.BudgetDaily, int64(2000), "LOWEST_COST_WITHOUT_CAP").Scan(&adSetID)
			if err != nil {
				return err
			}

			for k := 1; k <= 2; k++ {
				_, err = db.Exec(ctx, `INSERT INTO ads
    (ad_set_id, name, headline, primary_text, link_url, call_to_action)
VALUES ($1, $2, $3, $4, $5, $6)`,
					adSetID, fmt.Sprintf("Ad %d.%d.%d", i, j, k),
					fmt.Sprintf("Headline %d", k), "Try the demo product today.",
					"https://example.com/landing", "LEARN_MORE")
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

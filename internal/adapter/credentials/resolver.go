package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adforge/internal/core/domain"
	"adforge/internal/core/port"
)

// Resolver implements port.CredentialResolver on top of the
// platform_credentials table. Tokens are stored encrypted; Resolve decrypts
// them with the configured cipher.
type Resolver struct {
	pool   *pgxpool.Pool
	cipher *Cipher
}

// NewResolver returns a resolver backed by the given pool and cipher.
func NewResolver(pool *pgxpool.Pool, cipher *Cipher) *Resolver {
	return &Resolver{pool: pool, cipher: cipher}
}

// Resolve loads and decrypts the user's credential for the platform. It
// distinguishes the three failure classes the publisher cares about:
// no connected account, an account without a token, and an undecryptable
// token.
func (r *Resolver) Resolve(ctx context.Context, userID int64, platform domain.Platform) (domain.Credential, error) {
	var (
		accountRef string
		pageRef    string
		ciphertext []byte
	)
	err := r.pool.QueryRow(ctx, `
        SELECT account_ref, page_ref, token_ciphertext
        FROM platform_credentials
        WHERE user_id = $1 AND platform = $2`,
		userID, platform).Scan(&accountRef, &pageRef, &ciphertext)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Credential{}, fmt.Errorf("%w: %s", port.ErrNoAccount, platform)
	}
	if err != nil {
		return domain.Credential{}, err
	}
	if len(ciphertext) == 0 {
		return domain.Credential{}, fmt.Errorf("%w: account %s", port.ErrNoToken, accountRef)
	}

	token, err := r.cipher.Open(ciphertext)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: account %s", port.ErrDecryptFailed, accountRef)
	}

	return domain.Credential{
		AccountRef:  accountRef,
		AccessToken: token,
		PageRef:     pageRef,
	}, nil
}

// Store upserts an encrypted credential row. Used by the seed command and
// by whatever account-connection surface sits above this service.
func (r *Resolver) Store(ctx context.Context, userID int64, platform domain.Platform, accountRef, pageRef, token string) error {
	ciphertext, err := r.cipher.Seal(token)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO platform_credentials (user_id, platform, account_ref, page_ref, token_ciphertext)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, platform)
        DO UPDATE SET account_ref = $3, page_ref = $4, token_ciphertext = $5, updated_at = now()`,
		userID, platform, accountRef, pageRef, ciphertext)
	return err
}

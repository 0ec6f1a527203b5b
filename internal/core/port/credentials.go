package port

import (
	"context"

	"adforge/internal/core/domain"
)

// CredentialResolver turns a (user, platform) pair into a usable access
// credential. Failures map onto ErrNoAccount, ErrNoToken or
// ErrDecryptFailed, possibly wrapped with detail.
type CredentialResolver interface {
	Resolve(ctx context.Context, userID int64, platform domain.Platform) (domain.Credential, error)
}

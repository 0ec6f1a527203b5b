package port

import "errors"

// State-conflict and lookup errors returned by the publisher. These are
// terminal for the call that receives them; nothing is retried internally.
var (
	ErrDraftNotFound      = errors.New("draft not found")
	ErrAlreadyPublished   = errors.New("draft already published")
	ErrPublishInProgress  = errors.New("draft is currently publishing")
	ErrInvalidDraftStatus = errors.New("draft is not in a publishable status")
	ErrNotPublished       = errors.New("draft is not published")
)

// Credential resolution errors. Any of these aborts a publish run before
// remote writes happen.
var (
	ErrNoAccount     = errors.New("no connected account for platform")
	ErrNoToken       = errors.New("no access token for account")
	ErrDecryptFailed = errors.New("access token decryption failed")
)

// ErrMediaNotFound is returned when an ad references a media upload that
// does not exist in the store.
var ErrMediaNotFound = errors.New("media upload not found")

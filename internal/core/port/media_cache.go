package port

import (
	"context"

	"adforge/internal/core/domain"
)

// MediaHandleCache stores resolved platform handles for uploaded assets so
// repeated publish runs skip re-uploading identical binaries. A cache miss
// is not an error: GetHandle returns "" when no handle is cached. Cache
// failures must be non-fatal for callers; losing a handle only costs an
// extra upload.
type MediaHandleCache interface {
	GetHandle(ctx context.Context, uploadID int64, platform domain.Platform) (string, error)
	PutHandle(ctx context.Context, uploadID int64, platform domain.Platform, handle string) error
}

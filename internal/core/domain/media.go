package domain

import "time"

// MediaUpload is an uploaded binary asset referenced by ad creatives. The
// raw bytes live in the media store; resolved platform handles (e.g. an
// image hash) are cached per platform after the first successful upload so
// retries do not re-upload the same binary.
type MediaUpload struct {
	ID        int64
	UserID    int64
	Filename  string
	MimeType  string
	Data      []byte
	CreatedAt time.Time
}

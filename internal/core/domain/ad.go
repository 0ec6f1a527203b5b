package domain

import "time"

// Creative holds the ad-level creative configuration. MediaUploadID, when
// set, references an uploaded asset that must be resolved to a platform
// handle before the creative can be created remotely.
type Creative struct {
	Headline      string
	PrimaryText   string
	LinkURL       string
	CallToAction  string
	MediaUploadID *int64
}

// Ad is the leaf entity of a draft. A successfully published ad carries both
// the remote creative id and the remote ad id assigned by the platform.
type Ad struct {
	ID               int64
	AdSetID          int64
	Name             string
	Creative         Creative
	Status           EntityStatus
	RemoteID         *string
	RemoteCreativeID *string
	LastError        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

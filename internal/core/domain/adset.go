package domain

import (
	"encoding/json"
	"time"
)

// BudgetType selects which budget field an ad set uses. Exactly one of the
// two applies; the adapter payload must never carry both.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// EntityStatus is the publish state of a child entity (ad set or ad).
// Children start in EntityDraft and are only moved by the publisher.
type EntityStatus string

const (
	EntityDraft     EntityStatus = "draft"
	EntityPublished EntityStatus = "published"
	EntityFailed    EntityStatus = "failed"
)

// AdSet groups ads under a draft with shared budget, bidding and targeting.
// Targeting is opaque structured data interpreted by the platform adapter.
// BudgetMinor is in integer minor currency units (e.g. cents).
type AdSet struct {
	ID          int64
	DraftID     int64
	Name        string
	Targeting   json.RawMessage
	BudgetType  BudgetType
	BudgetMinor int64
	BidStrategy string
	StartAt     *time.Time
	EndAt       *time.Time
	Status      EntityStatus
	RemoteID    *string
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

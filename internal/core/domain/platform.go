package domain

// Platform identifies the external ad platform a draft targets. The set is
// fixed; repositories store the string value and the platform registry uses
// it as a dispatch key.
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformTikTok   Platform = "tiktok"
	PlatformLinkedIn Platform = "linkedin"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMeta, PlatformTikTok, PlatformLinkedIn:
		return true
	}
	return false
}

// CampaignState is the remote-side delivery state of a published campaign.
// Campaigns are always created paused and flipped to active by a separate
// activation step.
type CampaignState string

const (
	CampaignStatePaused CampaignState = "paused"
	CampaignStateActive CampaignState = "active"
)

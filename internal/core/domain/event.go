package domain

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Event types written to the outbox.
const (
	EventCampaignCreated = "campaign.created"
	EventContributed     = "campaign.contributed"
	EventFinalized       = "campaign.finalized"
	EventRefundWithdrawn = "campaign.refund_withdrawn"
)

// Event is a notification recorded in the same transaction as the state
// change that produced it. PublishedAt is nil until a relay delivers it.
type Event struct {
	ID          string
	Type        string
	CampaignID  uint64
	Payload     json.RawMessage
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// CampaignCreated is the payload of EventCampaignCreated.
type CampaignCreated struct {
	CampaignID uint64         `json:"campaign_id"`
	Creator    common.Address `json:"creator"`
	Title      string         `json:"title"`
	Goal       string         `json:"goal"`
	Deadline   int64          `json:"deadline"`
}

// Contributed is the payload of EventContributed.
type Contributed struct {
	CampaignID   uint64         `json:"campaign_id"`
	Contributor  common.Address `json:"contributor"`
	Amount       string         `json:"amount"`
	RewardMinted string         `json:"reward_minted"`
}

// Finalized is the payload of EventFinalized.
type Finalized struct {
	CampaignID  uint64 `json:"campaign_id"`
	GoalReached bool   `json:"goal_reached"`
	TotalRaised string `json:"total_raised"`
}

// RefundWithdrawn is the payload of EventRefundWithdrawn.
type RefundWithdrawn struct {
	CampaignID  uint64         `json:"campaign_id"`
	Contributor common.Address `json:"contributor"`
	Amount      string         `json:"amount"`
}

package domain

import "github.com/ethereum/go-ethereum/common"

// Contribution is the cumulative value one contributor has put into one
// campaign. The record is zeroed, never deleted, when a refund is withdrawn.
type Contribution struct {
	CampaignID  uint64
	Contributor common.Address
	Amount      Amount
}

// Receipt describes an accepted contribution.
type Receipt struct {
	CampaignID   uint64
	Contributor  common.Address
	Amount       Amount
	RewardMinted Amount
	Total        Amount // contributor's cumulative amount after this call
	Raised       Amount
}

// Settlement is the outcome of finalizing a campaign.
type Settlement struct {
	CampaignID  uint64
	GoalReached bool
	TotalRaised Amount
	PaidTo      *common.Address // creator, set only when the goal was reached
}

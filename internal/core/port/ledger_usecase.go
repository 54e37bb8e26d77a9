package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-ledger/internal/core/domain"
)

// LedgerUseCase defines the operations exposed by the campaign ledger. This
// interface is the primary port into the application domain; the HTTP
// adapter and the keeper depend on it. Every mutating call is one atomic
// transaction: it is either fully applied or rejected with no visible change.
type LedgerUseCase interface {
	// CreateCampaign allocates the next sequential id and stores a new open
	// campaign owned by caller.
	CreateCampaign(ctx context.Context, caller common.Address, req CreateCampaignReq) (uint64, error)

	// Contribute records the deposited amount against the campaign and mints
	// the reward credit to caller. The value stays in custody until
	// settlement.
	Contribute(ctx context.Context, caller common.Address, campaignID uint64, req ContributeReq) (*domain.Receipt, error)

	// Finalize settles a campaign after its deadline. Any caller may do it.
	Finalize(ctx context.Context, caller common.Address, campaignID uint64) (*domain.Settlement, error)

	// WithdrawRefund returns caller's contribution to a campaign that missed
	// its goal. It returns the refunded amount.
	WithdrawRefund(ctx context.Context, caller common.Address, campaignID uint64) (domain.Amount, error)

	// GetCampaign returns a campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, campaignID uint64) (*domain.Campaign, error)

	// ListCampaigns returns campaigns ordered by id.
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error)

	// NextCampaignID returns the number of campaigns created so far.
	NextCampaignID(ctx context.Context) (uint64, error)

	// Contribution returns the amount currently recorded for who.
	Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Contribution, error)

	// RefundableAmount returns what who could withdraw right now. It is zero
	// unless the campaign is finalized below its goal; it fails only on
	// storage errors.
	RefundableAmount(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error)

	// CustodyBalance returns the value held by the ledger across campaigns.
	CustodyBalance(ctx context.Context) (domain.Amount, error)

	// RewardBalance returns who's reward credit balance with display data.
	RewardBalance(ctx context.Context, who common.Address) (*RewardBalance, error)
}

// CreateCampaignReq carries the creation parameters of a campaign.
type CreateCampaignReq struct {
	Title           string
	Goal            domain.Amount
	DurationSeconds uint64
}

// ContributeReq carries the value attached to a contribution. DepositRef
// names the inbound payment that moved Amount into custody; each reference
// can back one contribution only.
type ContributeReq struct {
	Amount     domain.Amount
	DepositRef string
}

// RewardBalance is a reward credit balance together with its unit
// descriptor. Formatted is for display only.
type RewardBalance struct {
	Owner     common.Address
	Balance   domain.Amount
	Formatted string
	Symbol    string
	Decimals  uint8
}

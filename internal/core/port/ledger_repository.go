package port

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-ledger/internal/core/domain"
)

// LedgerReader is the read side of the ledger storage. Outside a
// transaction it only ever observes committed state.
type LedgerReader interface {
	// GetCampaign returns nil and no error when the campaign does not exist.
	GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	// ListCampaigns returns campaigns ordered by id.
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error)
	// CampaignCount returns the next campaign id.
	CampaignCount(ctx context.Context) (uint64, error)
	// Contribution returns zero for unknown pairs.
	Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error)
	// RewardBalance returns zero for unknown identities.
	RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error)
	// CustodyBalance returns the value held by the ledger.
	CustodyBalance(ctx context.Context) (domain.Amount, error)
}

// RewardBalances is the slice of a transaction the reward issuer writes to.
type RewardBalances interface {
	RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error)
	SetRewardBalance(ctx context.Context, who common.Address, balance domain.Amount) error
}

// LedgerTx is the view of the storage inside LedgerRepository.Atomically.
// Writes become visible to other readers only when the transaction commits.
type LedgerTx interface {
	LedgerReader
	RewardBalances

	// LockCampaign reads a campaign and holds it for update until the end
	// of the transaction. It returns nil and no error when it does not exist.
	LockCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	// InsertCampaign stores c under the next sequential id and sets c.ID.
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign persists the mutable fields (raised, finalized).
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// SetContribution overwrites the recorded amount of who.
	SetContribution(ctx context.Context, campaignID uint64, who common.Address, amount domain.Amount) error
	// SetCustodyBalance overwrites the ledger custody balance.
	SetCustodyBalance(ctx context.Context, balance domain.Amount) error
	// ClaimDeposit records ref as spent by a contribution. It fails with
	// domain.ErrDepositClaimed when ref was claimed before.
	ClaimDeposit(ctx context.Context, ref string, campaignID uint64, who common.Address, amount domain.Amount) error
	// AppendEvent adds a notification to the outbox.
	AppendEvent(ctx context.Context, e domain.Event) error
}

// OutboxRepository gives the relay access to undelivered notifications.
type OutboxRepository interface {
	// PendingEvents returns unpublished events in emission order.
	PendingEvents(ctx context.Context, limit int) ([]domain.Event, error)
	// MarkEventsPublished stamps events as delivered.
	MarkEventsPublished(ctx context.Context, ids []string, at time.Time) error
}

// CampaignScanner finds campaigns that are due for settlement.
type CampaignScanner interface {
	// ExpiredOpenCampaigns returns ids >= fromID of unfinalized campaigns
	// whose deadline is at or before now, ordered by id.
	ExpiredOpenCampaigns(ctx context.Context, now time.Time, fromID uint64, limit int) ([]uint64, error)
}

// LedgerRepository defines the persistence layer for the ledger. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and apply each Atomically call all-or-nothing.
type LedgerRepository interface {
	LedgerReader
	OutboxRepository
	CampaignScanner

	// Atomically runs fn in a single transaction. The transaction commits
	// when fn returns nil and rolls back otherwise.
	Atomically(ctx context.Context, fn func(tx LedgerTx) error) error
}

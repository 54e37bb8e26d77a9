// Package memory provides an in-process ledger repository. It keeps no data
// across restarts and is meant for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

type contributionKey struct {
	campaignID uint64
	who        common.Address
}

// state is the committed ledger. Only undelivered events are kept.
type state struct {
	campaigns     []domain.Campaign // index is the campaign id
	contributions map[contributionKey]domain.Amount
	rewards       map[common.Address]domain.Amount
	custody       domain.Amount
	deposits      map[string]struct{}
	events        []domain.Event
}

// LedgerRepository implements port.LedgerRepository in memory.
//
// Transactions are serialised by writeMu and buffer their writes in a
// private write set. Commit applies the write set under mu, so the cost of
// a transaction is proportional to what it touched and readers outside it
// only ever see committed state.
type LedgerRepository struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	s       state
}

// NewLedgerRepository returns an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{s: state{
		contributions: map[contributionKey]domain.Amount{},
		rewards:       map[common.Address]domain.Amount{},
		deposits:      map[string]struct{}{},
	}}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// Atomically runs fn against a write set and applies it only when fn
// succeeds.
func (r *LedgerRepository) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newLedgerTx(r)
	if err := fn(tx); err != nil {
		return err
	}
	r.commit(tx)
	return nil
}

func (r *LedgerRepository) commit(tx *ledgerTx) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range tx.updated {
		r.s.campaigns[id] = c
	}
	r.s.campaigns = append(r.s.campaigns, tx.inserted...)
	for k, v := range tx.contributions {
		r.s.contributions[k] = v
	}
	for k, v := range tx.rewards {
		r.s.rewards[k] = v
	}
	if tx.custody != nil {
		r.s.custody = *tx.custody
	}
	for ref := range tx.deposits {
		r.s.deposits[ref] = struct{}{}
	}
	r.s.events = append(r.s.events, tx.events...)
}

// GetCampaign returns a copy of the campaign, or nil when it does not exist.
func (r *LedgerRepository) GetCampaign(_ context.Context, id uint64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id >= uint64(len(r.s.campaigns)) {
		return nil, nil
	}
	c := r.s.campaigns[id]
	return &c, nil
}

// ListCampaigns returns campaigns ordered by id.
func (r *LedgerRepository) ListCampaigns(_ context.Context, offset, limit int) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.s.campaigns, offset, limit), nil
}

// CampaignCount returns the next campaign id.
func (r *LedgerRepository) CampaignCount(context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.s.campaigns)), nil
}

// Contribution returns the recorded amount of who.
func (r *LedgerRepository) Contribution(_ context.Context, campaignID uint64, who common.Address) (domain.Amount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.contributions[contributionKey{campaignID: campaignID, who: who}], nil
}

// RewardBalance returns the reward balance of who.
func (r *LedgerRepository) RewardBalance(_ context.Context, who common.Address) (domain.Amount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.rewards[who], nil
}

// CustodyBalance returns the custody balance.
func (r *LedgerRepository) CustodyBalance(context.Context) (domain.Amount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.custody, nil
}

// ExpiredOpenCampaigns returns unfinalized campaigns past their deadline.
func (r *LedgerRepository) ExpiredOpenCampaigns(_ context.Context, now time.Time, fromID uint64, limit int) ([]uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint64
	for id := fromID; id < uint64(len(r.s.campaigns)); id++ {
		c := &r.s.campaigns[id]
		if c.Finalized || !c.Ended(now) {
			continue
		}
		ids = append(ids, c.ID)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	return ids, nil
}

// PendingEvents returns unpublished events in emission order.
func (r *LedgerRepository) PendingEvents(_ context.Context, limit int) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.s.events)
	if limit > 0 {
		n = min(n, limit)
	}
	return slices.Clone(r.s.events[:n]), nil
}

// MarkEventsPublished drops the given events. Delivered events are not
// kept in memory.
func (r *LedgerRepository) MarkEventsPublished(_ context.Context, ids []string, _ time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	done := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		done[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.events = slices.DeleteFunc(r.s.events, func(e domain.Event) bool {
		_, ok := done[e.ID]
		return ok
	})
	return nil
}

func page(campaigns []domain.Campaign, offset, limit int) []domain.Campaign {
	if offset >= len(campaigns) {
		return []domain.Campaign{}
	}
	end := min(offset+limit, len(campaigns))
	return slices.Clone(campaigns[offset:end])
}

// ledgerTx buffers the writes of one Atomically call. Reads see the write
// set first and fall back to committed state.
type ledgerTx struct {
	r             *LedgerRepository
	updated       map[uint64]domain.Campaign
	inserted      []domain.Campaign
	contributions map[contributionKey]domain.Amount
	rewards       map[common.Address]domain.Amount
	custody       *domain.Amount
	deposits      map[string]struct{}
	events        []domain.Event
}

func newLedgerTx(r *LedgerRepository) *ledgerTx {
	return &ledgerTx{
		r:             r,
		updated:       map[uint64]domain.Campaign{},
		contributions: map[contributionKey]domain.Amount{},
		rewards:       map[common.Address]domain.Amount{},
		deposits:      map[string]struct{}{},
	}
}

func (t *ledgerTx) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	if c, ok := t.updated[id]; ok {
		return &c, nil
	}
	committed, err := t.r.CampaignCount(ctx)
	if err != nil {
		return nil, err
	}
	if id >= committed {
		if i := id - committed; i < uint64(len(t.inserted)) {
			c := t.inserted[i]
			return &c, nil
		}
		return nil, nil
	}
	return t.r.GetCampaign(ctx, id)
}

func (t *ledgerTx) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	t.r.mu.RLock()
	all := append(slices.Clone(t.r.s.campaigns), t.inserted...)
	t.r.mu.RUnlock()
	for id, c := range t.updated {
		all[id] = c
	}
	return page(all, offset, limit), nil
}

func (t *ledgerTx) CampaignCount(ctx context.Context) (uint64, error) {
	committed, err := t.r.CampaignCount(ctx)
	return committed + uint64(len(t.inserted)), err
}

func (t *ledgerTx) Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error) {
	if v, ok := t.contributions[contributionKey{campaignID: campaignID, who: who}]; ok {
		return v, nil
	}
	return t.r.Contribution(ctx, campaignID, who)
}

func (t *ledgerTx) RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error) {
	if v, ok := t.rewards[who]; ok {
		return v, nil
	}
	return t.r.RewardBalance(ctx, who)
}

func (t *ledgerTx) CustodyBalance(ctx context.Context) (domain.Amount, error) {
	if t.custody != nil {
		return *t.custody, nil
	}
	return t.r.CustodyBalance(ctx)
}

func (t *ledgerTx) LockCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	return t.GetCampaign(ctx, id)
}

func (t *ledgerTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	next, err := t.CampaignCount(ctx)
	if err != nil {
		return err
	}
	c.ID = next
	t.inserted = append(t.inserted, *c)
	return nil
}

func (t *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	committed, err := t.r.CampaignCount(ctx)
	if err != nil {
		return err
	}
	if c.ID >= committed {
		i := c.ID - committed
		if i >= uint64(len(t.inserted)) {
			return domain.ErrNotFound
		}
		t.inserted[i].Raised = c.Raised
		t.inserted[i].Finalized = c.Finalized
		return nil
	}
	stored, err := t.GetCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	stored.Raised = c.Raised
	stored.Finalized = c.Finalized
	t.updated[c.ID] = *stored
	return nil
}

func (t *ledgerTx) SetContribution(_ context.Context, campaignID uint64, who common.Address, amount domain.Amount) error {
	t.contributions[contributionKey{campaignID: campaignID, who: who}] = amount
	return nil
}

func (t *ledgerTx) SetRewardBalance(_ context.Context, who common.Address, balance domain.Amount) error {
	t.rewards[who] = balance
	return nil
}

func (t *ledgerTx) SetCustodyBalance(_ context.Context, balance domain.Amount) error {
	t.custody = &balance
	return nil
}

func (t *ledgerTx) ClaimDeposit(_ context.Context, ref string, _ uint64, _ common.Address, _ domain.Amount) error {
	if _, ok := t.deposits[ref]; ok {
		return domain.ErrDepositClaimed
	}
	t.r.mu.RLock()
	_, ok := t.r.s.deposits[ref]
	t.r.mu.RUnlock()
	if ok {
		return domain.ErrDepositClaimed
	}
	t.deposits[ref] = struct{}{}
	return nil
}

func (t *ledgerTx) AppendEvent(_ context.Context, e domain.Event) error {
	t.events = append(t.events, e)
	return nil
}

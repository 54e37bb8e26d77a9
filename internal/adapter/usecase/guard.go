package usecase

import (
	"context"
	"sync"

	"crowdfund-ledger/internal/core/domain"
)

// transferKey marks contexts handed to a Transferer. Any ledger mutation
// started with such a context is a reentrant call.
type transferKey struct{}

func withTransferMark(ctx context.Context, campaignID uint64) context.Context {
	return context.WithValue(ctx, transferKey{}, campaignID)
}

func checkReentry(ctx context.Context) error {
	if _, ok := ctx.Value(transferKey{}).(uint64); ok {
		return domain.ErrReentrantCall
	}
	return nil
}

// campaignLocks hands out one mutex per campaign id. An entry lives only
// while some caller holds or waits for it.
type campaignLocks struct {
	mu    sync.Mutex
	locks map[uint64]*campaignLock
}

type campaignLock struct {
	sync.Mutex
	refs int
}

func newCampaignLocks() *campaignLocks {
	return &campaignLocks{locks: make(map[uint64]*campaignLock)}
}

// lock blocks until the campaign is exclusively held and returns the
// release function.
func (c *campaignLocks) lock(id uint64) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &campaignLock{}
		c.locks[id] = l
	}
	l.refs++
	c.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		c.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(c.locks, id)
		}
		c.mu.Unlock()
	}
}

// size returns the number of live entries.
func (c *campaignLocks) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.locks)
}

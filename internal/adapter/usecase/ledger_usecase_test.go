package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/adapter/transfer"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/core/port/mocks"
)

var (
	controller = common.HexToAddress("0x00000000000000000000000000000000000c0de1")
	creator    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	alice      = common.HexToAddress("0x2222222222222222222222222222222222222222")
	bob        = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func amt(v uint64) domain.Amount {
	return domain.NewAmount(v)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	ledger *CampaignLedger
	repo   *memory.LedgerRepository
	clock  *fakeClock
}

func newFixture(t *testing.T, payer port.Transferer) *fixture {
	t.Helper()
	repo := memory.NewLedgerRepository()
	clock := newFakeClock()
	issuer := NewRewardIssuer(repo, controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})
	return &fixture{
		ledger: NewCampaignLedger(repo, issuer, payer, controller, WithClock(clock.Now)),
		repo:   repo,
		clock:  clock,
	}
}

func newBookFixture(t *testing.T) (*fixture, *transfer.Book) {
	book := transfer.NewBook()
	return newFixture(t, book), book
}

func (f *fixture) create(t *testing.T, goal uint64, duration uint64) uint64 {
	t.Helper()
	id, err := f.ledger.CreateCampaign(context.Background(), creator, port.CreateCampaignReq{
		Title:           "Community garden",
		Goal:            amt(goal),
		DurationSeconds: duration,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) contribute(t *testing.T, who common.Address, id uint64, amount uint64) *domain.Receipt {
	t.Helper()
	r, err := f.ledger.Contribute(context.Background(), who, id, port.ContributeReq{Amount: amt(amount)})
	require.NoError(t, err)
	return r
}

func (f *fixture) campaign(t *testing.T, id uint64) *domain.Campaign {
	t.Helper()
	c, err := f.ledger.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	return c
}

func (f *fixture) custody(t *testing.T) domain.Amount {
	t.Helper()
	c, err := f.ledger.CustodyBalance(context.Background())
	require.NoError(t, err)
	return c
}

func (f *fixture) reward(t *testing.T, who common.Address) domain.Amount {
	t.Helper()
	b, err := f.ledger.RewardBalance(context.Background(), who)
	require.NoError(t, err)
	return b.Balance
}

func TestCreateCampaign(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	start := f.clock.Now()

	first := f.create(t, 1000, 3600)
	second := f.create(t, 5, 60)
	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(1), second)

	next, err := f.ledger.NextCampaignID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next)

	c := f.campaign(t, first)
	assert.Equal(t, "Community garden", c.Title)
	assert.Equal(t, creator, c.Creator)
	assert.Equal(t, amt(1000), c.Goal)
	assert.True(t, c.Raised.IsZero())
	assert.False(t, c.Finalized)
	assert.Equal(t, start.Add(time.Hour), c.Deadline)
	assert.Equal(t, domain.StatusOpen, c.Status(f.clock.Now()))
}

func TestCreateCampaignRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		req  port.CreateCampaignReq
	}{
		{"empty title", port.CreateCampaignReq{Title: "", Goal: amt(1), DurationSeconds: 60}},
		{"blank title", port.CreateCampaignReq{Title: "  \t", Goal: amt(1), DurationSeconds: 60}},
		{"zero goal", port.CreateCampaignReq{Title: "x", Goal: amt(0), DurationSeconds: 60}},
		{"zero duration", port.CreateCampaignReq{Title: "x", Goal: amt(1), DurationSeconds: 0}},
		{"duration too long", port.CreateCampaignReq{Title: "x", Goal: amt(1), DurationSeconds: domain.MaxDurationSeconds + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newBookFixture(t)
			_, err := f.ledger.CreateCampaign(context.Background(), creator, tt.req)
			require.ErrorIs(t, err, domain.ErrInvalidParameters)

			next, err := f.ledger.NextCampaignID(context.Background())
			require.NoError(t, err)
			assert.Zero(t, next)
		})
	}
}

func TestCreateCampaignAcceptsMaxDuration(t *testing.T) {
	f, _ := newBookFixture(t)
	_, err := f.ledger.CreateCampaign(context.Background(), creator, port.CreateCampaignReq{
		Title: "long", Goal: amt(1), DurationSeconds: domain.MaxDurationSeconds,
	})
	require.NoError(t, err)
}

func TestContributeRecordsAndMints(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 1000, 3600)

	r := f.contribute(t, alice, id, 500)
	assert.Equal(t, amt(500), r.Amount)
	assert.Equal(t, amt(50_000), r.RewardMinted)
	assert.Equal(t, amt(500), r.Total)
	assert.Equal(t, amt(500), r.Raised)

	r = f.contribute(t, alice, id, 250)
	assert.Equal(t, amt(750), r.Total)
	f.contribute(t, bob, id, 1)

	c := f.campaign(t, id)
	assert.Equal(t, amt(751), c.Raised)

	got, err := f.ledger.Contribution(ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, amt(750), got.Amount)

	assert.Equal(t, amt(75_000), f.reward(t, alice))
	assert.Equal(t, amt(100), f.reward(t, bob))
	assert.Equal(t, amt(751), f.custody(t))
}

func TestContributeRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown campaign", func(t *testing.T) {
		f, _ := newBookFixture(t)
		_, err := f.ledger.Contribute(ctx, alice, 7, port.ContributeReq{Amount: amt(1)})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("zero amount", func(t *testing.T) {
		f, _ := newBookFixture(t)
		id := f.create(t, 1000, 3600)
		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(0)})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("at deadline", func(t *testing.T) {
		f, _ := newBookFixture(t)
		id := f.create(t, 1000, 3600)
		f.clock.Advance(time.Hour - time.Second)
		f.contribute(t, alice, id, 1)

		f.clock.Advance(time.Second)
		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(1)})
		require.ErrorIs(t, err, domain.ErrCampaignEnded)
	})

	t.Run("ended is checked before amount", func(t *testing.T) {
		f, _ := newBookFixture(t)
		id := f.create(t, 1000, 60)
		f.clock.Advance(time.Minute)
		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(0)})
		require.ErrorIs(t, err, domain.ErrCampaignEnded)
	})

	t.Run("finalized", func(t *testing.T) {
		f, _ := newBookFixture(t)
		id := f.create(t, 1000, 60)
		f.clock.Advance(time.Minute)
		_, err := f.ledger.Finalize(ctx, bob, id)
		require.NoError(t, err)

		_, err = f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(0)})
		require.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	})
}

func TestContributeOverflowCommitsNothing(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 1000, 3600)

	maxAmount := new(uint256.Int).SetAllOne()
	perContribution := new(uint256.Int).Div(maxAmount, uint256.NewInt(domain.RewardMultiplier))

	_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: *perContribution})
	require.NoError(t, err)

	// the second mint would overflow alice's reward balance
	_, err = f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: *perContribution})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	c := f.campaign(t, id)
	assert.Equal(t, *perContribution, c.Raised)
	assert.Equal(t, *perContribution, f.custody(t))

	tooBig := new(uint256.Int).AddUint64(perContribution, 1)
	_, err = f.ledger.Contribute(ctx, bob, id, port.ContributeReq{Amount: *tooBig})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, domain.Amount{}, f.reward(t, bob))
}

func TestFinalizeGoalReachedPaysCreator(t *testing.T) {
	f, book := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 1000, 3600)
	f.contribute(t, alice, id, 600)
	f.contribute(t, bob, id, 400)

	_, err := f.ledger.Finalize(ctx, bob, id)
	require.ErrorIs(t, err, domain.ErrNotEnded)

	f.clock.Advance(time.Hour)
	s, err := f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)
	assert.True(t, s.GoalReached)
	assert.Equal(t, amt(1000), s.TotalRaised)
	require.NotNil(t, s.PaidTo)
	assert.Equal(t, creator, *s.PaidTo)

	assert.Equal(t, amt(1000), book.Paid(creator))
	assert.Equal(t, domain.Amount{}, f.custody(t))

	c := f.campaign(t, id)
	assert.True(t, c.Finalized)
	assert.Equal(t, domain.StatusPaid, c.Status(f.clock.Now()))

	_, err = f.ledger.Finalize(ctx, alice, id)
	require.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.Equal(t, amt(1000), book.Paid(creator))
	assert.Len(t, book.Payments(), 1)

	_, err = f.ledger.WithdrawRefund(ctx, alice, id)
	require.ErrorIs(t, err, domain.ErrNotRefundable)
}

func TestFinalizeUnknownCampaign(t *testing.T) {
	f, _ := newBookFixture(t)
	_, err := f.ledger.Finalize(context.Background(), bob, 0)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoalMissedRefundFlow(t *testing.T) {
	f, book := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 1000, 3600)
	f.contribute(t, alice, id, 300)
	f.contribute(t, bob, id, 200)

	_, err := f.ledger.WithdrawRefund(ctx, alice, id)
	require.ErrorIs(t, err, domain.ErrNotRefundable)

	f.clock.Advance(2 * time.Hour)
	s, err := f.ledger.Finalize(ctx, creator, id)
	require.NoError(t, err)
	assert.False(t, s.GoalReached)
	assert.Nil(t, s.PaidTo)
	assert.Empty(t, book.Payments())

	refundable, err := f.ledger.RefundableAmount(ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, amt(300), refundable)

	refund, err := f.ledger.WithdrawRefund(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, amt(300), refund)
	assert.Equal(t, amt(300), book.Paid(alice))

	_, err = f.ledger.WithdrawRefund(ctx, alice, id)
	require.ErrorIs(t, err, domain.ErrNothingToRefund)
	assert.Equal(t, amt(300), book.Paid(alice))

	refundable, err = f.ledger.RefundableAmount(ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, refundable.IsZero())

	rec, err := f.ledger.Contribution(ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, rec.Amount.IsZero())

	// raised is a historical total; custody tracks what is still held
	assert.Equal(t, amt(500), f.campaign(t, id).Raised)
	assert.Equal(t, amt(200), f.custody(t))
	assert.Equal(t, amt(30_000), f.reward(t, alice))

	_, err = f.ledger.WithdrawRefund(ctx, creator, id)
	require.ErrorIs(t, err, domain.ErrNothingToRefund)
}

func TestRefundableAmountIsZeroOutsideRefunds(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()

	got, err := f.ledger.RefundableAmount(ctx, 42, alice)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	id := f.create(t, 10, 60)
	f.contribute(t, alice, id, 5)
	got, err = f.ledger.RefundableAmount(ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = f.ledger.WithdrawRefund(ctx, alice, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinalizeTransferFailureRollsBack(t *testing.T) {
	payer := mocks.NewMockTransferer(t)
	f := newFixture(t, payer)
	ctx := context.Background()
	id := f.create(t, 100, 60)
	f.contribute(t, alice, id, 100)
	f.clock.Advance(time.Minute)

	payer.EXPECT().Transfer(mock.Anything, creator, amt(100)).Return(errors.New("node unavailable")).Once()
	_, err := f.ledger.Finalize(ctx, bob, id)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	assert.False(t, f.campaign(t, id).Finalized)
	assert.Equal(t, amt(100), f.custody(t))

	payer.EXPECT().Transfer(mock.Anything, creator, amt(100)).Return(nil).Once()
	s, err := f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)
	assert.True(t, s.GoalReached)
	assert.Equal(t, domain.Amount{}, f.custody(t))
}

func TestWithdrawRefundTransferFailureRollsBack(t *testing.T) {
	payer := mocks.NewMockTransferer(t)
	f := newFixture(t, payer)
	ctx := context.Background()
	id := f.create(t, 100, 60)
	f.contribute(t, alice, id, 40)
	f.clock.Advance(time.Minute)
	_, err := f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)

	payer.EXPECT().Transfer(mock.Anything, alice, amt(40)).Return(errors.New("rejected")).Once()
	_, err = f.ledger.WithdrawRefund(ctx, alice, id)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	rec, err := f.ledger.Contribution(ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, amt(40), rec.Amount)
	assert.Equal(t, amt(40), f.custody(t))

	payer.EXPECT().Transfer(mock.Anything, alice, amt(40)).Return(nil).Once()
	refund, err := f.ledger.WithdrawRefund(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, amt(40), refund)
}

func TestReentrantCallsFromRecipientFail(t *testing.T) {
	payer := mocks.NewMockTransferer(t)
	f := newFixture(t, payer)
	ctx := context.Background()
	id := f.create(t, 100, 60)
	other := f.create(t, 100, 3600)
	f.contribute(t, alice, id, 40)
	f.clock.Advance(time.Minute)
	_, err := f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)

	var reentry []error
	payer.EXPECT().Transfer(mock.Anything, alice, amt(40)).
		RunAndReturn(func(ctx context.Context, to common.Address, _ domain.Amount) error {
			_, err := f.ledger.WithdrawRefund(ctx, to, id)
			reentry = append(reentry, err)
			_, err = f.ledger.Contribute(ctx, to, other, port.ContributeReq{Amount: amt(1)})
			reentry = append(reentry, err)
			_, err = f.ledger.CreateCampaign(ctx, to, port.CreateCampaignReq{Title: "x", Goal: amt(1), DurationSeconds: 1})
			reentry = append(reentry, err)
			return nil
		}).Once()

	refund, err := f.ledger.WithdrawRefund(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, amt(40), refund)

	require.Len(t, reentry, 3)
	for _, err := range reentry {
		assert.ErrorIs(t, err, domain.ErrReentrantCall)
	}

	assert.Equal(t, domain.Amount{}, f.custody(t))
	next, err := f.ledger.NextCampaignID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next)
}

func TestConcurrentContributions(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 1_000_000, 3600)

	contributors := []common.Address{alice, bob, creator}
	const perWorker = 20

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(who common.Address) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := f.ledger.Contribute(ctx, who, id, port.ContributeReq{Amount: amt(3)})
				assert.NoError(t, err)
			}
		}(contributors[i%len(contributors)])
	}
	wg.Wait()

	var sum domain.Amount
	for _, who := range contributors {
		rec, err := f.ledger.Contribution(ctx, id, who)
		require.NoError(t, err)
		assert.Equal(t, amt(10*perWorker*3), rec.Amount)
		sum.Add(&sum, &rec.Amount)
		assert.Equal(t, amt(10*perWorker*3*domain.RewardMultiplier), f.reward(t, who))
	}
	assert.Equal(t, sum, f.campaign(t, id).Raised)
	assert.Equal(t, sum, f.custody(t))
}

func TestConcurrentFinalizePaysOnce(t *testing.T) {
	f, book := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, 60)
	f.contribute(t, alice, id, 10)
	f.clock.Advance(time.Minute)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.Finalize(ctx, bob, id)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, amt(10), book.Paid(creator))
}

func TestOperationsWriteOutboxEvents(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, 60)
	f.contribute(t, alice, id, 4)

	_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(0)})
	require.Error(t, err)

	f.clock.Advance(time.Minute)
	_, err = f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)
	_, err = f.ledger.WithdrawRefund(ctx, alice, id)
	require.NoError(t, err)

	events, err := f.repo.PendingEvents(ctx, 0)
	require.NoError(t, err)
	var types []string
	for _, e := range events {
		types = append(types, e.Type)
		assert.Equal(t, id, e.CampaignID)
		assert.NotEmpty(t, e.ID)
	}
	assert.Equal(t, []string{
		domain.EventCampaignCreated,
		domain.EventContributed,
		domain.EventFinalized,
		domain.EventRefundWithdrawn,
	}, types)
	assert.JSONEq(t, `{"campaign_id":0,"contributor":"0x2222222222222222222222222222222222222222","amount":"4","reward_minted":"400"}`,
		string(events[1].Payload))
}

func TestListCampaigns(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		f.create(t, 10, 60)
	}

	page, err := f.ledger.ListCampaigns(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(1), page[0].ID)
	assert.Equal(t, uint64(2), page[1].ID)

	page, err = f.ledger.ListCampaigns(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = f.ledger.ListCampaigns(ctx, -1, 2)
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
	_, err = f.ledger.ListCampaigns(ctx, 0, 0)
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestCampaignLocksAreReleased(t *testing.T) {
	f, _ := newBookFixture(t)
	ctx := context.Background()

	for id := uint64(1000); id < 11_000; id++ {
		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(1)})
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, 0, f.ledger.locks.size())

	id := f.create(t, 10, 60)
	f.contribute(t, alice, id, 10)
	f.clock.Advance(time.Minute)
	_, err := f.ledger.Finalize(ctx, bob, id)
	require.NoError(t, err)
	assert.Equal(t, 0, f.ledger.locks.size())
}

func TestContributeWithForeignIssuerIsUnauthorized(t *testing.T) {
	repo := memory.NewLedgerRepository()
	clock := newFakeClock()
	issuer := NewRewardIssuer(repo, controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})
	f := &fixture{
		ledger: NewCampaignLedger(repo, issuer, transfer.NewBook(), bob, WithClock(clock.Now)),
		repo:   repo,
		clock:  clock,
	}
	ctx := context.Background()
	id := f.create(t, 100, 3600)

	_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5)})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Equal(t, domain.Amount{}, f.campaign(t, id).Raised)
	assert.Equal(t, domain.Amount{}, f.custody(t))
	assert.Equal(t, domain.Amount{}, f.reward(t, alice))
	c, err := f.ledger.Contribution(ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount{}, c.Amount)
}

func newVerifiedFixture(t *testing.T) (*fixture, *mocks.MockDepositVerifier) {
	t.Helper()
	repo := memory.NewLedgerRepository()
	clock := newFakeClock()
	issuer := NewRewardIssuer(repo, controller, RewardUnit{Decimals: 18, Symbol: "CRWD"})
	verifier := mocks.NewMockDepositVerifier(t)
	ledger := NewCampaignLedger(repo, issuer, transfer.NewBook(), controller,
		WithClock(clock.Now), WithDepositVerifier(verifier))
	return &fixture{ledger: ledger, repo: repo, clock: clock}, verifier
}

func TestContributeVerifiesDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted once", func(t *testing.T) {
		f, verifier := newVerifiedFixture(t)
		id := f.create(t, 100, 3600)
		verifier.EXPECT().VerifyDeposit(mock.Anything, alice, amt(5), "0xabc").Return(nil).Twice()

		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5), DepositRef: " 0xabc "})
		require.NoError(t, err)

		_, err = f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5), DepositRef: "0xabc"})
		require.ErrorIs(t, err, domain.ErrDepositClaimed)
		assert.Equal(t, amt(5), f.campaign(t, id).Raised)
		assert.Equal(t, amt(5), f.custody(t))
	})

	t.Run("rejected deposit commits nothing", func(t *testing.T) {
		f, verifier := newVerifiedFixture(t)
		id := f.create(t, 100, 3600)
		verifier.EXPECT().VerifyDeposit(mock.Anything, alice, amt(5), "0xdead").
			Return(fmt.Errorf("value mismatch: %w", domain.ErrInvalidDeposit))

		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5), DepositRef: "0xdead"})
		require.ErrorIs(t, err, domain.ErrInvalidDeposit)
		assert.Equal(t, domain.Amount{}, f.campaign(t, id).Raised)
		assert.Equal(t, domain.Amount{}, f.custody(t))
		assert.Equal(t, domain.Amount{}, f.reward(t, alice))
	})

	t.Run("node failure is not a rejection", func(t *testing.T) {
		f, verifier := newVerifiedFixture(t)
		id := f.create(t, 100, 3600)
		down := errors.New("connection refused")
		verifier.EXPECT().VerifyDeposit(mock.Anything, alice, amt(5), "0xabc").Return(down)

		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5), DepositRef: "0xabc"})
		require.ErrorIs(t, err, down)
		assert.False(t, domain.IsRejection(err))
	})

	t.Run("rejected deposit is not claimed", func(t *testing.T) {
		f, verifier := newVerifiedFixture(t)
		id := f.create(t, 100, 60)
		verifier.EXPECT().VerifyDeposit(mock.Anything, alice, amt(5), "0xabc").Return(nil).Once()

		other := f.create(t, 100, 3600)
		f.clock.Advance(time.Minute)
		_, err := f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(5), DepositRef: "0xabc"})
		require.ErrorIs(t, err, domain.ErrCampaignEnded)

		_, err = f.ledger.Contribute(ctx, alice, other, port.ContributeReq{Amount: amt(5), DepositRef: "0xabc"})
		require.NoError(t, err)
	})

	t.Run("campaign checks come first", func(t *testing.T) {
		f, _ := newVerifiedFixture(t)
		_, err := f.ledger.Contribute(ctx, alice, 9, port.ContributeReq{Amount: amt(5), DepositRef: "0xabc"})
		require.ErrorIs(t, err, domain.ErrNotFound)

		id := f.create(t, 100, 60)
		_, err = f.ledger.Contribute(ctx, alice, id, port.ContributeReq{Amount: amt(0), DepositRef: "0xabc"})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

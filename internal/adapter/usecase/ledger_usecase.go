package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

const tracerName = "crowdfund-ledger/ledger"

// CampaignLedger provides business logic for campaigns, contributions and
// settlement. It orchestrates the repository, the reward issuer and the
// outbound transferer to implement port.LedgerUseCase.
//
// Every mutation runs under the campaign's mutex and inside one repository
// transaction. Value leaves custody only as the last step of that
// transaction, after all ledger writes, so a transfer failure rolls the
// whole operation back and a reentrant caller never sees stale state.
type CampaignLedger struct {
	repo     port.LedgerRepository
	issuer   *RewardIssuer
	transfer port.Transferer
	deposits port.DepositVerifier
	self     common.Address
	locks    *campaignLocks
	nowFn    func() time.Time
	tracer   trace.Tracer
	logger   *slog.Logger
}

// Option configures a CampaignLedger.
type Option func(*CampaignLedger)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *CampaignLedger) { l.nowFn = now }
}

// WithDepositVerifier sets how inbound value is checked. It overrides the
// transferer's own verifier when it has one.
func WithDepositVerifier(v port.DepositVerifier) Option {
	return func(l *CampaignLedger) { l.deposits = v }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *CampaignLedger) { l.logger = logger }
}

// NewCampaignLedger creates the ledger acting as self. Mint calls are made
// as self, so the issuer must be bound to the same identity. When transfer
// also implements port.DepositVerifier it checks inbound value too.
func NewCampaignLedger(repo port.LedgerRepository, issuer *RewardIssuer, transfer port.Transferer, self common.Address, opts ...Option) *CampaignLedger {
	deposits, _ := transfer.(port.DepositVerifier)
	l := &CampaignLedger{
		repo:     repo,
		issuer:   issuer,
		transfer: transfer,
		deposits: deposits,
		self:     self,
		locks:    newCampaignLocks(),
		nowFn:    time.Now,
		tracer:   otel.Tracer(tracerName),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ port.LedgerUseCase = (*CampaignLedger)(nil)

// CreateCampaign validates the parameters and stores a new open campaign.
func (l *CampaignLedger) CreateCampaign(ctx context.Context, caller common.Address, req port.CreateCampaignReq) (id uint64, err error) {
	ctx, span := l.tracer.Start(ctx, "ledger.CreateCampaign")
	defer func() { endSpan(span, err) }()

	if err = checkReentry(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return 0, fmt.Errorf("%w: empty title", domain.ErrInvalidParameters)
	}
	if req.Goal.IsZero() {
		return 0, fmt.Errorf("%w: goal must be positive", domain.ErrInvalidParameters)
	}
	if req.DurationSeconds == 0 || req.DurationSeconds > domain.MaxDurationSeconds {
		return 0, fmt.Errorf("%w: duration must be in (0, %d] seconds", domain.ErrInvalidParameters, domain.MaxDurationSeconds)
	}

	now := l.now()
	c := &domain.Campaign{
		Title:     req.Title,
		Creator:   caller,
		Goal:      req.Goal,
		Deadline:  now.Add(time.Duration(req.DurationSeconds) * time.Second),
		CreatedAt: now,
	}
	err = l.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		if err := tx.InsertCampaign(ctx, c); err != nil {
			return err
		}
		return l.emit(ctx, tx, domain.EventCampaignCreated, c.ID, domain.CampaignCreated{
			CampaignID: c.ID,
			Creator:    c.Creator,
			Title:      c.Title,
			Goal:       c.Goal.Dec(),
			Deadline:   c.Deadline.Unix(),
		})
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("campaign.id", int64(c.ID)))
	l.logger.Info("campaign created",
		slog.Uint64("campaign_id", c.ID),
		slog.String("creator", c.Creator.Hex()),
		slog.String("goal", c.Goal.Dec()),
		slog.Time("deadline", c.Deadline),
	)
	return c.ID, nil
}

// Contribute accepts the deposited amount into custody for an open campaign
// and mints amount*RewardMultiplier reward credits to caller. The deposit is
// verified and claimed in the same transaction, so one inbound payment backs
// at most one contribution.
func (l *CampaignLedger) Contribute(ctx context.Context, caller common.Address, campaignID uint64, req port.ContributeReq) (receipt *domain.Receipt, err error) {
	ctx, span := l.startCampaignSpan(ctx, "ledger.Contribute", campaignID)
	defer func() { endSpan(span, err) }()

	if err = checkReentry(ctx); err != nil {
		return nil, err
	}
	unlock := l.locks.lock(campaignID)
	defer unlock()

	amount := req.Amount
	now := l.now()
	err = l.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := lockOpenCampaign(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		if c.Ended(now) {
			return domain.ErrCampaignEnded
		}
		if amount.IsZero() {
			return fmt.Errorf("%w: contribution must be positive", domain.ErrInvalidAmount)
		}
		if err = l.acceptDeposit(ctx, tx, caller, campaignID, amount, req.DepositRef); err != nil {
			return err
		}

		raised, err := domain.AddAmounts(c.Raised, amount)
		if err != nil {
			return err
		}
		prev, err := tx.Contribution(ctx, campaignID, caller)
		if err != nil {
			return err
		}
		total, err := domain.AddAmounts(prev, amount)
		if err != nil {
			return err
		}
		custody, err := tx.CustodyBalance(ctx)
		if err != nil {
			return err
		}
		if custody, err = domain.AddAmounts(custody, amount); err != nil {
			return err
		}
		reward, err := domain.RewardFor(amount)
		if err != nil {
			return err
		}

		c.Raised = raised
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		if err = tx.SetContribution(ctx, campaignID, caller, total); err != nil {
			return err
		}
		if err = tx.SetCustodyBalance(ctx, custody); err != nil {
			return err
		}
		if _, err = l.issuer.Mint(ctx, tx, l.self, caller, reward); err != nil {
			return err
		}
		receipt = &domain.Receipt{
			CampaignID:   campaignID,
			Contributor:  caller,
			Amount:       amount,
			RewardMinted: reward,
			Total:        total,
			Raised:       raised,
		}
		return l.emit(ctx, tx, domain.EventContributed, campaignID, domain.Contributed{
			CampaignID:   campaignID,
			Contributor:  caller,
			Amount:       amount.Dec(),
			RewardMinted: reward.Dec(),
		})
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("contribution accepted",
		slog.Uint64("campaign_id", campaignID),
		slog.String("contributor", caller.Hex()),
		slog.String("amount", amount.Dec()),
		slog.String("reward", receipt.RewardMinted.Dec()),
	)
	return receipt, nil
}

// Finalize closes a campaign whose deadline has passed. When the goal was
// reached the whole raised amount is paid to the creator; otherwise the
// funds stay in custody for refunds.
func (l *CampaignLedger) Finalize(ctx context.Context, caller common.Address, campaignID uint64) (settlement *domain.Settlement, err error) {
	ctx, span := l.startCampaignSpan(ctx, "ledger.Finalize", campaignID)
	defer func() { endSpan(span, err) }()

	if err = checkReentry(ctx); err != nil {
		return nil, err
	}
	unlock := l.locks.lock(campaignID)
	defer unlock()

	now := l.now()
	err = l.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := lockOpenCampaign(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		if !c.Ended(now) {
			return domain.ErrNotEnded
		}

		c.Finalized = true
		reached := c.GoalReached()
		settlement = &domain.Settlement{CampaignID: campaignID, GoalReached: reached, TotalRaised: c.Raised}
		if reached {
			custody, err := tx.CustodyBalance(ctx)
			if err != nil {
				return err
			}
			if custody, err = domain.SubAmounts(custody, c.Raised); err != nil {
				return err
			}
			if err = tx.SetCustodyBalance(ctx, custody); err != nil {
				return err
			}
			creator := c.Creator
			settlement.PaidTo = &creator
		}
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		err = l.emit(ctx, tx, domain.EventFinalized, campaignID, domain.Finalized{
			CampaignID:  campaignID,
			GoalReached: reached,
			TotalRaised: c.Raised.Dec(),
		})
		if err != nil {
			return err
		}
		if !reached {
			return nil
		}
		return l.pay(ctx, campaignID, c.Creator, c.Raised)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("campaign finalized",
		slog.Uint64("campaign_id", campaignID),
		slog.String("caller", caller.Hex()),
		slog.Bool("goal_reached", settlement.GoalReached),
		slog.String("total_raised", settlement.TotalRaised.Dec()),
	)
	return settlement, nil
}

// WithdrawRefund pays caller back its whole contribution to a campaign that
// was finalized below its goal. The record is zeroed before the transfer.
func (l *CampaignLedger) WithdrawRefund(ctx context.Context, caller common.Address, campaignID uint64) (refund domain.Amount, err error) {
	ctx, span := l.startCampaignSpan(ctx, "ledger.WithdrawRefund", campaignID)
	defer func() { endSpan(span, err) }()

	if err = checkReentry(ctx); err != nil {
		return domain.Amount{}, err
	}
	unlock := l.locks.lock(campaignID)
	defer unlock()

	err = l.repo.Atomically(ctx, func(tx port.LedgerTx) error {
		c, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if !c.Refundable() {
			return domain.ErrNotRefundable
		}
		amount, err := tx.Contribution(ctx, campaignID, caller)
		if err != nil {
			return err
		}
		if amount.IsZero() {
			return domain.ErrNothingToRefund
		}

		custody, err := tx.CustodyBalance(ctx)
		if err != nil {
			return err
		}
		if custody, err = domain.SubAmounts(custody, amount); err != nil {
			return err
		}
		if err = tx.SetContribution(ctx, campaignID, caller, domain.Amount{}); err != nil {
			return err
		}
		if err = tx.SetCustodyBalance(ctx, custody); err != nil {
			return err
		}
		err = l.emit(ctx, tx, domain.EventRefundWithdrawn, campaignID, domain.RefundWithdrawn{
			CampaignID:  campaignID,
			Contributor: caller,
			Amount:      amount.Dec(),
		})
		if err != nil {
			return err
		}
		refund = amount
		return l.pay(ctx, campaignID, caller, amount)
	})
	if err != nil {
		return domain.Amount{}, err
	}

	l.logger.Info("refund withdrawn",
		slog.Uint64("campaign_id", campaignID),
		slog.String("contributor", caller.Hex()),
		slog.String("amount", refund.Dec()),
	)
	return refund, nil
}

// GetCampaign returns the committed campaign record.
func (l *CampaignLedger) GetCampaign(ctx context.Context, campaignID uint64) (*domain.Campaign, error) {
	c, err := l.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ListCampaigns returns a page of campaigns ordered by id.
func (l *CampaignLedger) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("%w: bad page offset=%d limit=%d", domain.ErrInvalidParameters, offset, limit)
	}
	return l.repo.ListCampaigns(ctx, offset, limit)
}

// NextCampaignID returns the id the next campaign will receive.
func (l *CampaignLedger) NextCampaignID(ctx context.Context) (uint64, error) {
	return l.repo.CampaignCount(ctx)
}

// Contribution returns who's recorded amount for the campaign.
func (l *CampaignLedger) Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Contribution, error) {
	amount, err := l.repo.Contribution(ctx, campaignID, who)
	if err != nil {
		return domain.Contribution{}, err
	}
	return domain.Contribution{CampaignID: campaignID, Contributor: who, Amount: amount}, nil
}

// RefundableAmount returns who's contribution if the campaign is finalized
// below its goal and zero in every other case, unknown campaigns included.
func (l *CampaignLedger) RefundableAmount(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error) {
	c, err := l.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.Amount{}, err
	}
	if c == nil || !c.Refundable() {
		return domain.Amount{}, nil
	}
	return l.repo.Contribution(ctx, campaignID, who)
}

// CustodyBalance returns the value currently held by the ledger.
func (l *CampaignLedger) CustodyBalance(ctx context.Context) (domain.Amount, error) {
	return l.repo.CustodyBalance(ctx)
}

// RewardBalance returns who's reward credit balance.
func (l *CampaignLedger) RewardBalance(ctx context.Context, who common.Address) (*port.RewardBalance, error) {
	balance, err := l.issuer.BalanceOf(ctx, who)
	if err != nil {
		return nil, err
	}
	unit := l.issuer.Unit()
	return &port.RewardBalance{
		Owner:     who,
		Balance:   balance,
		Formatted: l.issuer.Format(balance),
		Symbol:    unit.Symbol,
		Decimals:  unit.Decimals,
	}, nil
}

// acceptDeposit verifies the inbound payment behind a contribution and
// claims its reference inside tx.
func (l *CampaignLedger) acceptDeposit(ctx context.Context, tx port.LedgerTx, caller common.Address, campaignID uint64, amount domain.Amount, ref string) error {
	ref = strings.TrimSpace(ref)
	if l.deposits != nil {
		if err := l.deposits.VerifyDeposit(ctx, caller, amount, ref); err != nil {
			if domain.IsRejection(err) {
				return err
			}
			return fmt.Errorf("verify deposit: %w", err)
		}
	}
	if ref == "" {
		return nil
	}
	return tx.ClaimDeposit(ctx, ref, campaignID, caller, amount)
}

// pay transfers amount out of custody. It must be the last step of a
// transaction: the returned error rolls back every write made before it.
func (l *CampaignLedger) pay(ctx context.Context, campaignID uint64, to common.Address, amount domain.Amount) error {
	if err := l.transfer.Transfer(withTransferMark(ctx, campaignID), to, amount); err != nil {
		l.logger.Warn("transfer failed",
			slog.Uint64("campaign_id", campaignID),
			slog.String("to", to.Hex()),
			slog.String("amount", amount.Dec()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	return nil
}

// emit appends an event to the outbox of tx.
func (l *CampaignLedger) emit(ctx context.Context, tx port.LedgerTx, eventType string, campaignID uint64, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return tx.AppendEvent(ctx, domain.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		CampaignID: campaignID,
		Payload:    raw,
		CreatedAt:  l.now(),
	})
}

// now returns the ledger time truncated to whole seconds.
func (l *CampaignLedger) now() time.Time {
	return l.nowFn().UTC().Truncate(time.Second)
}

func (l *CampaignLedger) startCampaignSpan(ctx context.Context, name string, campaignID uint64) (context.Context, trace.Span) {
	return l.tracer.Start(ctx, name, trace.WithAttributes(attribute.Int64("campaign.id", int64(campaignID))))
}

// lockOpenCampaign locks the campaign and checks it exists and is not
// finalized, in that order.
func lockOpenCampaign(ctx context.Context, tx port.LedgerTx, campaignID uint64) (*domain.Campaign, error) {
	c, err := tx.LockCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Finalized {
		return nil, domain.ErrAlreadyFinalized
	}
	return c, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

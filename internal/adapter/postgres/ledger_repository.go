package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

const campaignCounter = "next_campaign_id"

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Amounts are NUMERIC(78,0) columns exchanged as decimal text.
type LedgerRepository struct {
	pool *pgxpool.Pool
	reader
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool, reader: reader{q: pool}}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// Atomically runs fn in a READ COMMITTED transaction. Rows touched by the
// ledger are taken with SELECT ... FOR UPDATE, so concurrent writers queue
// on the row instead of failing with serialization errors.
func (r *LedgerRepository) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(&ledgerTx{reader: reader{q: tx}}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ExpiredOpenCampaigns returns unfinalized campaigns past their deadline.
func (r *LedgerRepository) ExpiredOpenCampaigns(ctx context.Context, now time.Time, fromID uint64, limit int) ([]uint64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM campaigns WHERE NOT finalized AND deadline <= $1 AND id >= $2 ORDER BY id LIMIT $3`, now, int64(fromID), limit)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out, nil
}

// PendingEvents returns unpublished events in emission order.
func (r *LedgerRepository) PendingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id::text, event_type, campaign_id, payload, created_at
        FROM outbox_events
        WHERE published_at IS NULL
        ORDER BY seq
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e       domain.Event
			id      int64
			payload []byte
		)
		err := row.Scan(&e.ID, &e.Type, &id, &payload, &e.CreatedAt)
		e.CampaignID = uint64(id)
		e.Payload = payload
		return e, err
	})
}

// MarkEventsPublished stamps the given events as delivered.
func (r *LedgerRepository) MarkEventsPublished(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE outbox_events SET published_at = $1 WHERE id = ANY($2::uuid[]) AND published_at IS NULL`, at, ids)
	return err
}

// reader implements port.LedgerReader over a pool or a transaction.
type reader struct {
	q querier
}

const campaignColumns = `id, title, creator, goal::text, deadline, raised::text, finalized, created_at`

// GetCampaign returns a campaign by id.
func (r reader) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	return r.scanCampaign(r.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, int64(id)))
}

// ListCampaigns returns campaigns ordered by id.
func (r reader) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	rows, err := r.q.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := r.scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// CampaignCount returns the next campaign id.
func (r reader) CampaignCount(ctx context.Context) (uint64, error) {
	var next int64
	err := r.q.QueryRow(ctx, `SELECT value FROM ledger_counters WHERE name = $1`, campaignCounter).Scan(&next)
	return uint64(next), err
}

// Contribution returns the recorded amount of who.
func (r reader) Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error) {
	return r.scanAmount(r.q.QueryRow(ctx, `SELECT amount::text FROM contributions WHERE campaign_id = $1 AND contributor = $2`, int64(campaignID), who.Hex()))
}

// RewardBalance returns the reward balance of who.
func (r reader) RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error) {
	return r.scanAmount(r.q.QueryRow(ctx, `SELECT balance::text FROM reward_balances WHERE address = $1`, who.Hex()))
}

// CustodyBalance returns the custody balance.
func (r reader) CustodyBalance(ctx context.Context) (domain.Amount, error) {
	return r.scanAmount(r.q.QueryRow(ctx, `SELECT balance::text FROM custody WHERE id = 1`))
}

func (r reader) scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                     domain.Campaign
		id                    int64
		creator, goal, raised string
	)
	err := row.Scan(&id, &c.Title, &creator, &goal, &c.Deadline, &raised, &c.Finalized, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ID = uint64(id)
	c.Creator = common.HexToAddress(creator)
	if c.Goal, err = domain.ParseAmount(goal); err != nil {
		return nil, fmt.Errorf("campaign %d goal: %w", id, err)
	}
	if c.Raised, err = domain.ParseAmount(raised); err != nil {
		return nil, fmt.Errorf("campaign %d raised: %w", id, err)
	}
	c.Deadline = c.Deadline.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

// scanAmount reads a single decimal column; a missing row is zero.
func (r reader) scanAmount(row pgx.Row) (domain.Amount, error) {
	var raw string
	err := row.Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Amount{}, nil
	}
	if err != nil {
		return domain.Amount{}, err
	}
	return domain.ParseAmount(raw)
}

// ledgerTx implements port.LedgerTx on top of pgx.Tx.
type ledgerTx struct {
	reader
}

func (t *ledgerTx) LockCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	return t.scanCampaign(t.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, int64(id)))
}

// InsertCampaign takes the next id from the counter row. The counter is
// updated in the same transaction, so a rollback leaves no gap.
func (t *ledgerTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	var id int64
	err := t.q.QueryRow(ctx, `UPDATE ledger_counters SET value = value + 1 WHERE name = $1 RETURNING value - 1`, campaignCounter).Scan(&id)
	if err != nil {
		return fmt.Errorf("allocate campaign id: %w", err)
	}
	_, err = t.q.Exec(ctx, `INSERT INTO campaigns (id, title, creator, goal, deadline, raised, finalized, created_at)
VALUES ($1, $2, $3, $4::numeric, $5, $6::numeric, $7, $8)`,
		id, c.Title, c.Creator.Hex(), c.Goal.Dec(), c.Deadline, c.Raised.Dec(), c.Finalized, c.CreatedAt)
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

func (t *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := t.q.Exec(ctx, `UPDATE campaigns SET raised = $1::numeric, finalized = $2 WHERE id = $3`, c.Raised.Dec(), c.Finalized, int64(c.ID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *ledgerTx) SetContribution(ctx context.Context, campaignID uint64, who common.Address, amount domain.Amount) error {
	_, err := t.q.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount) VALUES ($1, $2, $3::numeric)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount = EXCLUDED.amount`, int64(campaignID), who.Hex(), amount.Dec())
	return err
}

// RewardBalance locks the balance row of who, creating it at zero first, so
// concurrent mints to one identity cannot lose an update.
func (t *ledgerTx) RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error) {
	_, err := t.q.Exec(ctx, `INSERT INTO reward_balances (address, balance) VALUES ($1, 0) ON CONFLICT (address) DO NOTHING`, who.Hex())
	if err != nil {
		return domain.Amount{}, err
	}
	return t.scanAmount(t.q.QueryRow(ctx, `SELECT balance::text FROM reward_balances WHERE address = $1 FOR UPDATE`, who.Hex()))
}

func (t *ledgerTx) SetRewardBalance(ctx context.Context, who common.Address, balance domain.Amount) error {
	_, err := t.q.Exec(ctx, `UPDATE reward_balances SET balance = $1::numeric WHERE address = $2`, balance.Dec(), who.Hex())
	return err
}

// CustodyBalance locks the single custody row.
func (t *ledgerTx) CustodyBalance(ctx context.Context) (domain.Amount, error) {
	return t.scanAmount(t.q.QueryRow(ctx, `SELECT balance::text FROM custody WHERE id = 1 FOR UPDATE`))
}

func (t *ledgerTx) SetCustodyBalance(ctx context.Context, balance domain.Amount) error {
	_, err := t.q.Exec(ctx, `UPDATE custody SET balance = $1::numeric WHERE id = 1`, balance.Dec())
	return err
}

// ClaimDeposit inserts the deposit row. A concurrent claim of the same ref
// waits on the unique index and then finds it taken.
func (t *ledgerTx) ClaimDeposit(ctx context.Context, ref string, campaignID uint64, who common.Address, amount domain.Amount) error {
	tag, err := t.q.Exec(ctx, `INSERT INTO deposits (ref, campaign_id, contributor, amount) VALUES ($1, $2, $3, $4::numeric)
ON CONFLICT (ref) DO NOTHING`, ref, int64(campaignID), who.Hex(), amount.Dec())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepositClaimed
	}
	return nil
}

func (t *ledgerTx) AppendEvent(ctx context.Context, e domain.Event) error {
	_, err := t.q.Exec(ctx, `INSERT INTO outbox_events (id, event_type, campaign_id, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Type, int64(e.CampaignID), []byte(e.Payload), e.CreatedAt)
	return err
}

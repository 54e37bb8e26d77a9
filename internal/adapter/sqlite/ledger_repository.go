// Package sqlite provides a SQLite-backed ledger repository for single-node
// deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	_ "modernc.org/sqlite"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

const campaignCounter = "next_campaign_id"

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LedgerRepository implements port.LedgerRepository on SQLite. Write
// transactions begin IMMEDIATE, so they hold the database write lock from
// the first statement and never interleave.
type LedgerRepository struct {
	sqlDB *sql.DB
	reader
}

// Open opens the database at path. Migrations are applied separately with
// db.Migrate.
func Open(path string) (*LedgerRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &LedgerRepository{sqlDB: sqlDB, reader: reader{q: sqlDB}}, nil
}

// Close closes the SQLite handle.
func (r *LedgerRepository) Close() error {
	if r == nil || r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// Atomically runs fn in one transaction, committing only when it succeeds.
func (r *LedgerRepository) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) (err error) {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(&ledgerTx{reader: reader{q: tx}}); err != nil {
		return err
	}
	return tx.Commit()
}

// ExpiredOpenCampaigns returns unfinalized campaigns past their deadline.
func (r *LedgerRepository) ExpiredOpenCampaigns(ctx context.Context, now time.Time, fromID uint64, limit int) ([]uint64, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT id FROM campaigns WHERE finalized = 0 AND deadline <= ? AND id >= ? ORDER BY id LIMIT ?`, toMillis(now), int64(fromID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, uint64(id))
	}
	return ids, rows.Err()
}

// PendingEvents returns unpublished events in emission order.
func (r *LedgerRepository) PendingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `
        SELECT id, event_type, campaign_id, payload, created_at
        FROM outbox_events
        WHERE published_at IS NULL
        ORDER BY seq
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e          domain.Event
			campaignID int64
			payload    []byte
			createdAt  int64
		)
		if err := rows.Scan(&e.ID, &e.Type, &campaignID, &payload, &createdAt); err != nil {
			return nil, err
		}
		e.CampaignID = uint64(campaignID)
		e.Payload = payload
		e.CreatedAt = fromMillis(createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// MarkEventsPublished stamps the given events as delivered.
func (r *LedgerRepository) MarkEventsPublished(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, toMillis(at))
	for _, id := range ids {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	_, err := r.sqlDB.ExecContext(ctx,
		`UPDATE outbox_events SET published_at = ? WHERE published_at IS NULL AND id IN (`+placeholders+`)`, args...)
	return err
}

// reader implements port.LedgerReader over a database or a transaction.
type reader struct {
	q querier
}

const campaignColumns = `id, title, creator, goal, deadline, raised, finalized, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// GetCampaign returns a campaign by id.
func (r reader) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	return scanCampaign(r.q.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, int64(id)))
}

// ListCampaigns returns campaigns ordered by id.
func (r reader) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

// CampaignCount returns the next campaign id.
func (r reader) CampaignCount(ctx context.Context) (uint64, error) {
	var next int64
	err := r.q.QueryRowContext(ctx, `SELECT value FROM ledger_counters WHERE name = ?`, campaignCounter).Scan(&next)
	return uint64(next), err
}

// Contribution returns the recorded amount of who.
func (r reader) Contribution(ctx context.Context, campaignID uint64, who common.Address) (domain.Amount, error) {
	return scanAmount(r.q.QueryRowContext(ctx, `SELECT amount FROM contributions WHERE campaign_id = ? AND contributor = ?`, int64(campaignID), who.Hex()))
}

// RewardBalance returns the reward balance of who.
func (r reader) RewardBalance(ctx context.Context, who common.Address) (domain.Amount, error) {
	return scanAmount(r.q.QueryRowContext(ctx, `SELECT balance FROM reward_balances WHERE address = ?`, who.Hex()))
}

// CustodyBalance returns the custody balance.
func (r reader) CustodyBalance(ctx context.Context) (domain.Amount, error) {
	return scanAmount(r.q.QueryRowContext(ctx, `SELECT balance FROM custody WHERE id = 1`))
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c                     domain.Campaign
		id                    int64
		creator, goal, raised string
		deadline, createdAt   int64
		finalized             int64
	)
	err := row.Scan(&id, &c.Title, &creator, &goal, &deadline, &raised, &finalized, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
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
	c.Deadline = fromMillis(deadline)
	c.CreatedAt = fromMillis(createdAt)
	c.Finalized = finalized != 0
	return &c, nil
}

// scanAmount reads a single decimal column; a missing row is zero.
func scanAmount(row rowScanner) (domain.Amount, error) {
	var raw string
	err := row.Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Amount{}, nil
	}
	if err != nil {
		return domain.Amount{}, err
	}
	return domain.ParseAmount(raw)
}

// ledgerTx implements port.LedgerTx on top of *sql.Tx.
type ledgerTx struct {
	reader
}

// LockCampaign reads the campaign. The IMMEDIATE transaction already holds
// the database write lock.
func (t *ledgerTx) LockCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	return t.GetCampaign(ctx, id)
}

func (t *ledgerTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	var id int64
	err := t.q.QueryRowContext(ctx, `UPDATE ledger_counters SET value = value + 1 WHERE name = ? RETURNING value - 1`, campaignCounter).Scan(&id)
	if err != nil {
		return fmt.Errorf("allocate campaign id: %w", err)
	}
	_, err = t.q.ExecContext(ctx, `INSERT INTO campaigns (id, title, creator, goal, deadline, raised, finalized, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.Title, c.Creator.Hex(), c.Goal.Dec(), toMillis(c.Deadline), c.Raised.Dec(), boolToInt(c.Finalized), toMillis(c.CreatedAt))
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

func (t *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	res, err := t.q.ExecContext(ctx, `UPDATE campaigns SET raised = ?, finalized = ? WHERE id = ?`, c.Raised.Dec(), boolToInt(c.Finalized), int64(c.ID))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *ledgerTx) SetContribution(ctx context.Context, campaignID uint64, who common.Address, amount domain.Amount) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO contributions (campaign_id, contributor, amount) VALUES (?, ?, ?)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount = excluded.amount`, int64(campaignID), who.Hex(), amount.Dec())
	return err
}

func (t *ledgerTx) SetRewardBalance(ctx context.Context, who common.Address, balance domain.Amount) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO reward_balances (address, balance) VALUES (?, ?)
ON CONFLICT (address) DO UPDATE SET balance = excluded.balance`, who.Hex(), balance.Dec())
	return err
}

func (t *ledgerTx) SetCustodyBalance(ctx context.Context, balance domain.Amount) error {
	_, err := t.q.ExecContext(ctx, `UPDATE custody SET balance = ? WHERE id = 1`, balance.Dec())
	return err
}

func (t *ledgerTx) ClaimDeposit(ctx context.Context, ref string, campaignID uint64, who common.Address, amount domain.Amount) error {
	res, err := t.q.ExecContext(ctx, `INSERT INTO deposits (ref, campaign_id, contributor, amount, claimed_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (ref) DO NOTHING`, ref, int64(campaignID), who.Hex(), amount.Dec(), toMillis(time.Now()))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrDepositClaimed
	}
	return nil
}

func (t *ledgerTx) AppendEvent(ctx context.Context, e domain.Event) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO outbox_events (id, event_type, campaign_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Type, int64(e.CampaignID), []byte(e.Payload), toMillis(e.CreatedAt))
	return err
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

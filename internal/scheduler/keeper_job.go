package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// KeeperJob finalizes campaigns whose deadline has passed. It is an
// ordinary ledger caller; all rules are enforced by the ledger itself.
type KeeperJob struct {
	ledger    port.LedgerUseCase
	scanner   port.CampaignScanner
	caller    common.Address
	interval  time.Duration
	batchSize int
	pool      *ants.Pool
	logger    *slog.Logger
	nowFn     func() time.Time

	// cursor is the first id of the next scan. Runs never overlap.
	cursor uint64
}

// NewKeeperJob creates the job with a pool of workers goroutines. Call
// Release when the job is no longer scheduled.
func NewKeeperJob(ledger port.LedgerUseCase, scanner port.CampaignScanner, caller common.Address,
	interval time.Duration, workers, batchSize int, logger *slog.Logger) (*KeeperJob, error) {
	pool, err := ants.NewPool(max(workers, 1))
	if err != nil {
		return nil, fmt.Errorf("create keeper pool: %w", err)
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &KeeperJob{
		ledger:    ledger,
		scanner:   scanner,
		caller:    caller,
		interval:  interval,
		batchSize: batchSize,
		pool:      pool,
		logger:    logger,
		nowFn:     time.Now,
	}, nil
}

func (j *KeeperJob) Name() string {
	return "settlement_keeper"
}

func (j *KeeperJob) Schedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

// Execute finalizes one batch of expired campaigns and returns once every
// submitted call has finished. Successive runs page through the expired set
// so campaigns that keep failing cannot hold back the ones after them.
func (j *KeeperJob) Execute(ctx context.Context) {
	ids, err := j.scanner.ExpiredOpenCampaigns(ctx, j.nowFn().UTC(), j.cursor, j.batchSize)
	if err != nil {
		j.logger.Error("list expired campaigns", slog.Any("error", err))
		return
	}
	if len(ids) < j.batchSize {
		j.cursor = 0
	} else {
		j.cursor = ids[len(ids)-1] + 1
	}
	if len(ids) == 0 {
		return
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		finalized int
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		err := j.pool.Submit(func() {
			defer wg.Done()
			if j.finalize(ctx, id) {
				mu.Lock()
				finalized++
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			j.logger.Error("submit finalize", slog.Uint64("campaign_id", id), slog.Any("error", err))
		}
	}
	wg.Wait()

	j.logger.Info("keeper run completed", slog.Int("expired", len(ids)), slog.Int("finalized", finalized))
}

func (j *KeeperJob) finalize(ctx context.Context, id uint64) bool {
	s, err := j.ledger.Finalize(ctx, j.caller, id)
	switch {
	case err == nil:
		j.logger.Info("campaign settled",
			slog.Uint64("campaign_id", id),
			slog.Bool("goal_reached", s.GoalReached),
		)
		return true
	case errors.Is(err, domain.ErrAlreadyFinalized), errors.Is(err, domain.ErrNotEnded):
		// someone else settled it first, or clocks disagree by a second
		return false
	case domain.IsRejection(err):
		j.logger.Warn("finalize rejected", slog.Uint64("campaign_id", id), slog.Any("error", err))
		return false
	default:
		j.logger.Error("finalize campaign", slog.Uint64("campaign_id", id), slog.Any("error", err))
		return false
	}
}

// Release stops the worker pool.
func (j *KeeperJob) Release() {
	j.pool.Release()
}

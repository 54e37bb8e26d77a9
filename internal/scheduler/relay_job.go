package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Relayer is satisfied by *events.Relay.
type Relayer interface {
	RunOnce(ctx context.Context) (int, error)
}

// RelayJob drains the outbox on every tick until it is empty or a publish
// fails.
type RelayJob struct {
	relay    Relayer
	interval time.Duration
	logger   *slog.Logger
}

func NewRelayJob(relay Relayer, interval time.Duration, logger *slog.Logger) *RelayJob {
	return &RelayJob{relay: relay, interval: interval, logger: logger}
}

func (j *RelayJob) Name() string {
	return "outbox_relay"
}

func (j *RelayJob) Schedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

func (j *RelayJob) Execute(ctx context.Context) {
	total := 0
	for ctx.Err() == nil {
		n, err := j.relay.RunOnce(ctx)
		total += n
		if err != nil {
			j.logger.Error("outbox relay failed", slog.Int("delivered", total), slog.Any("error", err))
			return
		}
		if n == 0 {
			break
		}
	}
	if total > 0 {
		j.logger.Debug("outbox relayed", slog.Int("delivered", total))
	}
}

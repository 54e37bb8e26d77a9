package events

import (
	"context"
	"log/slog"
	"time"

	"crowdfund-ledger/internal/core/port"
)

// Relay moves pending outbox events to a publisher. Delivery is
// at-least-once: an event is marked published only after the publisher
// accepted it, and a failed event blocks the ones behind it so order per
// ledger is kept.
type Relay struct {
	outbox    port.OutboxRepository
	publisher port.EventPublisher
	batchSize int
	logger    *slog.Logger
	nowFn     func() time.Time
}

func NewRelay(outbox port.OutboxRepository, publisher port.EventPublisher, batchSize int, logger *slog.Logger) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{
		outbox:    outbox,
		publisher: publisher,
		batchSize: batchSize,
		logger:    logger,
		nowFn:     time.Now,
	}
}

// RunOnce publishes one batch and returns how many events were delivered.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	pending, err := r.outbox.PendingEvents(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered := make([]string, 0, len(pending))
	var publishErr error
	for _, e := range pending {
		if publishErr = r.publisher.Publish(ctx, e); publishErr != nil {
			r.logger.Warn("publish event failed",
				slog.String("event_id", e.ID),
				slog.String("type", e.Type),
				slog.Any("error", publishErr),
			)
			break
		}
		delivered = append(delivered, e.ID)
	}

	if len(delivered) > 0 {
		if err := r.outbox.MarkEventsPublished(ctx, delivered, r.nowFn().UTC()); err != nil {
			return 0, err
		}
	}
	return len(delivered), publishErr
}

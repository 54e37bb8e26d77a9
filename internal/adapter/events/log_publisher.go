package events

import (
	"context"
	"log/slog"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// LogPublisher writes events to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

var _ port.EventPublisher = (*LogPublisher)(nil)

func (p *LogPublisher) Publish(ctx context.Context, e domain.Event) error {
	p.logger.InfoContext(ctx, "ledger event",
		slog.String("event_id", e.ID),
		slog.String("type", e.Type),
		slog.Uint64("campaign_id", e.CampaignID),
		slog.String("payload", string(e.Payload)),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

package relay

import (
	"context"
	"log/slog"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher that only logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs e at info level. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, e domain.Event) error {
	p.logger.InfoContext(ctx, "ledger event",
		slog.Int64("seq", e.Seq),
		slog.String("kind", string(e.Kind)),
		slog.Int64("campaign_id", e.CampaignID),
		slog.Any("data", e.Data),
	)
	return nil
}

package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jny0444/crowdfund/internal/core/port"
)

// Relay forwards committed ledger events from the outbox to a publisher.
// Delivery is at least once: an event is marked published only after the
// publisher accepted it.
type Relay struct {
	repo      port.LedgerRepository
	pub       port.EventPublisher
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// New creates a relay that moves up to batchSize outbox events to pub
// every interval.
func New(repo port.LedgerRepository, pub port.EventPublisher, interval time.Duration, batchSize int, logger *slog.Logger) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{repo: repo, pub: pub, interval: interval, batchSize: batchSize, logger: logger}
}

// Run flushes the outbox on every tick until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		for {
			n, err := r.Flush(ctx)
			if err != nil {
				r.logger.Error("relay flush failed", slog.Any("error", err))
				break
			}
			if n < r.batchSize {
				break
			}
		}
	}
}

// Flush publishes one batch of unpublished events in seq order and returns
// how many were delivered. It stops at the first publisher error so that
// ordering is kept; the remaining events are retried on the next call.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	events, err := r.repo.UnpublishedEvents(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("load unpublished events: %w", err)
	}

	seqs := make([]int64, 0, len(events))
	var pubErr error
	for _, e := range events {
		if pubErr = r.pub.Publish(ctx, e); pubErr != nil {
			pubErr = fmt.Errorf("publish event %d: %w", e.Seq, pubErr)
			break
		}
		seqs = append(seqs, e.Seq)
	}

	if len(seqs) > 0 {
		if err = r.repo.MarkPublished(ctx, seqs); err != nil {
			return 0, fmt.Errorf("mark published: %w", err)
		}
		r.logger.Debug("events relayed", slog.Int("count", len(seqs)), slog.Int64("last_seq", seqs[len(seqs)-1]))
	}
	return len(seqs), pubErr
}

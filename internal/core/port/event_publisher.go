package port

import (
	"context"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

// EventPublisher delivers ledger events to off-chain subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

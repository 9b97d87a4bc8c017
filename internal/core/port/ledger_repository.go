package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

// LedgerRepository defines the persistence layer for the ledger. It is an
// outbound port in hexagonal architecture. WithinTx must run fn as one
// all-or-nothing unit serialized against every other WithinTx call; when
// fn returns an error nothing it did is visible afterwards.
type LedgerRepository interface {
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error

	// ListCampaigns returns all campaigns in creation order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns domain.ErrCampaignNotFound for unknown ids.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	TotalCampaigns(ctx context.Context) (int64, error)
	// ListDonors returns donor records in first-contribution order.
	ListDonors(ctx context.Context, campaignID int64) ([]domain.Donor, error)
	// Balance returns zero for unknown accounts.
	Balance(ctx context.Context, addr domain.Address) (decimal.Decimal, error)
	// Events returns up to limit events with Seq > afterSeq, ordered by Seq.
	Events(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error)
	// UnpublishedEvents returns up to limit events not yet marked published.
	UnpublishedEvents(ctx context.Context, limit int) ([]domain.Event, error)
	MarkPublished(ctx context.Context, seqs []int64) error
}

// LedgerTx is the transactional view used by the ledger's mutating calls.
type LedgerTx interface {
	// InsertCampaign assigns the next sequential id to c, stores it and
	// increments the campaign counter.
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	// LockCampaign loads a campaign for update. Returns
	// domain.ErrCampaignNotFound for unknown ids.
	LockCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error

	// AddContribution adds amount to both the total and the refundable
	// part of the donor's record, creating it if needed.
	AddContribution(ctx context.Context, campaignID int64, donor domain.Address, amount decimal.Decimal) error
	// Donors returns the campaign's donor records in first-contribution order.
	Donors(ctx context.Context, campaignID int64) ([]domain.Donor, error)
	// Donor returns nil when the address never contributed.
	Donor(ctx context.Context, campaignID int64, donor domain.Address) (*domain.Donor, error)
	SetRefundable(ctx context.Context, campaignID int64, donor domain.Address, refundable decimal.Decimal) error

	// Debit takes amount from an account; domain.ErrInsufficientFunds when
	// the balance is too low.
	Debit(ctx context.Context, addr domain.Address, amount decimal.Decimal) error
	// Credit adds amount to an account, creating it if needed;
	// domain.ErrTransferFailed when the account rejects transfers.
	Credit(ctx context.Context, addr domain.Address, amount decimal.Decimal) error

	// AppendEvents stores events in the outbox and fills in Seq and CreatedAt.
	AppendEvents(ctx context.Context, events []domain.Event) error
}

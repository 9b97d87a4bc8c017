package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

// LedgerUseCase defines the operations exposed by the campaign ledger. It
// is the primary port into the application domain; the HTTP adapter and
// the CLI drive it. Every mutating method returns a receipt, including
// when the call reverted; the error is the receipt's Err.
type LedgerUseCase interface {
	// StartCampaign creates a campaign owned by caller and returns its id.
	StartCampaign(ctx context.Context, caller domain.Address, req StartCampaignReq) (int64, *domain.Receipt, error)

	// Contribute escrows amount from caller into the campaign. Value is the
	// amount actually attached to the call and must equal amount.
	Contribute(ctx context.Context, caller domain.Address, req ContributeReq) (*domain.Receipt, error)

	// EndCampaign settles a campaign whose deadline has passed: the creator
	// is paid when the goal is met, donors are refunded otherwise.
	EndCampaign(ctx context.Context, caller domain.Address, campaignID int64) (*domain.Receipt, error)

	// ClaimRefund pays caller back their stake in a campaign that missed
	// its goal.
	ClaimRefund(ctx context.Context, caller domain.Address, campaignID int64) (decimal.Decimal, *domain.Receipt, error)

	// Deposit credits an account with fresh value. Returns an error when
	// the faucet is disabled.
	Deposit(ctx context.Context, to domain.Address, amount decimal.Decimal) (*domain.Receipt, error)

	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	TotalCampaigns(ctx context.Context) (int64, error)
	ListDonors(ctx context.Context, campaignID int64) ([]domain.Donor, error)
	Balance(ctx context.Context, addr domain.Address) (decimal.Decimal, error)
	Events(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error)
}

// StartCampaignReq carries the campaign creation arguments.
type StartCampaignReq struct {
	Description string
	Goal        decimal.Decimal
	Deadline    time.Time
}

// ContributeReq carries the contribution arguments and the attached value.
type ContributeReq struct {
	CampaignID int64
	Amount     decimal.Decimal
	Value      decimal.Decimal
}

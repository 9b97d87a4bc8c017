package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

// Ledger provides the campaign settlement state machine. It is the only
// writer of ledger state and implements port.LedgerUseCase. Every
// mutating call runs inside a single repository transaction, so a call
// either commits all of its effects and events or none of them.
type Ledger struct {
	repo port.LedgerRepository
	now  func() time.Time

	refundMode     RefundMode
	deadlinePolicy DeadlinePolicy
	faucet         bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the wall clock used as the current execution time.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithRefundMode selects how donors of a failed campaign are repaid.
func WithRefundMode(m RefundMode) Option {
	return func(l *Ledger) { l.refundMode = m }
}

// WithDeadlinePolicy selects whether contributions are accepted after
// the deadline of a campaign that has not been ended yet.
func WithDeadlinePolicy(p DeadlinePolicy) Option {
	return func(l *Ledger) { l.deadlinePolicy = p }
}

// WithFaucet enables Deposit.
func WithFaucet(enabled bool) Option {
	return func(l *Ledger) { l.faucet = enabled }
}

// NewLedger creates a ledger over repo. By default refunds are pulled by
// donors and contributions are rejected once the deadline has passed.
func NewLedger(repo port.LedgerRepository, opts ...Option) *Ledger {
	l := &Ledger{
		repo:           repo,
		now:            time.Now,
		refundMode:     RefundPull,
		deadlinePolicy: DeadlineStrict,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// execute runs fn in a transaction and appends the events it returns to
// the outbox in the same transaction.
func (l *Ledger) execute(ctx context.Context, fn func(tx port.LedgerTx, now time.Time) ([]domain.Event, error)) (*domain.Receipt, error) {
	var events []domain.Event
	err := l.repo.WithinTx(ctx, func(tx port.LedgerTx) error {
		var err error
		events, err = fn(tx, l.now().UTC())
		if err != nil {
			return err
		}
		return tx.AppendEvents(ctx, events)
	})
	return domain.NewReceipt(events, err), err
}

// StartCampaign creates a campaign owned by caller. The goal must be a
// positive whole number of base units and the deadline strictly in the
// future.
func (l *Ledger) StartCampaign(ctx context.Context, caller domain.Address, req port.StartCampaignReq) (int64, *domain.Receipt, error) {
	var id int64
	receipt, err := l.execute(ctx, func(tx port.LedgerTx, now time.Time) ([]domain.Event, error) {
		if req.Goal.Sign() <= 0 || !req.Goal.IsInteger() {
			return nil, domain.ErrInvalidGoal
		}
		if !req.Deadline.After(now) {
			return nil, domain.ErrInvalidDeadline
		}
		c := &domain.Campaign{
			Creator:     caller,
			Description: req.Description,
			Goal:        req.Goal,
			Deadline:    req.Deadline.UTC(),
			Balance:     decimal.Zero,
			Raised:      decimal.Zero,
			Outcome:     domain.OutcomeNone,
			CreatedAt:   now,
		}
		if err := tx.InsertCampaign(ctx, c); err != nil {
			return nil, err
		}
		id = c.ID
		return []domain.Event{domain.CampaignStarted(c)}, nil
	})
	if err != nil {
		return 0, receipt, err
	}
	return id, receipt, nil
}

// Contribute moves amount from caller's account into the campaign's
// escrow and adds it to caller's donor record.
func (l *Ledger) Contribute(ctx context.Context, caller domain.Address, req port.ContributeReq) (*domain.Receipt, error) {
	return l.execute(ctx, func(tx port.LedgerTx, now time.Time) ([]domain.Event, error) {
		c, err := tx.LockCampaign(ctx, req.CampaignID)
		if err != nil {
			return nil, err
		}
		if c.Ended {
			return nil, fmt.Errorf("campaign %d: %w", c.ID, domain.ErrCampaignEnded)
		}
		if l.deadlinePolicy == DeadlineStrict && c.Expired(now) {
			return nil, fmt.Errorf("campaign %d: %w", c.ID, domain.ErrCampaignExpired)
		}
		if req.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidAmount)
		}
		if !req.Amount.IsInteger() || !req.Value.IsInteger() {
			return nil, fmt.Errorf("%w: fractional base units", domain.ErrInvalidAmount)
		}
		if !req.Value.Equal(req.Amount) {
			return nil, fmt.Errorf("%w: sent %s, declared %s", domain.ErrValueMismatch, req.Value, req.Amount)
		}
		if err = tx.Debit(ctx, caller, req.Amount); err != nil {
			return nil, err
		}
		c.Balance = c.Balance.Add(req.Amount)
		if err = tx.AddContribution(ctx, c.ID, caller, req.Amount); err != nil {
			return nil, err
		}
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return nil, err
		}
		return []domain.Event{domain.ContributionReceived(c.ID, caller, req.Amount, c.Balance)}, nil
	})
}

// EndCampaign settles a campaign once its deadline has passed. Campaign
// and donor records are finalized before any account is credited. When
// the goal is met the creator receives the whole balance. Otherwise donors
// are refunded: immediately in push mode, or later through ClaimRefund in
// pull mode. A rejected credit reverts the whole call.
func (l *Ledger) EndCampaign(ctx context.Context, _ domain.Address, campaignID int64) (*domain.Receipt, error) {
	return l.execute(ctx, func(tx port.LedgerTx, now time.Time) ([]domain.Event, error) {
		c, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		if c.Ended {
			return nil, fmt.Errorf("campaign %d: %w", c.ID, domain.ErrAlreadyEnded)
		}
		if !c.Expired(now) {
			return nil, fmt.Errorf("campaign %d: %w", c.ID, domain.ErrCampaignNotExpired)
		}

		raised := c.Balance
		goalMet := raised.GreaterThanOrEqual(c.Goal)
		c.Ended = true
		c.Raised = raised
		c.Balance = decimal.Zero
		c.Outcome = domain.OutcomeRefunded
		if goalMet {
			c.Outcome = domain.OutcomePaidOut
		}
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return nil, err
		}

		donors, err := tx.Donors(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		events := []domain.Event{domain.CampaignEnded(c.ID, c.Outcome, raised)}

		switch {
		case goalMet:
			if err = clearRefundable(ctx, tx, donors); err != nil {
				return nil, err
			}
			if err = tx.Credit(ctx, c.Creator, raised); err != nil {
				return nil, fmt.Errorf("payout to %s: %w", c.Creator, err)
			}
		case l.refundMode == RefundPush:
			if err = clearRefundable(ctx, tx, donors); err != nil {
				return nil, err
			}
			for _, d := range donors {
				if d.Refundable.Sign() <= 0 {
					continue
				}
				if err = tx.Credit(ctx, d.Address, d.Refundable); err != nil {
					return nil, fmt.Errorf("refund to %s: %w", d.Address, err)
				}
				events = append(events, domain.RefundClaimed(c.ID, d.Address, d.Refundable))
			}
		}
		return events, nil
	})
}

func clearRefundable(ctx context.Context, tx port.LedgerTx, donors []domain.Donor) error {
	for _, d := range donors {
		if d.Refundable.IsZero() {
			continue
		}
		if err := tx.SetRefundable(ctx, d.CampaignID, d.Address, decimal.Zero); err != nil {
			return err
		}
	}
	return nil
}

// ClaimRefund pays caller back their refundable stake in a campaign that
// ended without meeting its goal. Only caller's own record is touched.
func (l *Ledger) ClaimRefund(ctx context.Context, caller domain.Address, campaignID int64) (decimal.Decimal, *domain.Receipt, error) {
	amount := decimal.Zero
	receipt, err := l.execute(ctx, func(tx port.LedgerTx, _ time.Time) ([]domain.Event, error) {
		c, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		if !c.Ended {
			return nil, fmt.Errorf("campaign %d: %w", c.ID, domain.ErrCampaignNotEnded)
		}
		if c.Outcome != domain.OutcomeRefunded {
			return nil, fmt.Errorf("campaign %d was paid out: %w", c.ID, domain.ErrNothingToRefund)
		}
		d, err := tx.Donor(ctx, c.ID, caller)
		if err != nil {
			return nil, err
		}
		if d == nil || d.Refundable.Sign() <= 0 {
			return nil, fmt.Errorf("campaign %d, donor %s: %w", c.ID, caller, domain.ErrNothingToRefund)
		}
		amount = d.Refundable
		if err = tx.SetRefundable(ctx, c.ID, caller, decimal.Zero); err != nil {
			return nil, err
		}
		if err = tx.Credit(ctx, caller, amount); err != nil {
			return nil, fmt.Errorf("refund to %s: %w", caller, err)
		}
		return []domain.Event{domain.RefundClaimed(c.ID, caller, amount)}, nil
	})
	if err != nil {
		return decimal.Zero, receipt, err
	}
	return amount, receipt, nil
}

// Deposit credits fresh value to an account, like the pre-funded
// accounts of a development chain.
func (l *Ledger) Deposit(ctx context.Context, to domain.Address, amount decimal.Decimal) (*domain.Receipt, error) {
	return l.execute(ctx, func(tx port.LedgerTx, _ time.Time) ([]domain.Event, error) {
		if !l.faucet {
			return nil, domain.ErrFaucetDisabled
		}
		if amount.Sign() <= 0 {
			return nil, fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidAmount)
		}
		if !amount.IsInteger() {
			return nil, fmt.Errorf("%w: fractional base units", domain.ErrInvalidAmount)
		}
		return nil, tx.Credit(ctx, to, amount)
	})
}

// ListCampaigns returns campaigns in creation order, narrowed by filter.
func (l *Ledger) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	all, err := l.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Campaign, 0, len(all))
	for i := range all {
		if !filter.Status.Matches(&all[i]) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(all[i].Description), query) {
			continue
		}
		out = append(out, all[i])
	}
	return out, nil
}

// GetCampaign returns the campaign with the given id or
// domain.ErrCampaignNotFound.
func (l *Ledger) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return l.repo.GetCampaign(ctx, id)
}

// TotalCampaigns returns how many campaigns have ever been started.
func (l *Ledger) TotalCampaigns(ctx context.Context) (int64, error) {
	return l.repo.TotalCampaigns(ctx)
}

// ListDonors returns one entry per donor in first-contribution order.
// Amount is the cumulative stake and stays as history once the campaign
// settles; Refundable is the live record and is zero for cleared donors.
func (l *Ledger) ListDonors(ctx context.Context, campaignID int64) ([]domain.Donor, error) {
	if _, err := l.repo.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return l.repo.ListDonors(ctx, campaignID)
}

// Balance returns the spendable balance of addr. Unknown accounts hold zero.
func (l *Ledger) Balance(ctx context.Context, addr domain.Address) (decimal.Decimal, error) {
	return l.repo.Balance(ctx, addr)
}

// Events returns outbox events after the given sequence number.
func (l *Ledger) Events(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultEventsLimit
	}
	if limit > maxEventsLimit {
		limit = maxEventsLimit
	}
	return l.repo.Events(ctx, afterSeq, limit)
}

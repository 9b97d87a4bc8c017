package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository in process memory.
// Transactions are serialized by a mutex and run against a copy of the
// state that replaces the live one only when the transaction succeeds.
type LedgerRepository struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	campaigns []domain.Campaign
	donors    map[int64][]domain.Donor
	accounts  map[domain.Address]domain.Account
	events    []domain.Event
}

// NewLedgerRepository returns an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{state: &state{
		donors:   make(map[int64][]domain.Donor),
		accounts: make(map[domain.Address]domain.Account),
	}}
}

func (s *state) clone() *state {
	c := &state{
		campaigns: append([]domain.Campaign(nil), s.campaigns...),
		donors:    make(map[int64][]domain.Donor, len(s.donors)),
		accounts:  make(map[domain.Address]domain.Account, len(s.accounts)),
		events:    append([]domain.Event(nil), s.events...),
	}
	for id, ds := range s.donors {
		c.donors[id] = append([]domain.Donor(nil), ds...)
	}
	for addr, a := range s.accounts {
		c.accounts[addr] = a
	}
	return c
}

// WithinTx runs fn against a private copy of the state and commits it
// when fn returns nil.
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	work := r.state.clone()
	if err := fn(&ledgerTx{st: work}); err != nil {
		return err
	}
	r.state = work
	return nil
}

// SetRejectsTransfers marks an account as refusing incoming value.
func (r *LedgerRepository) SetRejectsTransfers(addr domain.Address, rejects bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.state.account(addr)
	a.RejectsTransfers = rejects
	r.state.accounts[addr] = a
}

// ListCampaigns returns copies of all campaigns in id order.
func (r *LedgerRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Campaign(nil), r.state.campaigns...), nil
}

// GetCampaign returns a copy of the campaign or domain.ErrCampaignNotFound.
func (r *LedgerRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.campaign(id)
}

// TotalCampaigns returns how many campaigns have been inserted.
func (r *LedgerRepository) TotalCampaigns(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.state.campaigns)), nil
}

// ListDonors returns copies of the donor records of a campaign.
func (r *LedgerRepository) ListDonors(_ context.Context, campaignID int64) ([]domain.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Donor{}, r.state.donors[campaignID]...), nil
}

// Balance returns the balance of addr, zero for unknown accounts.
func (r *LedgerRepository) Balance(_ context.Context, addr domain.Address) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.account(addr).Balance, nil
}

// Events returns up to limit events with seq greater than afterSeq.
func (r *LedgerRepository) Events(_ context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, 0)
	for _, e := range r.state.events {
		if e.Seq <= afterSeq {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// UnpublishedEvents returns the oldest undelivered events.
func (r *LedgerRepository) UnpublishedEvents(_ context.Context, limit int) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, 0)
	for _, e := range r.state.events {
		if e.PublishedAt != nil {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// MarkPublished stamps the given events as delivered.
func (r *LedgerRepository) MarkPublished(_ context.Context, seqs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for _, seq := range seqs {
		// seq is 1-based and events are never removed
		if seq < 1 || seq > int64(len(r.state.events)) {
			continue
		}
		r.state.events[seq-1].PublishedAt = &now
	}
	return nil
}

func (s *state) campaign(id int64) (*domain.Campaign, error) {
	if id < 0 || id >= int64(len(s.campaigns)) {
		return nil, domain.ErrCampaignNotFound
	}
	c := s.campaigns[id]
	return &c, nil
}

func (s *state) account(addr domain.Address) domain.Account {
	if a, ok := s.accounts[addr]; ok {
		return a
	}
	return domain.Account{Address: addr, Balance: decimal.Zero}
}

// ledgerTx implements port.LedgerTx over a working copy of the state.
type ledgerTx struct {
	st *state
}

func (t *ledgerTx) InsertCampaign(_ context.Context, c *domain.Campaign) error {
	c.ID = int64(len(t.st.campaigns))
	t.st.campaigns = append(t.st.campaigns, *c)
	return nil
}

func (t *ledgerTx) LockCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	return t.st.campaign(id)
}

func (t *ledgerTx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	if _, err := t.st.campaign(c.ID); err != nil {
		return err
	}
	t.st.campaigns[c.ID] = *c
	return nil
}

func (t *ledgerTx) AddContribution(_ context.Context, campaignID int64, donor domain.Address, amount decimal.Decimal) error {
	ds := t.st.donors[campaignID]
	for i := range ds {
		if ds[i].Address == donor {
			ds[i].Amount = ds[i].Amount.Add(amount)
			ds[i].Refundable = ds[i].Refundable.Add(amount)
			return nil
		}
	}
	t.st.donors[campaignID] = append(ds, domain.Donor{
		CampaignID: campaignID,
		Address:    donor,
		Amount:     amount,
		Refundable: amount,
		FirstAt:    time.Now().UTC(),
	})
	return nil
}

func (t *ledgerTx) Donors(_ context.Context, campaignID int64) ([]domain.Donor, error) {
	return append([]domain.Donor(nil), t.st.donors[campaignID]...), nil
}

func (t *ledgerTx) Donor(_ context.Context, campaignID int64, donor domain.Address) (*domain.Donor, error) {
	for _, d := range t.st.donors[campaignID] {
		if d.Address == donor {
			return &d, nil
		}
	}
	return nil, nil
}

func (t *ledgerTx) SetRefundable(_ context.Context, campaignID int64, donor domain.Address, refundable decimal.Decimal) error {
	ds := t.st.donors[campaignID]
	for i := range ds {
		if ds[i].Address == donor {
			ds[i].Refundable = refundable
			return nil
		}
	}
	return nil
}

func (t *ledgerTx) Debit(_ context.Context, addr domain.Address, amount decimal.Decimal) error {
	a := t.st.account(addr)
	if a.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	t.st.accounts[addr] = a
	return nil
}

func (t *ledgerTx) Credit(_ context.Context, addr domain.Address, amount decimal.Decimal) error {
	a := t.st.account(addr)
	if a.RejectsTransfers {
		return domain.ErrTransferFailed
	}
	a.Balance = a.Balance.Add(amount)
	t.st.accounts[addr] = a
	return nil
}

func (t *ledgerTx) AppendEvents(_ context.Context, events []domain.Event) error {
	now := time.Now().UTC()
	for i := range events {
		events[i].Seq = int64(len(t.st.events)) + 1
		events[i].CreatedAt = now
		t.st.events = append(t.st.events, events[i])
	}
	return nil
}

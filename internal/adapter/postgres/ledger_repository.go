package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Amounts are NUMERIC columns exchanged as text so no
// precision is lost.
type LedgerRepository struct {
	pool       *pgxpool.Pool
	maxRetries int
}

// NewLedgerRepository returns a new repository instance. maxRetries bounds
// how often a transaction is replayed after a serialization failure.
func NewLedgerRepository(pool *pgxpool.Pool, maxRetries int) *LedgerRepository {
	return &LedgerRepository{pool: pool, maxRetries: maxRetries}
}

// WithinTx runs fn in a SERIALIZABLE transaction. Serialization failures
// and deadlocks are retried; fn must therefore be safe to replay.
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		err = r.runTx(ctx, fn)
		if !retryable(err) {
			return err
		}
	}
	return err
}

func (r *LedgerRepository) runTx(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	// no-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(&ledgerTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

const campaignColumns = `id, creator, description, goal::text, deadline, balance::text, raised::text, ended, outcome, created_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                     domain.Campaign
		goal, balance, raised string
		creator, outcome      string
	)
	err := row.Scan(&c.ID, &creator, &c.Description, &goal, &c.Deadline, &balance, &raised, &c.Ended, &outcome, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Creator = domain.Address(creator)
	c.Outcome = domain.Outcome(outcome)
	if c.Goal, err = decimal.NewFromString(goal); err != nil {
		return nil, err
	}
	if c.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, err
	}
	if c.Raised, err = decimal.NewFromString(raised); err != nil {
		return nil, err
	}
	return &c, nil
}

const donorColumns = `campaign_id, address, amount::text, refundable::text, first_at`

func scanDonor(row pgx.Row) (domain.Donor, error) {
	var (
		d                  domain.Donor
		address            string
		amount, refundable string
	)
	if err := row.Scan(&d.CampaignID, &address, &amount, &refundable, &d.FirstAt); err != nil {
		return d, err
	}
	d.Address = domain.Address(address)
	var err error
	if d.Amount, err = decimal.NewFromString(amount); err != nil {
		return d, err
	}
	if d.Refundable, err = decimal.NewFromString(refundable); err != nil {
		return d, err
	}
	return d, nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e       domain.Event
		kind    string
		payload []byte
	)
	if err := row.Scan(&e.Seq, &kind, &e.CampaignID, &payload, &e.CreatedAt, &e.PublishedAt); err != nil {
		return e, err
	}
	e.Kind = domain.EventKind(kind)
	if err := json.Unmarshal(payload, &e.Data); err != nil {
		return e, fmt.Errorf("event %d payload: %w", e.Seq, err)
	}
	return e, nil
}

// ListCampaigns returns all campaigns in creation order.
func (r *LedgerRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// GetCampaign returns a campaign by id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

// TotalCampaigns returns the campaign counter kept in ledger_state.
func (r *LedgerRepository) TotalCampaigns(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT total_campaigns FROM ledger_state WHERE id = 1`).Scan(&total)
	return total, err
}

// ListDonors returns the donors of a campaign in first-contribution order.
func (r *LedgerRepository) ListDonors(ctx context.Context, campaignID int64) ([]domain.Donor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+donorColumns+` FROM donors WHERE campaign_id = $1 ORDER BY ord`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donor, error) {
		return scanDonor(row)
	})
}

// Balance returns the account balance, zero for unknown accounts.
func (r *LedgerRepository) Balance(ctx context.Context, addr domain.Address) (decimal.Decimal, error) {
	var balance string
	err := r.pool.QueryRow(ctx, `SELECT balance::text FROM accounts WHERE address = $1`, addr.String()).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(balance)
}

const eventColumns = `seq, kind, campaign_id, payload, created_at, published_at`

// Events returns up to limit outbox events with seq greater than afterSeq.
func (r *LedgerRepository) Events(ctx context.Context, afterSeq int64, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+eventColumns+` FROM ledger_events WHERE seq > $1 ORDER BY seq LIMIT $2`, afterSeq, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
}

// UnpublishedEvents returns the oldest events the relay has not delivered.
func (r *LedgerRepository) UnpublishedEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+eventColumns+` FROM ledger_events WHERE published_at IS NULL ORDER BY seq LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
}

// MarkPublished stamps the given events as delivered.
func (r *LedgerRepository) MarkPublished(ctx context.Context, seqs []int64) error {
	if len(seqs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE ledger_events SET published_at = now() WHERE seq = ANY($1) AND published_at IS NULL`, seqs)
	return err
}

// SetRejectsTransfers marks an account as refusing incoming value.
func (r *LedgerRepository) SetRejectsTransfers(ctx context.Context, addr domain.Address, rejects bool) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO accounts (address, rejects_transfers) VALUES ($1, $2)
ON CONFLICT (address) DO UPDATE SET rejects_transfers = EXCLUDED.rejects_transfers`, addr.String(), rejects)
	return err
}

// ledgerTx implements port.LedgerTx on top of a pgx transaction.
type ledgerTx struct {
	tx pgx.Tx
}

// InsertCampaign takes the next id from the campaign counter.
func (t *ledgerTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	err := t.tx.QueryRow(ctx, `UPDATE ledger_state SET total_campaigns = total_campaigns + 1 WHERE id = 1 RETURNING total_campaigns - 1`).Scan(&c.ID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO campaigns
    (id, creator, description, goal, deadline, balance, raised, ended, outcome, created_at)
VALUES ($1,$2,$3,$4::numeric,$5,$6::numeric,$7::numeric,$8,$9,$10)`,
		c.ID, c.Creator.String(), c.Description, c.Goal.String(), c.Deadline, c.Balance.String(), c.Raised.String(), c.Ended, string(c.Outcome), c.CreatedAt)
	return err
}

// LockCampaign loads a campaign with a row lock held until the end of
// the transaction.
func (t *ledgerTx) LockCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(t.tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
}

// UpdateCampaign writes the mutable settlement fields. Identity columns
// are never updated.
func (t *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns SET balance = $2::numeric, raised = $3::numeric, ended = $4, outcome = $5 WHERE id = $1`,
		c.ID, c.Balance.String(), c.Raised.String(), c.Ended, string(c.Outcome))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (t *ledgerTx) AddContribution(ctx context.Context, campaignID int64, donor domain.Address, amount decimal.Decimal) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO donors (campaign_id, address, amount, refundable)
VALUES ($1, $2, $3::numeric, $3::numeric)
ON CONFLICT (campaign_id, address) DO UPDATE
SET amount = donors.amount + EXCLUDED.amount, refundable = donors.refundable + EXCLUDED.refundable`,
		campaignID, donor.String(), amount.String())
	return err
}

func (t *ledgerTx) Donors(ctx context.Context, campaignID int64) ([]domain.Donor, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+donorColumns+` FROM donors WHERE campaign_id = $1 ORDER BY ord FOR UPDATE`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donor, error) {
		return scanDonor(row)
	})
}

func (t *ledgerTx) Donor(ctx context.Context, campaignID int64, donor domain.Address) (*domain.Donor, error) {
	d, err := scanDonor(t.tx.QueryRow(ctx, `SELECT `+donorColumns+` FROM donors WHERE campaign_id = $1 AND address = $2 FOR UPDATE`, campaignID, donor.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (t *ledgerTx) SetRefundable(ctx context.Context, campaignID int64, donor domain.Address, refundable decimal.Decimal) error {
	_, err := t.tx.Exec(ctx, `UPDATE donors SET refundable = $3::numeric WHERE campaign_id = $1 AND address = $2`,
		campaignID, donor.String(), refundable.String())
	return err
}

// Debit only succeeds when the account holds at least amount.
func (t *ledgerTx) Debit(ctx context.Context, addr domain.Address, amount decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, `UPDATE accounts SET balance = balance - $2::numeric WHERE address = $1 AND balance >= $2::numeric`,
		addr.String(), amount.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", addr, domain.ErrInsufficientFunds)
	}
	return nil
}

// Credit upserts the account; the conflict branch is skipped for accounts
// that reject transfers, which leaves no affected row.
func (t *ledgerTx) Credit(ctx context.Context, addr domain.Address, amount decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, `INSERT INTO accounts (address, balance) VALUES ($1, $2::numeric)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
WHERE NOT accounts.rejects_transfers`, addr.String(), amount.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransferFailed
	}
	return nil
}

// AppendEvents reserves seqs from the ledger_state counter. The counter
// row stays locked until commit, so seqs become visible in commit order
// and readers paging with a seq cursor never skip an event.
func (t *ledgerTx) AppendEvents(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	var last int64
	err := t.tx.QueryRow(ctx, `UPDATE ledger_state SET last_event_seq = last_event_seq + $1 WHERE id = 1 RETURNING last_event_seq`,
		len(events)).Scan(&last)
	if err != nil {
		return err
	}
	next := last - int64(len(events)) + 1
	for i := range events {
		payload, err := json.Marshal(events[i].Data)
		if err != nil {
			return err
		}
		var createdAt time.Time
		err = t.tx.QueryRow(ctx, `INSERT INTO ledger_events (seq, kind, campaign_id, payload) VALUES ($1, $2, $3, $4::jsonb) RETURNING created_at`,
			next+int64(i), string(events[i].Kind), events[i].CampaignID, string(payload)).Scan(&createdAt)
		if err != nil {
			return err
		}
		events[i].Seq = next + int64(i)
		events[i].CreatedAt = createdAt.UTC()
	}
	return nil
}

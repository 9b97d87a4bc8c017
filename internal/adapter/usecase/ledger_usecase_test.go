package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jny0444/crowdfund/internal/adapter/memory"
	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

var (
	creator = domain.Address("0x00000000000000000000000000000000000000c0")
	donor1  = domain.Address("0x00000000000000000000000000000000000000d1")
	donor2  = domain.Address("0x00000000000000000000000000000000000000d2")

	day = 24 * time.Hour
)

// ether returns n ether in base units; n may be fractional.
func ether(n float64) decimal.Decimal {
	return decimal.NewFromFloat(n).Shift(18)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	repo   *memory.LedgerRepository
	ledger *Ledger
	clock  *clock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		repo:  memory.NewLedgerRepository(),
		clock: &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{WithClock(f.clock.Now), WithFaucet(true)}, opts...)
	f.ledger = NewLedger(f.repo, opts...)
	for _, addr := range []domain.Address{creator, donor1, donor2} {
		_, err := f.ledger.Deposit(context.Background(), addr, ether(10))
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) start(t *testing.T, goal decimal.Decimal) int64 {
	t.Helper()
	id, _, err := f.ledger.StartCampaign(context.Background(), creator, port.StartCampaignReq{
		Description: "Test Campaign",
		Goal:        goal,
		Deadline:    f.clock.Now().Add(day),
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) contribute(t *testing.T, id int64, from domain.Address, amount decimal.Decimal) {
	t.Helper()
	_, err := f.ledger.Contribute(context.Background(), from, port.ContributeReq{CampaignID: id, Amount: amount, Value: amount})
	require.NoError(t, err)
}

func (f *fixture) balance(t *testing.T, addr domain.Address) decimal.Decimal {
	t.Helper()
	b, err := f.ledger.Balance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func (f *fixture) campaign(t *testing.T, id int64) *domain.Campaign {
	t.Helper()
	c, err := f.ledger.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	return c
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func TestStartCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, receipt, err := f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{
		Description: "Test Campaign",
		Goal:        ether(1),
		Deadline:    f.clock.Now().Add(day),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
	assert.Equal(t, domain.ReceiptSuccess, receipt.Status)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventCampaignStarted, receipt.Events[0].Kind)
	assert.Equal(t, creator, receipt.Events[0].Data.Creator)

	second := f.start(t, ether(2))
	assert.Equal(t, int64(1), second)

	total, err := f.ledger.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	c := f.campaign(t, id)
	assert.Equal(t, creator, c.Creator)
	assert.False(t, c.Ended)
	assert.True(t, c.Balance.IsZero())
	assert.Equal(t, domain.OutcomeNone, c.Outcome)
}

func TestStartCampaignRejectsPastOrPresentDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for name, deadline := range map[string]time.Time{
		"past":    f.clock.Now().Add(-day),
		"present": f.clock.Now(),
	} {
		t.Run(name, func(t *testing.T) {
			_, receipt, err := f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{
				Description: "Test Campaign",
				Goal:        ether(1),
				Deadline:    deadline,
			})
			require.ErrorIs(t, err, domain.ErrInvalidDeadline)
			assert.Equal(t, domain.ReceiptReverted, receipt.Status)
			assert.Empty(t, receipt.Events)
		})
	}

	total, err := f.ledger.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
	events, err := f.ledger.Events(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStartCampaignRejectsNonPositiveGoal(t *testing.T) {
	f := newFixture(t)
	for _, goal := range []decimal.Decimal{decimal.Zero, ether(-1)} {
		_, _, err := f.ledger.StartCampaign(context.Background(), creator, port.StartCampaignReq{
			Goal:     goal,
			Deadline: f.clock.Now().Add(day),
		})
		require.ErrorIs(t, err, domain.ErrInvalidGoal)
	}
}

func TestContribute(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))

	receipt, err := f.ledger.Contribute(context.Background(), donor1, port.ContributeReq{
		CampaignID: id, Amount: ether(0.5), Value: ether(0.5),
	})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	e := receipt.Events[0]
	assert.Equal(t, domain.EventContributionReceived, e.Kind)
	assert.Equal(t, donor1, e.Data.Donor)
	assertDecimal(t, ether(0.5), *e.Data.NewBalance)

	assertDecimal(t, ether(0.5), f.campaign(t, id).Balance)
	assertDecimal(t, ether(9.5), f.balance(t, donor1))
}

func TestContributeValidation(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))
	ctx := context.Background()

	cases := []struct {
		name string
		req  port.ContributeReq
		want error
	}{
		{"unknown campaign", port.ContributeReq{CampaignID: 42, Amount: ether(1), Value: ether(1)}, domain.ErrCampaignNotFound},
		{"zero amount", port.ContributeReq{CampaignID: id, Amount: decimal.Zero, Value: decimal.Zero}, domain.ErrInvalidAmount},
		{"value mismatch", port.ContributeReq{CampaignID: id, Amount: ether(1), Value: ether(0.5)}, domain.ErrValueMismatch},
		{"insufficient funds", port.ContributeReq{CampaignID: id, Amount: ether(11), Value: ether(11)}, domain.ErrInsufficientFunds},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			receipt, err := f.ledger.Contribute(ctx, donor1, c.req)
			require.ErrorIs(t, err, c.want)
			assert.Equal(t, domain.ReceiptReverted, receipt.Status)
		})
	}

	assert.True(t, f.campaign(t, id).Balance.IsZero())
	assertDecimal(t, ether(10), f.balance(t, donor1))
}

// Scenario A: goal met, creator is paid out.
func TestEndCampaignGoalMet(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))
	f.contribute(t, id, donor1, ether(0.5))
	f.contribute(t, id, donor2, ether(0.5))
	before := f.balance(t, creator)

	f.clock.Advance(day + time.Second)
	receipt, err := f.ledger.EndCampaign(context.Background(), creator, id)
	require.NoError(t, err)

	assertDecimal(t, before.Add(ether(1)), f.balance(t, creator))
	c := f.campaign(t, id)
	assert.True(t, c.Ended)
	assert.True(t, c.Balance.IsZero())
	assertDecimal(t, ether(1), c.Raised)
	assert.Equal(t, domain.OutcomePaidOut, c.Outcome)

	donors, err := f.ledger.ListDonors(context.Background(), id)
	require.NoError(t, err)
	for _, d := range donors {
		assert.True(t, d.Refundable.IsZero(), "record of %s not cleared", d.Address)
	}

	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventCampaignEnded, receipt.Events[0].Kind)
	assert.Equal(t, domain.OutcomePaidOut, receipt.Events[0].Data.Outcome)
	assertDecimal(t, ether(1), *receipt.Events[0].Data.FinalAmount)

	_, _, err = f.ledger.ClaimRefund(context.Background(), donor1, id)
	require.ErrorIs(t, err, domain.ErrNothingToRefund)
}

// Scenario B, pull model: donor claims exactly their stake.
func TestEndCampaignGoalMissedPull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, ether(2))
	f.contribute(t, id, donor1, ether(0.5))
	creatorBefore := f.balance(t, creator)

	f.clock.Advance(day + time.Second)
	receipt, err := f.ledger.EndCampaign(ctx, donor2, id)
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.OutcomeRefunded, receipt.Events[0].Data.Outcome)

	c := f.campaign(t, id)
	assert.True(t, c.Ended)
	assert.True(t, c.Balance.IsZero())
	assertDecimal(t, creatorBefore, f.balance(t, creator))
	assertDecimal(t, ether(9.5), f.balance(t, donor1))

	amount, receipt, err := f.ledger.ClaimRefund(ctx, donor1, id)
	require.NoError(t, err)
	assertDecimal(t, ether(0.5), amount)
	assertDecimal(t, ether(10), f.balance(t, donor1))
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventRefundClaimed, receipt.Events[0].Kind)

	_, _, err = f.ledger.ClaimRefund(ctx, donor1, id)
	require.ErrorIs(t, err, domain.ErrNothingToRefund)
	_, _, err = f.ledger.ClaimRefund(ctx, donor2, id)
	require.ErrorIs(t, err, domain.ErrNothingToRefund)
}

// Scenario B, push model: EndCampaign refunds directly.
func TestEndCampaignGoalMissedPush(t *testing.T) {
	f := newFixture(t, WithRefundMode(RefundPush))
	id := f.start(t, ether(2))
	f.contribute(t, id, donor1, ether(0.5))
	f.contribute(t, id, donor2, ether(0.25))
	creatorBefore := f.balance(t, creator)

	f.clock.Advance(day + time.Second)
	receipt, err := f.ledger.EndCampaign(context.Background(), creator, id)
	require.NoError(t, err)

	assertDecimal(t, ether(10), f.balance(t, donor1))
	assertDecimal(t, ether(10), f.balance(t, donor2))
	assertDecimal(t, creatorBefore, f.balance(t, creator))

	kinds := make([]domain.EventKind, 0, len(receipt.Events))
	for _, e := range receipt.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []domain.EventKind{domain.EventCampaignEnded, domain.EventRefundClaimed, domain.EventRefundClaimed}, kinds)
}

func TestPushRefundIsAllOrNothing(t *testing.T) {
	f := newFixture(t, WithRefundMode(RefundPush))
	id := f.start(t, ether(2))
	f.contribute(t, id, donor1, ether(0.5))
	f.contribute(t, id, donor2, ether(0.5))
	f.repo.SetRejectsTransfers(donor2, true)

	f.clock.Advance(day + time.Second)
	receipt, err := f.ledger.EndCampaign(context.Background(), creator, id)
	require.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.Equal(t, domain.ReceiptReverted, receipt.Status)

	c := f.campaign(t, id)
	assert.False(t, c.Ended)
	assertDecimal(t, ether(1), c.Balance)
	assertDecimal(t, ether(9.5), f.balance(t, donor1))
	donors, err := f.ledger.ListDonors(context.Background(), id)
	require.NoError(t, err)
	for _, d := range donors {
		assertDecimal(t, ether(0.5), d.Refundable, d.Address)
	}

	f.repo.SetRejectsTransfers(donor2, false)
	_, err = f.ledger.EndCampaign(context.Background(), creator, id)
	require.NoError(t, err)
	assertDecimal(t, ether(10), f.balance(t, donor2))
}

func TestPullRefundIsolatesRejectingDonor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, ether(2))
	f.contribute(t, id, donor1, ether(0.5))
	f.contribute(t, id, donor2, ether(0.5))
	f.repo.SetRejectsTransfers(donor2, true)

	f.clock.Advance(day + time.Second)
	_, err := f.ledger.EndCampaign(ctx, creator, id)
	require.NoError(t, err)

	_, _, err = f.ledger.ClaimRefund(ctx, donor2, id)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	amount, _, err := f.ledger.ClaimRefund(ctx, donor1, id)
	require.NoError(t, err)
	assertDecimal(t, ether(0.5), amount)

	d, err := f.ledger.ListDonors(ctx, id)
	require.NoError(t, err)
	require.Len(t, d, 2)
	assertDecimal(t, ether(0.5), d[1].Refundable)
}

func TestPayoutRejectedByCreatorReverts(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))
	f.contribute(t, id, donor1, ether(1))
	f.repo.SetRejectsTransfers(creator, true)

	f.clock.Advance(day + time.Second)
	_, err := f.ledger.EndCampaign(context.Background(), creator, id)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	c := f.campaign(t, id)
	assert.False(t, c.Ended)
	assertDecimal(t, ether(1), c.Balance)
}

// Scenario C, strict policy.
func TestContributeAfterDeadlineStrict(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))

	f.clock.Advance(day)
	f.contribute(t, id, donor1, ether(0.1)) // exactly at the deadline

	f.clock.Advance(time.Second)
	_, err := f.ledger.Contribute(context.Background(), donor1, port.ContributeReq{CampaignID: id, Amount: ether(0.1), Value: ether(0.1)})
	require.ErrorIs(t, err, domain.ErrCampaignExpired)
	assertDecimal(t, ether(0.1), f.campaign(t, id).Balance)
}

// Scenario C, grace policy.
func TestContributeAfterDeadlineGrace(t *testing.T) {
	f := newFixture(t, WithDeadlinePolicy(DeadlineGrace))
	id := f.start(t, ether(1))

	f.clock.Advance(day + time.Hour)
	f.contribute(t, id, donor1, ether(1))

	_, err := f.ledger.EndCampaign(context.Background(), creator, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePaidOut, f.campaign(t, id).Outcome)
}

func TestContributeAfterEndAlwaysFails(t *testing.T) {
	for _, policy := range []DeadlinePolicy{DeadlineStrict, DeadlineGrace} {
		t.Run(string(policy), func(t *testing.T) {
			f := newFixture(t, WithDeadlinePolicy(policy))
			id := f.start(t, ether(1))
			f.clock.Advance(day + time.Second)
			_, err := f.ledger.EndCampaign(context.Background(), creator, id)
			require.NoError(t, err)

			_, err = f.ledger.Contribute(context.Background(), donor1, port.ContributeReq{CampaignID: id, Amount: ether(1), Value: ether(1)})
			require.ErrorIs(t, err, domain.ErrCampaignEnded)
		})
	}
}

// Scenario D.
func TestEndCampaignBeforeDeadline(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))
	f.contribute(t, id, donor1, ether(1))

	for _, advance := range []time.Duration{0, day} {
		f.clock.Advance(advance)
		_, err := f.ledger.EndCampaign(context.Background(), creator, id)
		require.ErrorIs(t, err, domain.ErrCampaignNotExpired)
	}

	c := f.campaign(t, id)
	assert.False(t, c.Ended)
	assertDecimal(t, ether(1), c.Balance)
	f.contribute(t, id, donor2, ether(0.5))
}

func TestEndCampaignTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, ether(1))
	f.contribute(t, id, donor1, ether(1))
	f.clock.Advance(day + time.Second)

	_, err := f.ledger.EndCampaign(ctx, creator, id)
	require.NoError(t, err)
	creatorAfter := f.balance(t, creator)
	eventsAfter, err := f.ledger.Events(ctx, 0, 0)
	require.NoError(t, err)

	_, err = f.ledger.EndCampaign(ctx, creator, id)
	require.ErrorIs(t, err, domain.ErrAlreadyEnded)
	assertDecimal(t, creatorAfter, f.balance(t, creator))
	events, err := f.ledger.Events(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, len(eventsAfter))
}

func TestEndUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.EndCampaign(context.Background(), creator, 7)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestClaimRefundBeforeEnd(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(1))
	f.contribute(t, id, donor1, ether(0.5))
	_, _, err := f.ledger.ClaimRefund(context.Background(), donor1, id)
	require.ErrorIs(t, err, domain.ErrCampaignNotEnded)
}

// Scenario E.
func TestListDonorsAggregatesPerDonor(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(5))
	f.contribute(t, id, donor1, ether(0.5))
	f.contribute(t, id, donor2, ether(0.25))
	f.contribute(t, id, donor1, ether(1))
	f.contribute(t, id, donor2, ether(0.25))
	f.contribute(t, id, donor1, ether(0.5))

	donors, err := f.ledger.ListDonors(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.Equal(t, donor1, donors[0].Address)
	assertDecimal(t, ether(2), donors[0].Amount)
	assert.Equal(t, donor2, donors[1].Address)
	assertDecimal(t, ether(0.5), donors[1].Amount)

	sum := decimal.Zero
	for _, d := range donors {
		sum = sum.Add(d.Amount)
	}
	assertDecimal(t, f.campaign(t, id).Balance, sum)
}

func TestListDonorsUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.ListDonors(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaignsFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, err := f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{Description: "Solar roof for the school", Goal: ether(1), Deadline: f.clock.Now().Add(day)})
	require.NoError(t, err)
	_, _, err = f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{Description: "Community garden", Goal: ether(1), Deadline: f.clock.Now().Add(day)})
	require.NoError(t, err)
	_, _, err = f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{Description: "Garden tools", Goal: ether(1), Deadline: f.clock.Now().Add(day)})
	require.NoError(t, err)
	f.contribute(t, 1, donor1, ether(1))
	f.contribute(t, 2, donor1, ether(0.6))

	ids := func(filter domain.CampaignFilter) []int64 {
		cs, err := f.ledger.ListCampaigns(ctx, filter)
		require.NoError(t, err)
		out := make([]int64, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []int64{0, 1, 2}, ids(domain.CampaignFilter{Status: domain.StatusAll}))
	assert.Equal(t, []int64{0, 2}, ids(domain.CampaignFilter{Status: domain.StatusActive}))
	assert.Equal(t, []int64{1}, ids(domain.CampaignFilter{Status: domain.StatusCompleted}))
	assert.Equal(t, []int64{1, 2}, ids(domain.CampaignFilter{Status: domain.StatusTrending}))
	assert.Equal(t, []int64{1, 2}, ids(domain.CampaignFilter{Query: "GARDEN"}))
	assert.Empty(t, ids(domain.CampaignFilter{Status: domain.StatusEnded}))

	f.clock.Advance(day + time.Second)
	_, err = f.ledger.EndCampaign(ctx, creator, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(domain.CampaignFilter{Status: domain.StatusEnded}))
	assert.Equal(t, []int64{1}, ids(domain.CampaignFilter{Status: domain.StatusCompleted}))
}

func TestDepositRequiresFaucet(t *testing.T) {
	ledger := NewLedger(memory.NewLedgerRepository())
	_, err := ledger.Deposit(context.Background(), donor1, ether(1))
	require.ErrorIs(t, err, domain.ErrFaucetDisabled)
}

// TestConcurrentContributions checks that concurrent calls neither lose
// updates nor break value conservation.
func TestConcurrentContributions(t *testing.T) {
	f := newFixture(t)
	id := f.start(t, ether(100))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(from domain.Address) {
			defer wg.Done()
			_, _ = f.ledger.Contribute(context.Background(), from, port.ContributeReq{CampaignID: id, Amount: ether(1), Value: ether(1)})
		}([]domain.Address{donor1, donor2}[i%2])
	}
	wg.Wait()

	assertDecimal(t, ether(20), f.campaign(t, id).Balance)
	assert.True(t, f.balance(t, donor1).IsZero())
	assert.True(t, f.balance(t, donor2).IsZero())

	events, err := f.ledger.Events(context.Background(), 0, 0)
	require.NoError(t, err)
	for i, e := range events {
		assert.Equal(t, int64(i+1), e.Seq)
	}
}

// TestValueConservation runs a mixed sequence of calls and checks that
// account balances, escrowed balances and outstanding refunds always add
// up to what was deposited.
func TestValueConservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	deposited := ether(30)

	total := func() decimal.Decimal {
		sum := decimal.Zero
		for _, addr := range []domain.Address{creator, donor1, donor2} {
			sum = sum.Add(f.balance(t, addr))
		}
		campaigns, err := f.ledger.ListCampaigns(ctx, domain.CampaignFilter{})
		require.NoError(t, err)
		for _, c := range campaigns {
			sum = sum.Add(c.Balance)
			donors, err := f.ledger.ListDonors(ctx, c.ID)
			require.NoError(t, err)
			if c.Ended {
				for _, d := range donors {
					sum = sum.Add(d.Refundable)
				}
			}
		}
		return sum
	}

	met := f.start(t, ether(3))
	missed := f.start(t, ether(10))
	f.contribute(t, met, donor1, ether(2))
	f.contribute(t, met, donor2, ether(1.5))
	f.contribute(t, missed, donor1, ether(1))
	f.contribute(t, missed, donor2, ether(2))
	assertDecimal(t, deposited, total())

	// rejected calls move nothing
	_, err := f.ledger.Contribute(ctx, donor1, port.ContributeReq{CampaignID: met, Amount: ether(100), Value: ether(100)})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assertDecimal(t, deposited, total())

	f.clock.Advance(day + time.Second)
	_, err = f.ledger.EndCampaign(ctx, donor2, met)
	require.NoError(t, err)
	_, err = f.ledger.EndCampaign(ctx, donor2, missed)
	require.NoError(t, err)
	assertDecimal(t, deposited, total())

	_, _, err = f.ledger.ClaimRefund(ctx, donor1, missed)
	require.NoError(t, err)
	assertDecimal(t, deposited, total())
	assertDecimal(t, ether(13.5), f.balance(t, creator))
}

func TestFractionalBaseUnitsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, ether(1))
	frac := decimal.RequireFromString("0.25")

	_, _, err := f.ledger.StartCampaign(ctx, creator, port.StartCampaignReq{
		Description: "Test Campaign",
		Goal:        ether(1).Add(frac),
		Deadline:    f.clock.Now().Add(day),
	})
	require.ErrorIs(t, err, domain.ErrInvalidGoal)

	receipt, err := f.ledger.Contribute(ctx, donor1, port.ContributeReq{CampaignID: id, Amount: frac, Value: frac})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, domain.ReceiptReverted, receipt.Status)

	_, err = f.ledger.Deposit(ctx, donor2, ether(1).Add(frac))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	total, err := f.ledger.TotalCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assertDecimal(t, ether(10), f.balance(t, donor1))
	assertDecimal(t, ether(10), f.balance(t, donor2))
	assert.True(t, f.campaign(t, id).Balance.IsZero())
}

func TestDonorsClearedAfterSettlement(t *testing.T) {
	donors := func(t *testing.T, f *fixture, id int64) []domain.Donor {
		t.Helper()
		list, err := f.ledger.ListDonors(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, list, 1)
		return list
	}

	t.Run("payout", func(t *testing.T) {
		f := newFixture(t)
		id := f.start(t, ether(1))
		f.contribute(t, id, donor1, ether(1))
		f.clock.Advance(day + time.Second)
		_, err := f.ledger.EndCampaign(context.Background(), creator, id)
		require.NoError(t, err)

		d := donors(t, f, id)[0]
		assert.True(t, d.Cleared())
		assertDecimal(t, ether(1), d.Amount)
	})

	t.Run("push refund", func(t *testing.T) {
		f := newFixture(t, WithRefundMode(RefundPush))
		id := f.start(t, ether(2))
		f.contribute(t, id, donor1, ether(1))
		f.clock.Advance(day + time.Second)
		_, err := f.ledger.EndCampaign(context.Background(), creator, id)
		require.NoError(t, err)

		d := donors(t, f, id)[0]
		assert.True(t, d.Cleared())
		assertDecimal(t, ether(1), d.Amount)
	})

	t.Run("pull refund", func(t *testing.T) {
		f := newFixture(t)
		id := f.start(t, ether(2))
		f.contribute(t, id, donor1, ether(1))
		f.clock.Advance(day + time.Second)
		_, err := f.ledger.EndCampaign(context.Background(), creator, id)
		require.NoError(t, err)

		d := donors(t, f, id)[0]
		assert.False(t, d.Cleared())
		assertDecimal(t, ether(1), d.Refundable)

		_, _, err = f.ledger.ClaimRefund(context.Background(), donor1, id)
		require.NoError(t, err)
		d = donors(t, f, id)[0]
		assert.True(t, d.Cleared())
		assertDecimal(t, ether(1), d.Amount)
	})
}

func TestParsePolicies(t *testing.T) {
	m, err := ParseRefundMode("push")
	require.NoError(t, err)
	assert.Equal(t, RefundPush, m)
	_, err = ParseRefundMode("later")
	assert.Error(t, err)

	p, err := ParseDeadlinePolicy("grace")
	require.NoError(t, err)
	assert.Equal(t, DeadlineGrace, p)
	_, err = ParseDeadlinePolicy("")
	assert.Error(t, err)
}

package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0xAbCdEf0000000000000000000000000000000001 ")
	require.NoError(t, err)
	assert.Equal(t, Address("0xabcdef0000000000000000000000000000000001"), addr)

	for _, bad := range []string{"", "0x", "abcdef0000000000000000000000000000000001", "0xzz00000000000000000000000000000000000001", "0x00000000000000000000000000000000000000011"} {
		_, err = ParseAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("1000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000", d.String())

	_, err = ParseAmount("0.5")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParseAmount("one")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	d, err = ParseAmount("-3")
	require.NoError(t, err)
	assert.True(t, d.IsNegative())
}

func TestStatusFilter(t *testing.T) {
	goal := decimal.NewFromInt(100)
	funding := &Campaign{Goal: goal, Balance: decimal.NewFromInt(10)}
	trending := &Campaign{Goal: goal, Balance: decimal.NewFromInt(51)}
	half := &Campaign{Goal: goal, Balance: decimal.NewFromInt(50)}
	met := &Campaign{Goal: goal, Balance: decimal.NewFromInt(120)}
	paid := &Campaign{Goal: goal, Raised: decimal.NewFromInt(100), Ended: true, Outcome: OutcomePaidOut}
	refunded := &Campaign{Goal: goal, Raised: decimal.NewFromInt(30), Ended: true, Outcome: OutcomeRefunded}

	cases := []struct {
		filter StatusFilter
		c      *Campaign
		want   bool
	}{
		{StatusActive, funding, true},
		{StatusActive, met, false},
		{StatusActive, refunded, false},
		{StatusCompleted, met, true},
		{StatusCompleted, paid, true},
		{StatusCompleted, refunded, false},
		{StatusTrending, trending, true},
		{StatusTrending, half, false},
		{StatusTrending, paid, false},
		{StatusEnded, paid, true},
		{StatusEnded, funding, false},
		{StatusAll, refunded, true},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.want, tc.filter.Matches(tc.c), "case %d: %s", i, tc.filter)
	}

	f, ok := ParseStatusFilter("")
	assert.True(t, ok)
	assert.Equal(t, StatusAll, f)
	_, ok = ParseStatusFilter("popular")
	assert.False(t, ok)
}

func TestCampaignExpired(t *testing.T) {
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Campaign{Deadline: deadline}
	assert.False(t, c.Expired(deadline))
	assert.True(t, c.Expired(deadline.Add(time.Nanosecond)))
}

func TestCode(t *testing.T) {
	assert.Equal(t, 4002, Code(fmt.Errorf("contribute: %w", ErrCampaignExpired)))
	assert.Equal(t, 3001, Code(ErrNotFound))
	assert.Equal(t, 1000, Code(errors.New("boom")))
}

func TestNewReceipt(t *testing.T) {
	ok := NewReceipt([]Event{{Kind: EventCampaignStarted}}, nil)
	assert.Equal(t, ReceiptSuccess, ok.Status)
	assert.Len(t, ok.Events, 1)

	reverted := NewReceipt([]Event{{Kind: EventCampaignStarted}}, ErrInvalidGoal)
	assert.Equal(t, ReceiptReverted, reverted.Status)
	assert.Empty(t, reverted.Events)
	assert.ErrorIs(t, reverted.Err, ErrInvalidGoal)
	assert.NotEqual(t, ok.ID, reverted.ID)
}

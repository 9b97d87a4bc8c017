package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome records how a campaign was settled.
type Outcome string

const (
	OutcomeNone     Outcome = "none"
	OutcomePaidOut  Outcome = "paid_out"
	OutcomeRefunded Outcome = "refunded"
)

// Campaign is a single funding request with a goal and a deadline.
// Amounts are held in integer base units.
type Campaign struct {
	ID          int64
	Creator     Address
	Description string
	Goal        decimal.Decimal
	Deadline    time.Time
	Balance     decimal.Decimal
	// Raised is the balance at settlement time. Zero while funding.
	Raised    decimal.Decimal
	Ended     bool
	Outcome   Outcome
	CreatedAt time.Time
}

// Expired reports whether now is strictly past the deadline.
func (c *Campaign) Expired(now time.Time) bool {
	return now.After(c.Deadline)
}

// GoalMet reports whether the funds collected so far (or at settlement)
// reach the goal.
func (c *Campaign) GoalMet() bool {
	if c.Ended {
		return c.Raised.GreaterThanOrEqual(c.Goal)
	}
	return c.Balance.GreaterThanOrEqual(c.Goal)
}

// Progress is the collected share of the goal, e.g. 0.5 for half funded.
func (c *Campaign) Progress() decimal.Decimal {
	if c.Goal.IsZero() {
		return decimal.Zero
	}
	collected := c.Balance
	if c.Ended {
		collected = c.Raised
	}
	return collected.Div(c.Goal)
}

// StatusFilter selects campaigns in ListCampaigns.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
	StatusTrending  StatusFilter = "trending"
	StatusEnded     StatusFilter = "ended"
)

// ParseStatusFilter maps a query value to a StatusFilter. An empty value
// means all campaigns.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(s) {
	case "", StatusAll:
		return StatusAll, true
	case StatusActive, StatusCompleted, StatusTrending, StatusEnded:
		return StatusFilter(s), true
	default:
		return "", false
	}
}

var trendingThreshold = decimal.NewFromFloat(0.5)

// Matches reports whether c belongs to the filtered set.
func (f StatusFilter) Matches(c *Campaign) bool {
	switch f {
	case StatusActive:
		return !c.Ended && !c.GoalMet()
	case StatusCompleted:
		return c.GoalMet()
	case StatusTrending:
		return !c.Ended && c.Progress().GreaterThan(trendingThreshold)
	case StatusEnded:
		return c.Ended
	default:
		return true
	}
}

// CampaignFilter narrows the campaign listing.
type CampaignFilter struct {
	Status StatusFilter
	// Query is matched case-insensitively against the description.
	Query string
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind names a ledger event.
type EventKind string

const (
	EventCampaignStarted      EventKind = "CampaignStarted"
	EventContributionReceived EventKind = "ContributionReceived"
	EventCampaignEnded        EventKind = "CampaignEnded"
	EventRefundClaimed        EventKind = "RefundClaimed"
)

// Event is an entry of the ledger outbox. Seq is assigned by the store
// and increases monotonically.
type Event struct {
	Seq         int64      `json:"seq"`
	Kind        EventKind  `json:"kind"`
	CampaignID  int64      `json:"campaign_id"`
	Data        EventData  `json:"data"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// EventData carries the kind specific fields.
type EventData struct {
	Creator     Address          `json:"creator,omitempty"`
	Goal        *decimal.Decimal `json:"goal,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Donor       Address          `json:"donor,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	NewBalance  *decimal.Decimal `json:"new_balance,omitempty"`
	Outcome     Outcome          `json:"outcome,omitempty"`
	FinalAmount *decimal.Decimal `json:"final_amount,omitempty"`
}

// CampaignStarted is emitted when a campaign is created.
func CampaignStarted(c *Campaign) Event {
	goal, deadline := c.Goal, c.Deadline
	return Event{
		Kind:       EventCampaignStarted,
		CampaignID: c.ID,
		Data:       EventData{Creator: c.Creator, Goal: &goal, Deadline: &deadline},
	}
}

// ContributionReceived carries the escrow balance after the contribution.
func ContributionReceived(campaignID int64, donor Address, amount, newBalance decimal.Decimal) Event {
	return Event{
		Kind:       EventContributionReceived,
		CampaignID: campaignID,
		Data:       EventData{Donor: donor, Amount: &amount, NewBalance: &newBalance},
	}
}

// CampaignEnded records the settlement outcome and the amount raised.
func CampaignEnded(campaignID int64, outcome Outcome, finalAmount decimal.Decimal) Event {
	return Event{
		Kind:       EventCampaignEnded,
		CampaignID: campaignID,
		Data:       EventData{Outcome: outcome, FinalAmount: &finalAmount},
	}
}

// RefundClaimed is emitted for every refund credit, pushed or pulled.
func RefundClaimed(campaignID int64, donor Address, amount decimal.Decimal) Event {
	return Event{
		Kind:       EventRefundClaimed,
		CampaignID: campaignID,
		Data:       EventData{Donor: donor, Amount: &amount},
	}
}

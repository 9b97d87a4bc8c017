package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donor is the contribution record of one address to one campaign.
// Refundable is the recorded contribution still held for the donor: it
// grows with every contribution and is cleared when the campaign pays out,
// when a push refund is sent, or when the donor claims a pull refund.
// Amount is the cumulative stake and is kept as history after clearing.
type Donor struct {
	CampaignID int64
	Address    Address
	Amount     decimal.Decimal
	Refundable decimal.Decimal
	FirstAt    time.Time
}

// Cleared reports whether nothing is recorded for the donor any more.
func (d Donor) Cleared() bool {
	return d.Refundable.IsZero()
}

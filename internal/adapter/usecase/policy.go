package usecase

import "fmt"

// RefundMode selects how donors get their stake back when a campaign
// misses its goal.
type RefundMode string

const (
	// RefundPull marks the campaign refunded; each donor claims their own
	// stake with ClaimRefund.
	RefundPull RefundMode = "pull"
	// RefundPush credits every donor inside EndCampaign. One rejected
	// credit reverts the whole settlement.
	RefundPush RefundMode = "push"
)

// ParseRefundMode parses "pull" or "push".
func ParseRefundMode(s string) (RefundMode, error) {
	switch RefundMode(s) {
	case RefundPull, RefundPush:
		return RefundMode(s), nil
	}
	return "", fmt.Errorf("unknown refund mode %q", s)
}

// DeadlinePolicy decides whether contributions are accepted between the
// deadline and the settlement of a campaign.
type DeadlinePolicy string

const (
	// DeadlineStrict rejects contributions once the deadline has passed.
	DeadlineStrict DeadlinePolicy = "strict"
	// DeadlineGrace accepts contributions until EndCampaign commits.
	DeadlineGrace DeadlinePolicy = "grace"
)

// ParseDeadlinePolicy parses "strict" or "grace".
func ParseDeadlinePolicy(s string) (DeadlinePolicy, error) {
	switch DeadlinePolicy(s) {
	case DeadlineStrict, DeadlineGrace:
		return DeadlinePolicy(s), nil
	}
	return "", fmt.Errorf("unknown deadline policy %q", s)
}

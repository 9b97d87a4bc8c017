package domain

import "errors"

var (
	ErrInvalidDeadline    = errors.New("deadline must be in the future")
	ErrInvalidGoal        = errors.New("goal must be greater than zero")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignEnded      = errors.New("campaign already ended")
	ErrCampaignExpired    = errors.New("campaign deadline has passed")
	ErrCampaignNotExpired = errors.New("campaign deadline has not passed")
	ErrAlreadyEnded       = errors.New("campaign was already settled")
	ErrCampaignNotEnded   = errors.New("campaign has not ended")
	ErrNothingToRefund    = errors.New("nothing to refund")
	ErrValueMismatch      = errors.New("sent value does not match amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTransferFailed     = errors.New("transfer rejected by recipient")
	ErrFaucetDisabled     = errors.New("faucet is disabled")
)

// ErrNotFound is returned by donor listing for unknown campaigns.
var ErrNotFound = ErrCampaignNotFound

// ErrorCode maps ledger errors to stable numeric codes for API clients.
var ErrorCode = map[error]int{
	ErrInvalidDeadline:    2001,
	ErrInvalidGoal:        2002,
	ErrInvalidAmount:      2003,
	ErrInvalidAddress:     2004,
	ErrValueMismatch:      2005,
	ErrCampaignNotFound:   3001,
	ErrCampaignEnded:      4001,
	ErrCampaignExpired:    4002,
	ErrCampaignNotExpired: 4003,
	ErrAlreadyEnded:       4004,
	ErrCampaignNotEnded:   4005,
	ErrNothingToRefund:    4006,
	ErrInsufficientFunds:  4007,
	ErrFaucetDisabled:     3002,
	ErrTransferFailed:     5001,
}

// Code returns the code of the first known error in err's chain, or 1000
// for unknown errors.
func Code(err error) int {
	for known, code := range ErrorCode {
		if errors.Is(err, known) {
			return code
		}
	}
	return 1000
}

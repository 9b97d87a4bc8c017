package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Address identifies an account: 0x followed by 40 hex characters.
// Addresses are always stored lower-case.
type Address string

// ParseAddress validates and normalises s.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) != 42 || !(strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if _, err := hex.DecodeString(s[2:]); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address("0x" + strings.ToLower(s[2:])), nil
}

func (a Address) String() string { return string(a) }

// Account holds the native balance of an address.
type Account struct {
	Address Address
	Balance decimal.Decimal
	// RejectsTransfers makes every credit to this account fail.
	RejectsTransfers bool
}

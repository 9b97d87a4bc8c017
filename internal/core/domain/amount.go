package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a base-unit amount. Amounts are whole numbers; the
// sign is checked by the caller since zero is valid in some places.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %q is not a whole number of base units", ErrInvalidAmount, s)
	}
	return d, nil
}

package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a textual amount and converts it to a fixed-point decimal.
// The amount must be strictly positive and carry at most two decimal places.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	if err := ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// ValidateAmount checks that an already parsed amount is positive and has at most two decimals
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// FormatAmount renders a decimal with exactly two decimal places, e.g. 10.1 becomes "10.10"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
